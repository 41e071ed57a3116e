package userHandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"

	users "github.com/UnimaginableCat/fin-manager-project/internal/api/users"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	"github.com/UnimaginableCat/fin-manager-project/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type mockUserService struct {
	createFunc func(ctx context.Context, req users.CreateUserRequest) (entity.User, error)
	updateFunc func(ctx context.Context, id string, req users.UpdateUserRequest) (entity.User, error)
	deleteFunc func(ctx context.Context, id string) error
	getAllFunc func(ctx context.Context) ([]entity.User, error)
	getFunc    func(ctx context.Context, id string) (entity.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, req users.CreateUserRequest) (entity.User, error) {
	return m.createFunc(ctx, req)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id string, req users.UpdateUserRequest) (entity.User, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	return m.getAllFunc(ctx)
}

func (m *mockUserService) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	return m.getFunc(ctx, id)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func newTestApp(svc *mockUserService) *fiber.App {
	logger := newTestLogger()
	app := fiber.New()
	handler := New(logger, newTestValidator(), middleware.New(logger), svc)
	handler.Start(app)
	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestCreateUser(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &mockUserService{
		createFunc: func(ctx context.Context, req users.CreateUserRequest) (entity.User, error) {
			return entity.User{
				ID:        "7f2504e0-4f89-41d3-9a0c-0305e82c3301",
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Email:     req.Email,
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
	}
	app := newTestApp(svc)

	req := jsonRequest(http.MethodPost, "/users", users.CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	body := decodeBody(t, resp)
	if body["id"] != "7f2504e0-4f89-41d3-9a0c-0305e82c3301" {
		t.Errorf("id = %v", body["id"])
	}
	if body["email"] != "ada@example.com" {
		t.Errorf("email = %v", body["email"])
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := &mockUserService{
		createFunc: func(ctx context.Context, req users.CreateUserRequest) (entity.User, error) {
			t.Fatal("service must not be called on validation failure")
			return entity.User{}, nil
		},
	}
	app := newTestApp(svc)

	req := jsonRequest(http.MethodPost, "/users", map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "not-an-email",
	})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Validation failed" {
		t.Errorf("error = %v", body["error"])
	}
	fields, ok := body["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("fields missing from validation response: %v", body)
	}
	if _, exists := fields["email"]; !exists {
		t.Errorf("email field error missing: %v", fields)
	}
}

func TestCreateUserMalformedBody(t *testing.T) {
	svc := &mockUserService{
		createFunc: func(ctx context.Context, req users.CreateUserRequest) (entity.User, error) {
			t.Fatal("service must not be called for an unparsable body")
			return entity.User{}, nil
		},
	}
	app := newTestApp(svc)

	req, _ := http.NewRequest(http.MethodPost, "/users", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}

	body := decodeBody(t, resp)
	errMsg, _ := body["error"].(string)
	if !strings.HasPrefix(errMsg, "Validation failed") {
		t.Errorf("error = %v", body["error"])
	}
}

func TestUpdateUserMalformedBody(t *testing.T) {
	svc := &mockUserService{
		updateFunc: func(ctx context.Context, id string, req users.UpdateUserRequest) (entity.User, error) {
			t.Fatal("service must not be called for an unparsable body")
			return entity.User{}, nil
		},
	}
	app := newTestApp(svc)

	req, _ := http.NewRequest(http.MethodPut, "/users/7f2504e0-4f89-41d3-9a0c-0305e82c3301", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := &mockUserService{
		getFunc: func(ctx context.Context, id string) (entity.User, error) {
			return entity.User{}, users.ErrUserNotFound
		},
	}
	app := newTestApp(svc)

	req := jsonRequest(http.MethodGet, "/users/7f2504e0-4f89-41d3-9a0c-0305e82c3301", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}

	body := decodeBody(t, resp)
	if body["error"] != "User not found" {
		t.Errorf("error = %v, want %q", body["error"], "User not found")
	}
}

func TestUpdateUser(t *testing.T) {
	var gotID string
	var gotReq users.UpdateUserRequest
	svc := &mockUserService{
		updateFunc: func(ctx context.Context, id string, req users.UpdateUserRequest) (entity.User, error) {
			gotID = id
			gotReq = req
			return entity.User{ID: id}, nil
		},
	}
	app := newTestApp(svc)

	req := jsonRequest(http.MethodPut, "/users/7f2504e0-4f89-41d3-9a0c-0305e82c3301", map[string]string{
		"email": "new@example.com",
	})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	if gotID != "7f2504e0-4f89-41d3-9a0c-0305e82c3301" {
		t.Errorf("id passed to service = %q", gotID)
	}
	if gotReq.Email == nil || *gotReq.Email != "new@example.com" {
		t.Errorf("email patch not forwarded: %+v", gotReq)
	}
	if gotReq.FirstName != nil || gotReq.LastName != nil {
		t.Errorf("absent fields must stay nil: %+v", gotReq)
	}

	body := decodeBody(t, resp)
	if body["message"] != "User updated successfully" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestDeleteUser(t *testing.T) {
	svc := &mockUserService{
		deleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}
	app := newTestApp(svc)

	req := jsonRequest(http.MethodDelete, "/users/7f2504e0-4f89-41d3-9a0c-0305e82c3301", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusNoContent)
	}

	raw, _ := io.ReadAll(resp.Body)
	if len(raw) != 0 {
		t.Errorf("delete response body = %q, want empty", raw)
	}
}

func TestGetAllUsers(t *testing.T) {
	svc := &mockUserService{
		getAllFunc: func(ctx context.Context) ([]entity.User, error) {
			return []entity.User{
				{ID: "7f2504e0-4f89-41d3-9a0c-0305e82c3301", FirstName: "Ada"},
				{ID: "8a3615f1-5f9a-42e4-ab1d-1416f93d4412", FirstName: "Grace"},
			}, nil
		},
	}
	app := newTestApp(svc)

	req := jsonRequest(http.MethodGet, "/users", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	body := decodeBody(t, resp)
	if body["total"] != float64(2) {
		t.Errorf("total = %v, want 2", body["total"])
	}
}
