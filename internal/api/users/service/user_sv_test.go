package userService

import (
	"errors"
	"io"
	"testing"

	users "github.com/UnimaginableCat/fin-manager-project/internal/api/users"
	userRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/users/repository"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	"github.com/UnimaginableCat/fin-manager-project/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type mockUsersRepo struct {
	users map[string]entity.User
	calls []string

	createErr error
	updateErr error
	deleteErr error
}

func (m *mockUsersRepo) CreateUser(ctx context.Context, user entity.User) error {
	m.calls = append(m.calls, "CreateUser")
	if m.createErr != nil {
		return m.createErr
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUsersRepo) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	m.calls = append(m.calls, "GetUserByID")
	user, ok := m.users[id]
	if !ok {
		return entity.User{}, users.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUsersRepo) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	m.calls = append(m.calls, "GetAllUsers")
	list := make([]entity.User, 0, len(m.users))
	for _, user := range m.users {
		list = append(list, user)
	}
	return list, nil
}

func (m *mockUsersRepo) UpdateUser(ctx context.Context, user entity.User) error {
	m.calls = append(m.calls, "UpdateUser")
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.users[user.ID]; !ok {
		return users.ErrUserNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUsersRepo) DeleteUser(ctx context.Context, id string) error {
	m.calls = append(m.calls, "DeleteUser")
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.users[id]; !ok {
		return users.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUsersRepo) DeleteTransactionsByUserID(ctx context.Context, userID string) error {
	m.calls = append(m.calls, "DeleteTransactionsByUserID")
	return nil
}

type mockUserRepository struct {
	repo       *mockUsersRepo
	committed  bool
	rolledBack bool
	wantTx     *bool
}

func (m *mockUserRepository) NewClient(tx bool) (userRepository.Client, error) {
	if m.wantTx != nil {
		*m.wantTx = tx
	}
	return userRepository.Client{
		Users: m.repo,
		Commit: func() error {
			m.committed = true
			return nil
		},
		Rollback: func() error {
			m.rolledBack = true
			return nil
		},
	}, nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

const testUserID = "7f2504e0-4f89-41d3-9a0c-0305e82c3301"

func newServiceWithUser(t *testing.T) (IUserService, *mockUserRepository) {
	t.Helper()
	repo := &mockUserRepository{
		repo: &mockUsersRepo{
			users: map[string]entity.User{
				testUserID: {
					ID:        testUserID,
					FirstName: "Ada",
					LastName:  "Lovelace",
					Email:     "ada@example.com",
				},
			},
		},
	}
	return New(newTestLogger(), repo, utils.New()), repo
}

func TestCreateUserGeneratesID(t *testing.T) {
	svc, repo := newServiceWithUser(t)

	user, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if user.ID == "" {
		t.Error("created user must carry a generated ID")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("timestamps must be set on create")
	}
	if _, ok := repo.repo.users[user.ID]; !ok {
		t.Error("created user was not persisted")
	}
}

func TestUpdateUserPartialPatch(t *testing.T) {
	svc, repo := newServiceWithUser(t)

	email := "ada.lovelace@example.com"
	user, err := svc.UpdateUser(context.Background(), testUserID, users.UpdateUserRequest{
		Email: &email,
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	if user.Email != email {
		t.Errorf("email = %q, want %q", user.Email, email)
	}
	if user.FirstName != "Ada" || user.LastName != "Lovelace" {
		t.Errorf("absent fields must keep stored values: %+v", user)
	}

	stored := repo.repo.users[testUserID]
	if stored.Email != email {
		t.Errorf("stored email = %q, want %q", stored.Email, email)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _ := newServiceWithUser(t)

	first := "Grace"
	_, err := svc.UpdateUser(context.Background(), "8a3615f1-5f9a-42e4-ab1d-1416f93d4412", users.UpdateUserRequest{
		FirstName: &first,
	})
	if !errors.Is(err, users.ErrUserNotFound) {
		t.Fatalf("UpdateUser error = %v, want %v", err, users.ErrUserNotFound)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	svc, repo := newServiceWithUser(t)
	var usedTx bool
	repo.wantTx = &usedTx

	if err := svc.DeleteUser(context.Background(), testUserID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if !usedTx {
		t.Error("cascade delete must run inside a transaction")
	}
	if !repo.committed {
		t.Error("cascade delete must commit")
	}

	calls := repo.repo.calls
	want := []string{"GetUserByID", "DeleteTransactionsByUserID", "DeleteUser"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}

	if _, ok := repo.repo.users[testUserID]; ok {
		t.Error("user must be gone after delete")
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	svc, repo := newServiceWithUser(t)

	err := svc.DeleteUser(context.Background(), "8a3615f1-5f9a-42e4-ab1d-1416f93d4412")
	if !errors.Is(err, users.ErrUserNotFound) {
		t.Fatalf("DeleteUser error = %v, want %v", err, users.ErrUserNotFound)
	}
	if repo.committed {
		t.Error("nothing must commit when the user does not exist")
	}

	for _, call := range repo.repo.calls {
		if call == "DeleteTransactionsByUserID" || call == "DeleteUser" {
			t.Errorf("unexpected call %q for missing user", call)
		}
	}
}
