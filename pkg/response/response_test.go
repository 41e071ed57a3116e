package response

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	sentinel := NewError(404, "user not found")

	if !errors.Is(sentinel, sentinel) {
		t.Error("sentinel must match itself")
	}
	if !errors.Is(NewError(404, "user not found"), sentinel) {
		t.Error("same code and message must match")
	}
	if errors.Is(NewError(400, "user not found"), sentinel) {
		t.Error("different code must not match")
	}
	if errors.Is(NewError(404, "report not found"), sentinel) {
		t.Error("different message must not match")
	}
	if errors.Is(errors.New("user not found"), sentinel) {
		t.Error("plain error must not match")
	}
}

func TestErrorWrapping(t *testing.T) {
	sentinel := NewError(500, "failed to create user")
	wrapped := fmt.Errorf("saving record: %w", sentinel)

	if !errors.Is(wrapped, sentinel) {
		t.Error("wrapped sentinel must still match")
	}

	var respErr *Error
	if !errors.As(wrapped, &respErr) {
		t.Fatal("wrapped sentinel must unwrap to *Error")
	}
	if respErr.Code != 500 {
		t.Errorf("code = %d, want 500", respErr.Code)
	}
}
