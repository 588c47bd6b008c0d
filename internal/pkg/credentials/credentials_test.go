package credentials

import (
	"strings"
	"testing"

	"github.com/nimbushr/nimbus-backend-go/internal/pkg/validator"
)

func TestNewEmployeeCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := NewEmployeeCode()
		if err != nil {
			t.Fatalf("NewEmployeeCode() error: %v", err)
		}
		if !validator.IsValidEmployeeCode(code) {
			t.Errorf("NewEmployeeCode() = %q, want EMP-nnnn", code)
		}
	}
}

func TestNewTempPassword(t *testing.T) {
	pw, err := NewTempPassword(12)
	if err != nil {
		t.Fatalf("NewTempPassword() error: %v", err)
	}
	if len(pw) != 12 {
		t.Errorf("NewTempPassword(12) length = %d, want 12", len(pw))
	}
	for _, r := range pw {
		if !strings.ContainsRune(passwordAlphabet, r) {
			t.Errorf("password contains %q outside the alphabet", r)
		}
	}
}

func TestNewTempPasswordDefaultLength(t *testing.T) {
	pw, err := NewTempPassword(0)
	if err != nil {
		t.Fatalf("NewTempPassword() error: %v", err)
	}
	if len(pw) == 0 {
		t.Error("NewTempPassword(0) returned empty password")
	}
}

func TestNewTempPasswordUnique(t *testing.T) {
	a, _ := NewTempPassword(16)
	b, _ := NewTempPassword(16)
	if a == b {
		t.Error("two generated passwords are identical")
	}
}
