package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: errors.New("boom"), want: CodeInternal},
		{name: "direct", err: New(CodeNotFound, "employee not found"), want: CodeNotFound},
		{name: "wrapped", err: fmt.Errorf("create employee: %w", Constraint("CHECK constraint failed")), want: CodeConstraint},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetCode(tc.err); got != tc.want {
				t.Fatalf("expected code %q, got %q", tc.want, got)
			}
		})
	}
}

func TestConstraintError(t *testing.T) {
	err := fmt.Errorf("create employee: %w", Constraint("CHECK constraint failed: chk_employees_salary"))

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *Error in chain, got %v", err)
	}
	if appErr.Message != "database operation failed" || appErr.Detail != "CHECK constraint failed: chk_employees_salary" {
		t.Fatalf("unexpected error fields: %+v", appErr)
	}
	if appErr.Error() != "database operation failed: CHECK constraint failed: chk_employees_salary" {
		t.Fatalf("unexpected message %q", appErr.Error())
	}

	if got := New(CodeNotFound, "employee not found").Error(); got != "employee not found" {
		t.Fatalf("expected message without detail, got %q", got)
	}
}
