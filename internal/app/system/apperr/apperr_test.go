package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cafehubapp/cafehub/internal/app/system/apperr"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"validation matches", apperr.Validation(errors.New("no logo")), apperr.IsValidation, true},
		{"validation not notfound", apperr.Validation(errors.New("no logo")), apperr.IsNotFound, false},
		{"notfound matches", apperr.NotFoundf("cafe %s", "abc"), apperr.IsNotFound, true},
		{"conflict matches", apperr.Conflict(errors.New("dup")), apperr.IsConflict, true},
		{"unavailable matches", apperr.Unavailable(errors.New("txn aborted")), apperr.IsUnavailable, true},
		{"nil is nothing", nil, apperr.IsValidation, false},
		{"plain error is nothing", errors.New("boom"), apperr.IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyNilIsNil(t *testing.T) {
	if err := apperr.NotFound(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestCauseSurvivesWrapping(t *testing.T) {
	cause := errors.New("duplicate key")
	err := fmt.Errorf("insert employee: %w", apperr.Conflict(cause))

	if !apperr.IsConflict(err) {
		t.Error("expected conflict kind through wrapping")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to remain reachable")
	}
}

func TestMessagePassesThrough(t *testing.T) {
	err := apperr.NotFoundf("cafe %s not found", "c-1")
	if err.Error() != "cafe c-1 not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
