package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/hms/hms/internal/gateway"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Invalid("amount must be positive"), http.StatusBadRequest},
		{"precondition", Precondition("no admission date"), http.StatusConflict},
		{"not found", NotFound("bill %s", "b1"), http.StatusNotFound},
		{"gateway not found", gateway.ErrNotFound, http.StatusNotFound},
		{"wrapped gateway not found", fmt.Errorf("get bill: %w", gateway.ErrNotFound), http.StatusNotFound},
		{"gateway status error", &gateway.StatusError{Code: 500}, http.StatusBadGateway},
		{"unclassified", errors.New("connection refused"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTP(tt.err).Code; got != tt.want {
				t.Errorf("HTTP(%v).Code = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(Invalid("bad")) {
		t.Error("expected validation error")
	}
	if IsValidation(Precondition("blocked")) {
		t.Error("precondition is not a validation error")
	}
	if IsValidation(errors.New("other")) {
		t.Error("plain error is not a validation error")
	}
}
