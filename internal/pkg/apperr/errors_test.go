// internal/pkg/apperr/errors_test.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	assert.Equal(t, NotFound, ClassOf(New(NotFound, "gone")))
	assert.Equal(t, Internal, ClassOf(errors.New("plain")))

	// Classification survives wrapping with %w.
	wrapped := fmt.Errorf("context: %w", New(Conflict, "dupe"))
	assert.Equal(t, Conflict, ClassOf(wrapped))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "Account already exists", MessageOf(New(Conflict, "Account already exists")))
	assert.Equal(t, "Server error", MessageOf(errors.New("pq: connection refused")))
}

func TestNewFormats(t *testing.T) {
	err := New(Validation, "Product %d not found", 7)
	assert.Equal(t, "Product 7 not found", err.Message)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Wrap(Unavailable, cause, "Store unavailable")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Store unavailable", MessageOf(err))
	assert.Contains(t, err.Error(), "dial tcp")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(Validation, "bad"), http.StatusBadRequest},
		{New(NotFound, "gone"), http.StatusNotFound},
		{New(Conflict, "dupe"), http.StatusConflict},
		{New(Unauthorized, "nope"), http.StatusUnauthorized},
		{New(Unavailable, "down"), http.StatusServiceUnavailable},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err))
	}
}
