package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("content", "is required"), KindValidation},
		{"reference", Reference("contact", 7), KindReference},
		{"transport", Transport(errors.New("dial tcp")), KindTransport},
		{"wrapped", fmt.Errorf("create: %w", Reference("contact", 7)), KindReference},
		{"plain", errors.New("boom"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("content", "is required")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(Reference("message", 1)))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(Transport(errors.New("503"))))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(Unavailable("whatsapp not connected")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Internal(errors.New("disk"), "list messages")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("anything")))
}

func TestPublicMessage_HidesInternalCause(t *testing.T) {
	err := Internal(errors.New("pq: password authentication failed"), "list messages")

	assert.Equal(t, "something went wrong", PublicMessage(err))
	assert.Contains(t, err.Error(), "password authentication failed")
}

func TestPublicMessage_ValidationIsVisible(t *testing.T) {
	assert.Equal(t, "content: is required", PublicMessage(Validation("content", "is required")))
}

func TestFromStore(t *testing.T) {
	assert.NoError(t, FromStore(nil, "get", "message", 1))
	assert.True(t, Is(FromStore(gorm.ErrRecordNotFound, "get", "message", 1), KindReference))
	assert.True(t, Is(FromStore(errors.New("locked"), "get", "message", 1), KindInternal))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Transport(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "chat completion request failed", err.Message)
}

func TestWithContext(t *testing.T) {
	err := Reference("tag", 3)

	assert.Equal(t, "tag", err.Context["entity"])
	assert.Equal(t, 3, err.Context["id"])
}
