package response_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	"gonotes/internal/notes/adapters/http/response"
	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
		expectedFields map[string]string
	}{
		{
			name:           "validation error keeps fields",
			err:            fmt.Errorf("validating note: %w", entities.NewValidationError("content", "is required")),
			expectedStatus: fiber.StatusBadRequest,
			expectedMsg:    response.MsgValidationFailed,
			expectedFields: map[string]string{"content": "is required"},
		},
		{
			name:           "unauthenticated",
			err:            fmt.Errorf("checking identity: %w", services.ErrUnauthenticated),
			expectedStatus: fiber.StatusUnauthorized,
			expectedMsg:    response.MsgUnauthenticated,
		},
		{
			name:           "revoked refresh token",
			err:            services.ErrRevokedRefreshToken,
			expectedStatus: fiber.StatusUnauthorized,
			expectedMsg:    response.MsgUnauthenticated,
		},
		{
			name:           "bad login",
			err:            entities.ErrInvalidCredentials,
			expectedStatus: fiber.StatusUnauthorized,
			expectedMsg:    response.MsgInvalidLogin,
		},
		{
			name:           "note not found",
			err:            fmt.Errorf("deleting note: %w", entities.ErrNoteNotFound),
			expectedStatus: fiber.StatusNotFound,
			expectedMsg:    response.MsgNotFound,
		},
		{
			name:           "username taken",
			err:            entities.ErrUsernameTaken,
			expectedStatus: fiber.StatusConflict,
			expectedMsg:    response.MsgUsernameTaken,
		},
		{
			name:           "unknown error is internal and not leaked",
			err:            errors.New("pq: connection refused at 10.0.0.1"),
			expectedStatus: fiber.StatusInternalServerError,
			expectedMsg:    response.MsgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := response.Classify(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, body.Error)
			assert.Equal(t, tt.expectedFields, body.Fields)
		})
	}
}
