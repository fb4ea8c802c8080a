package app_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/entities"
)

func TestRegister(t *testing.T) {
	const (
		username = "alice"
		password = "s3cret-pass"
		hash     = "$2a$10$hashed"
	)

	created := &entities.User{ID: "user-1", Username: username, PasswordHash: hash, CreatedAt: time.Now()}

	tests := []struct {
		name           string
		username       string
		password       string
		setupMocks     func(repo *mockUserRepository, pass *mockPasswordService)
		expectedFields []string
		expectedErr    error
	}{
		{
			name:     "success - stores only the hash",
			username: username,
			password: password,
			setupMocks: func(repo *mockUserRepository, pass *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, username).Return(nil, entities.ErrUserNotFound).Once()
				pass.On("Hash", mock.Anything, password).Return(hash, nil).Once()
				repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Username == username && u.PasswordHash == hash
				})).Return(created, nil).Once()
			},
		},
		{
			name:     "error - username taken",
			username: username,
			password: password,
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, username).Return(created, nil).Once()
			},
			expectedErr: entities.ErrUsernameTaken,
		},
		{
			name:     "error - concurrent registration hits unique constraint",
			username: username,
			password: password,
			setupMocks: func(repo *mockUserRepository, pass *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, username).Return(nil, entities.ErrUserNotFound).Once()
				pass.On("Hash", mock.Anything, password).Return(hash, nil).Once()
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, entities.ErrUsernameTaken).Once()
			},
			expectedErr: entities.ErrUsernameTaken,
		},
		{
			name:     "success - username trimmed before lookup",
			username: "  " + username + " ",
			password: password,
			setupMocks: func(repo *mockUserRepository, pass *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, username).Return(nil, entities.ErrUserNotFound).Once()
				pass.On("Hash", mock.Anything, password).Return(hash, nil).Once()
				repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Username == username
				})).Return(created, nil).Once()
			},
		},
		{
			name:           "error - whitespace only username",
			username:       "   ",
			password:       password,
			setupMocks:     func(_ *mockUserRepository, _ *mockPasswordService) {},
			expectedFields: []string{"username"},
			expectedErr:    entities.ErrValidation,
		},
		{
			name:           "error - username with forbidden characters",
			username:       "alice smith/ops",
			password:       password,
			setupMocks:     func(_ *mockUserRepository, _ *mockPasswordService) {},
			expectedFields: []string{"username"},
			expectedErr:    entities.ErrValidation,
		},
		{
			name:           "error - missing fields",
			setupMocks:     func(_ *mockUserRepository, _ *mockPasswordService) {},
			expectedFields: []string{"username", "password"},
			expectedErr:    entities.ErrValidation,
		},
		{
			name:           "error - password longer than bcrypt input",
			username:       username,
			password:       strings.Repeat("p", entities.MaxPasswordLength+1),
			setupMocks:     func(_ *mockUserRepository, _ *mockPasswordService) {},
			expectedFields: []string{"password"},
			expectedErr:    entities.ErrValidation,
		},
		{
			name:           "error - username too long",
			username:       strings.Repeat("u", entities.MaxUsernameLength+1),
			password:       password,
			setupMocks:     func(_ *mockUserRepository, _ *mockPasswordService) {},
			expectedFields: []string{"username"},
			expectedErr:    entities.ErrValidation,
		},
		{
			name:     "error - lookup failure",
			username: username,
			password: password,
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, username).Return(nil, ErrDatabaseOperation).Once()
			},
			expectedErr: ErrDatabaseOperation,
		},
		{
			name:     "error - hashing failure",
			username: username,
			password: password,
			setupMocks: func(repo *mockUserRepository, pass *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, username).Return(nil, entities.ErrUserNotFound).Once()
				pass.On("Hash", mock.Anything, password).Return("", ErrHashing).Once()
			},
			expectedErr: ErrHashing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			pass := new(mockPasswordService)
			tt.setupMocks(repo, pass)

			user, err := app.NewUserUseCase(repo, pass).Register(context.Background(), tt.username, tt.password)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				if len(tt.expectedFields) > 0 {
					var verr *entities.ValidationError
					require.ErrorAs(t, err, &verr)
					for _, field := range tt.expectedFields {
						assert.Contains(t, verr.Fields, field)
					}
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, created, user)
			}
			repo.AssertExpectations(t)
			pass.AssertExpectations(t)
		})
	}
}

func TestGetUserProfile(t *testing.T) {
	user := &entities.User{ID: "user-1", Username: "alice", CreatedAt: time.Now()}

	tests := []struct {
		name        string
		userID      string
		setupMocks  func(repo *mockUserRepository)
		expectedErr error
	}{
		{
			name:   "success",
			userID: user.ID,
			setupMocks: func(repo *mockUserRepository) {
				repo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
			},
		},
		{
			name:        "error - empty user id",
			setupMocks:  func(_ *mockUserRepository) {},
			expectedErr: entities.ErrEmptyUserID,
		},
		{
			name:   "error - user not found",
			userID: "missing",
			setupMocks: func(repo *mockUserRepository) {
				repo.On("FindByID", mock.Anything, "missing").Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedErr: entities.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			tt.setupMocks(repo)

			got, err := app.NewUserUseCase(repo, new(mockPasswordService)).GetUserProfile(context.Background(), tt.userID)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user, got)
			}
			repo.AssertExpectations(t)
		})
	}
}
