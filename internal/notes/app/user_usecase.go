package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/api"
	"gonotes/internal/notes/ports/repositories"
	svc "gonotes/internal/notes/ports/services"
	"gonotes/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodRegister       = "Register"
	methodGetUserProfile = "GetUserProfile"

	msgStartRegistration   = "starting user registration"
	msgInvalidCredentials  = "invalid registration payload"
	msgUsernameTaken       = "user with this username already exists"
	msgUserRegistered      = "user registered successfully"
	msgRequestingProfile   = "requesting user profile"
	msgEmptyUserIDProvided = "empty user ID provided"
	msgProfileRetrieved    = "user profile successfully retrieved"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUserByID   = "failed to find user by ID"

	errCtxValidatingCredentials = "validating credentials"
	errCtxCheckingUser          = "checking existing user"
	errCtxUsernameRegistered    = "username already registered"
	errCtxHashingPassword       = "hashing password"
	errCtxCreatingUser          = "creating user"
	errCtxValidatingUserID      = "validating user ID"
	errCtxFetchingProfile       = "fetching user profile"

	msgInvalidUsername = "may contain only letters, numbers, and @/./+/-/_ characters"

	fieldUsername = "username"
	fieldPassword = "password"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewUserUseCase создает новый экземпляр сервиса пользователя.
func NewUserUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Register создает учетную запись. Пароль сохраняется только в виде хеша.
func (u *UserUseCaseImpl) Register(ctx context.Context, username, password string) (*entities.User, error) {
	username = strings.TrimSpace(username)
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	if err := validateCredentials(username, password); err != nil {
		log.Debug(ctx, msgInvalidCredentials, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingCredentials, err)
	}

	existingUser, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgUsernameTaken)
		return nil, fmt.Errorf("%s: %w", errCtxUsernameRegistered, entities.ErrUsernameTaken)
	}

	hashedPassword, err := u.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	createdUser, err := u.userRepo.Create(ctx, &entities.User{
		Username:     username,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			log.Debug(ctx, msgUsernameTaken)
		} else {
			log.Error(ctx, msgErrCreateUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))
	return createdUser, nil
}

// GetUserProfile получает профиль пользователя по ID.
func (u *UserUseCaseImpl) GetUserProfile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserProfile), zap.String("userID", userID))
	log.Debug(ctx, msgRequestingProfile)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	log.Info(ctx, msgProfileRetrieved)
	return user, nil
}

// Валидация учетных данных.
func validateCredentials(username, password string) error {
	verr := &entities.ValidationError{}

	switch {
	case username == "":
		verr.Add(fieldUsername, msgFieldRequired)
	case utf8.RuneCountInString(username) > entities.MaxUsernameLength:
		verr.Add(fieldUsername, fmt.Sprintf("must be at most %d characters", entities.MaxUsernameLength))
	case !entities.ValidUsername(username):
		verr.Add(fieldUsername, msgInvalidUsername)
	}

	switch {
	case password == "":
		verr.Add(fieldPassword, msgFieldRequired)
	case len(password) > entities.MaxPasswordLength:
		verr.Add(fieldPassword, fmt.Sprintf("must be at most %d bytes", entities.MaxPasswordLength))
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
