package entities

import (
	"errors"
	"regexp"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUserID        = errors.New("user ID cannot be empty")
	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Ограничения учетной записи.
const (
	MaxUsernameLength = 150
	// MaxPasswordLength ограничен входом bcrypt.
	MaxPasswordLength = 72
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// ValidUsername сообщает, состоит ли имя только из букв, цифр и символов @ . + - _.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// User представляет учетную запись. PasswordHash никогда не покидает сервис.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
