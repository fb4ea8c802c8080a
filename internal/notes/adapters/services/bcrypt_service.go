// Package services реализует порты паролей и токенов на bcrypt и JWT.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
	svc "gonotes/internal/notes/ports/services"
)

const (
	errMsgFailedToGenerateHash = "failed to generate password hash"
	errMsgErrorComparingHash   = "error comparing password with hash"
	errMsgPasswordTooLong      = "password is too long"
	errMsgMalformedHash        = "stored password hash is malformed"

	// Сравнение с этим значением выравнивает время ответа для неизвестных имен.
	dummyPassword = "gonotes-dummy-password"
)

// BcryptHasher хранит пароли как bcrypt хеши заданной стоимости.
type BcryptHasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewBcrypt создает хешер. Стоимость вне [bcrypt.MinCost, bcrypt.MaxCost]
// заменяется на bcrypt.DefaultCost.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash возвращает bcrypt хеш пароля со свежей солью.
func (h *BcryptHasher) Hash(_ context.Context, password string) (string, error) {
	switch {
	case password == "":
		return "", services.ErrInvalidPassword
	case len(password) > entities.MaxPasswordLength:
		return "", fmt.Errorf("%s: %w", errMsgPasswordTooLong, services.ErrInvalidPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgFailedToGenerateHash, services.ErrHashingFailed)
	}
	return string(hashed), nil
}

// Verify сравнивает пароль с хешем. Несовпадение не считается ошибкой.
func (h *BcryptHasher) Verify(_ context.Context, password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, services.ErrInvalidPassword
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return false, fmt.Errorf("%s: %w", errMsgMalformedHash, err)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w", errMsgErrorComparingHash, err)
	}
}

// CompareWithDummy тратит на пароль столько же работы, сколько Verify,
// но сравнивает его с хешем, которого нет ни у одного пользователя.
func (h *BcryptHasher) CompareWithDummy(_ context.Context, password string) {
	h.dummyOnce.Do(func() {
		h.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(dummyPassword), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}

// Cost возвращает стоимость, с которой создаются новые хеши.
func (h *BcryptHasher) Cost() int {
	return h.cost
}
