// Package entities defines the domain entities for the notes service.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyAuthor  = errors.New("note author cannot be empty")
)

// MaxTitleLength - максимальная длина заголовка заметки в символах.
const MaxTitleLength = 100

// Note представляет собой заметку пользователя.
// Автор назначается при создании и больше не меняется.
type Note struct {
	ID        string
	AuthorID  string
	Title     string
	Content   string
	CreatedAt time.Time
}

// NewNote создает заметку, принадлежащую автору authorID.
func NewNote(authorID, title, content string) (*Note, error) {
	if authorID == "" {
		return nil, ErrEmptyAuthor
	}
	return &Note{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	}, nil
}
