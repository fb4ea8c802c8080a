// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// NoteRepository определяет операции хранилища заметок.
// Все выборки и удаления ограничены автором.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entities.Note, error)
	Delete(ctx context.Context, noteID, authorID string) error
}
