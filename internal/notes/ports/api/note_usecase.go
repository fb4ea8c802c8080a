// Package api defines the primary ports of the notes service.
package api

import (
	"context"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
)

// NoteUseCase определяет операции с заметками от имени аутентифицированного пользователя.
type NoteUseCase interface {
	ListNotes(ctx context.Context, identity services.Identity) ([]*entities.Note, error)

	CreateNote(ctx context.Context, identity services.Identity, title, content string) (*entities.Note, error)

	DeleteNote(ctx context.Context, identity services.Identity, noteID string) error
}
