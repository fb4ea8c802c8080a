// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodListNotes  = "ListNotes"
	methodCreateNote = "CreateNote"
	methodDeleteNote = "DeleteNote"

	msgListingNotes      = "listing notes"
	msgNotesListed       = "notes listed"
	msgCreatingNote      = "creating note"
	msgInvalidNote       = "invalid note payload"
	msgNoteCreated       = "note created"
	msgDeletingNote      = "deleting note"
	msgNoteNotFound      = "note not found for owner"
	msgNoteDeleted       = "note deleted"
	msgAnonymousIdentity = "request without identity"

	msgErrListNotes  = "failed to list notes"
	msgErrCreateNote = "failed to create note"
	msgErrDeleteNote = "failed to delete note"

	errCtxCheckingIdentity = "checking identity"
	errCtxValidatingNote   = "validating note"
	errCtxListingNotes     = "listing notes"
	errCtxCreatingNote     = "creating note"
	errCtxDeletingNote     = "deleting note"

	fieldTitle   = "title"
	fieldContent = "content"

	msgFieldRequired = "is required"
)

// NoteUseCaseImpl реализует интерфейс NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр сервиса заметок.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{
		noteRepo: noteRepo,
	}
}

// ListNotes возвращает заметки, автором которых является пользователь identity.
func (n *NoteUseCaseImpl) ListNotes(ctx context.Context, identity services.Identity) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("userID", identity.UserID))
	log.Debug(ctx, msgListingNotes)

	if err := requireIdentity(identity); err != nil {
		log.Debug(ctx, msgAnonymousIdentity)
		return nil, err
	}

	notes, err := n.noteRepo.ListByAuthor(ctx, identity.UserID)
	if err != nil {
		log.Error(ctx, msgErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	log.Debug(ctx, msgNotesListed, zap.Int("count", len(notes)))
	return notes, nil
}

// CreateNote создает заметку. Автором всегда становится identity.
func (n *NoteUseCaseImpl) CreateNote(ctx context.Context, identity services.Identity, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("userID", identity.UserID))
	log.Debug(ctx, msgCreatingNote)

	if err := requireIdentity(identity); err != nil {
		log.Debug(ctx, msgAnonymousIdentity)
		return nil, err
	}

	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if err := validateNote(title, content); err != nil {
		log.Debug(ctx, msgInvalidNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, err)
	}

	note, err := entities.NewNote(identity.UserID, title, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	created, err := n.noteRepo.Create(ctx, note)
	if err != nil {
		log.Error(ctx, msgErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", created.ID))
	return created, nil
}

// DeleteNote удаляет заметку, если ее автор identity.
// Чужая и несуществующая заметки неразличимы: обе дают entities.ErrNoteNotFound.
func (n *NoteUseCaseImpl) DeleteNote(ctx context.Context, identity services.Identity, noteID string) error {
	log := logger.Log(ctx).With(
		zap.String("method", methodDeleteNote),
		zap.String("userID", identity.UserID),
		zap.String("noteID", noteID),
	)
	log.Debug(ctx, msgDeletingNote)

	if err := requireIdentity(identity); err != nil {
		log.Debug(ctx, msgAnonymousIdentity)
		return err
	}

	if noteID == "" {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, entities.ErrNoteNotFound)
	}

	if err := n.noteRepo.Delete(ctx, noteID, identity.UserID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			log.Debug(ctx, msgNoteNotFound)
		} else {
			log.Error(ctx, msgErrDeleteNote, zap.Error(err))
		}
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted)
	return nil
}

func requireIdentity(identity services.Identity) error {
	if identity.UserID == "" {
		return fmt.Errorf("%s: %w", errCtxCheckingIdentity, services.ErrUnauthenticated)
	}
	return nil
}

// Валидация заметки.
func validateNote(title, content string) error {
	verr := &entities.ValidationError{}

	switch {
	case title == "":
		verr.Add(fieldTitle, msgFieldRequired)
	case utf8.RuneCountInString(title) > entities.MaxTitleLength:
		verr.Add(fieldTitle, fmt.Sprintf("must be at most %d characters", entities.MaxTitleLength))
	}
	if content == "" {
		verr.Add(fieldContent, msgFieldRequired)
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
