package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.AuthorID))

	created := *note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content) VALUES ($1, $2, $3) RETURNING id, created_at`,
		note.AuthorID, note.Title, note.Content,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if hasPgCode(err, pgForeignKeyViolation) {
			log.Debug(ctx, "note author does not exist", zap.String("userID", note.AuthorID))
			return nil, fmt.Errorf("failed to create note: %w", entities.ErrUserNotFound)
		}
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// ListByAuthor получает все заметки автора, новые первыми.
func (r *NoteRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByAuthor"))
	log.Debug(ctx, "listing notes", zap.String("userID", authorID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, title, content, created_at
         FROM notes
         WHERE user_id = $1
         ORDER BY created_at DESC, id`,
		authorID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		if err := rows.Scan(&note.ID, &note.AuthorID, &note.Title, &note.Content, &note.CreatedAt); err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating notes", zap.Error(err))
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	log.Debug(ctx, "notes listed", zap.Int("count", len(notes)))
	return notes, nil
}

// Delete удаляет заметку, только если ее автор authorID.
func (r *NoteRepository) Delete(ctx context.Context, noteID, authorID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID), zap.String("userID", authorID))

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, authorID,
	)
	if err != nil {
		if hasPgCode(err, pgInvalidTextFormat) {
			return entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned", zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	log.Debug(ctx, "note deleted", zap.String("noteID", noteID))
	return nil
}
