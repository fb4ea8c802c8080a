// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/adapters/http/request"
	"gonotes/internal/notes/adapters/http/response"
	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidNoteID = "invalid note id"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notes api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notes api.NoteUseCase) *Handler {
	return &Handler{
		notes: notes,
	}
}

// ListNotes возвращает заметки текущего пользователя.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return response.Error(ctx, services.ErrUnauthenticated)
	}

	notes, err := h.notes.ListNotes(userCtx, identity)
	if err != nil {
		log.Error(userCtx, "failed to list notes", zap.Error(err))
		return response.Error(ctx, err)
	}

	if err := ctx.JSON(dto.NotesFromEntities(notes)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return response.Error(ctx, services.ErrUnauthenticated)
	}

	var req dto.CreateNoteRequest
	if err := request.Decode(ctx, &req); err != nil {
		log.Debug(userCtx, "invalid create note payload", zap.Error(err))
		return response.Error(ctx, err)
	}

	note, err := h.notes.CreateNote(userCtx, identity, req.Title, req.Content)
	if err != nil {
		log.Error(userCtx, "failed to create note", zap.Error(err))
		return response.Error(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
// Некорректный идентификатор неотличим от отсутствующей заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	userCtx := middleware.RequestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(userCtx, LogHandlerDeleteNote)

	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return response.Error(ctx, services.ErrUnauthenticated)
	}

	noteID := ctx.Params("note_id")
	if _, err := uuid.Parse(noteID); err != nil {
		log.Debug(userCtx, ErrMsgInvalidNoteID, zap.String("noteID", noteID))
		return response.Error(ctx, entities.ErrNoteNotFound)
	}

	if err := h.notes.DeleteNote(userCtx, identity, noteID); err != nil {
		log.Debug(userCtx, "failed to delete note", zap.Error(err))
		return response.Error(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
