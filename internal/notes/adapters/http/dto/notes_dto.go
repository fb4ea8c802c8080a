// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"strings"
	"time"

	"gonotes/internal/notes/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки. Автор берется из токена.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// Normalize обрезает пробелы по краям заголовка и текста.
func (r *CreateNoteRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// Note представляет заметку в ответах API.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
}

// NoteFromEntity преобразует доменную заметку в DTO.
func NoteFromEntity(note *entities.Note) Note {
	return Note{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		Author:    note.AuthorID,
	}
}

// NotesFromEntities преобразует список заметок. Пустой список кодируется как [].
func NotesFromEntities(notes []*entities.Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, note := range notes {
		out = append(out, NoteFromEntity(note))
	}
	return out
}
