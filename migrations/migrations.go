// Package migrations встраивает SQL миграции сервиса в бинарный файл.
package migrations

import "embed"

// NotesDir - каталог миграций сервиса заметок внутри Notes.
const NotesDir = "notes"

// Notes содержит миграции схемы сервиса заметок.
//
//go:embed notes/*.sql
var Notes embed.FS
