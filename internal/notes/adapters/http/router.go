// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"gonotes/internal/notes/adapters/http/auth"
	"gonotes/internal/notes/adapters/http/health"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/adapters/http/notes"
	"gonotes/internal/notes/adapters/http/response"
	"gonotes/internal/notes/adapters/http/users"
	"gonotes/internal/notes/ports/api"
)

// MsgRouteNotFound - тело ответа для несуществующих маршрутов.
const MsgRouteNotFound = "route not found"

// UseCases объединяет сценарии, которые обслуживает HTTP API.
type UseCases struct {
	Notes  api.NoteUseCase
	Users  api.UserUseCase
	Auth   api.AuthUseCase
	Health api.HealthUseCase
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, useCases UseCases) {
	notesHandler := notes.NewHandler(useCases.Notes)
	usersHandler := users.NewHandler(useCases.Users)
	authHandler := auth.NewHandler(useCases.Auth)
	healthHandler := health.NewHandler(useCases.Health)
	requireAuth := middleware.NewAuthMiddleware(useCases.Auth)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/healthz", healthHandler.Check)

	// Выдача токенов (публичные).
	tokenRoutes := apiV1.Group("/token")
	tokenRoutes.Post("/", authHandler.Login)
	tokenRoutes.Post("/refresh", authHandler.RefreshTokens)
	tokenRoutes.Post("/logout", authHandler.Logout)

	userRoutes := apiV1.Group("/users")
	userRoutes.Post("/register", usersHandler.Register)
	userRoutes.Get("/me", requireAuth, usersHandler.GetProfile)

	// Маршруты заметок (требуют авторизации).
	notesRoutes := apiV1.Group("/notes", requireAuth)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(ctx fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(response.ErrorBody{Error: MsgRouteNotFound})
	})
}
