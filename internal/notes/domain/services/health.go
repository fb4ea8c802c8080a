package services

// Статусы компонентов в отчете о здоровье.
const (
	HealthStatusUp   = "up"
	HealthStatusDown = "down"
)

// HealthReport - результат проверки зависимостей сервиса.
type HealthReport struct {
	Healthy    bool
	Components map[string]string
}
