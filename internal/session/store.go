// internal/session/store.go
package session

import (
	"context"

	"movie-catalog-service/internal/domain"
)

// Store определяет внешнее хранилище состояния сессий. Идентификатор
// сессии непрозрачен: его выдачей и временем жизни управляет HTTP-слой.
//
// Get для неизвестной сессии возвращает пустое состояние, а не ошибку:
// отсутствие сессии - нормальная ситуация для нового посетителя.
type Store interface {
	Get(ctx context.Context, sessionID string) (domain.SessionReviewState, error)
	Put(ctx context.Context, sessionID string, state domain.SessionReviewState) error
}
