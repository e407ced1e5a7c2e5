// internal/review/service.go
package review

import (
	"log/slog"
	"math/rand"

	"movie-catalog-service/internal/domain"
)

// defaultAvatars - фиксированный набор глифов, из которого сессии
// выдается аватар при первом успешном отзыве.
var defaultAvatars = []string{"👨", "👩", "🧑", "👴", "👵", "🧒"}

// AvatarPicker возвращает индекс в [0, n) для выбора аватара.
// Вынесен в зависимость, чтобы тесты могли подставить детерминированный
// выбор и точно проверить инвариант "выдан один раз - закреплен навсегда".
type AvatarPicker func(n int) int

// Service агрегирует отзывы фильма и проводит отправку новых отзывов
// через валидацию. Состояние сессии передается явно и принадлежит
// внешнему хранилищу сессий; сервис сам ничего не хранит.
type Service struct {
	validator *Validator
	avatars   []string
	pick      AvatarPicker
	logger    *slog.Logger
}

// NewService создает сервис отзывов. pick == nil означает равномерный
// случайный выбор аватара.
func NewService(v *Validator, logger *slog.Logger, pick AvatarPicker) *Service {
	if pick == nil {
		pick = rand.Intn
	}
	return &Service{
		validator: v,
		avatars:   defaultAvatars,
		pick:      pick,
		logger:    logger,
	}
}

// DisplayReviews возвращает отзывы фильма для показа: сначала базовые в
// исходном порядке, затем отзывы этой сессии в порядке отправки.
// Чистое слияние без побочных эффектов.
func (s *Service) DisplayReviews(movieID int64, baseline []domain.Review, state *domain.SessionReviewState) []domain.Review {
	submitted := state.ReviewsFor(movieID)
	all := make([]domain.Review, 0, len(baseline)+len(submitted))
	all = append(all, baseline...)
	all = append(all, submitted...)
	return all
}

// Submit проводит запрос через валидацию и при успехе дописывает отзыв в
// состояние сессии. При ошибке валидации состояние не меняется вообще.
//
// Аватар сессии выбирается один раз при первом успешном отзыве и дальше
// переиспользуется; запомненное имя автора наоборот перезаписывается при
// каждом успешном отзыве.
func (s *Service) Submit(movieID int64, req domain.SubmitReviewRequest, state *domain.SessionReviewState) (domain.Review, error) {
	if verr := s.validator.Validate(req); verr != nil {
		return domain.Review{}, verr
	}

	if state.Avatar == "" {
		state.Avatar = s.avatars[s.pick(len(s.avatars))]
		s.logger.Debug("Assigned session avatar", slog.String("avatar", state.Avatar))
	}
	state.Author = req.Author

	newReview := domain.Review{
		Author:  req.Author,
		Avatar:  state.Avatar,
		Rating:  float64(req.Rating),
		Comment: req.Comment,
		Origin:  domain.ReviewOriginSubmitted,
	}

	if state.Reviews == nil {
		state.Reviews = make(map[int64][]domain.Review)
	}
	state.Reviews[movieID] = append(state.Reviews[movieID], newReview)

	s.logger.Info("Review submitted",
		slog.Int64("movieID", movieID),
		slog.Int("totalForMovie", len(state.Reviews[movieID])))
	return newReview, nil
}
