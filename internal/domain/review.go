// internal/domain/review.go
package domain

// ReviewOrigin различает базовые отзывы (из внешнего источника) и отзывы,
// отправленные посетителем в рамках сессии.
type ReviewOrigin string

const (
	ReviewOriginBaseline  ReviewOrigin = "baseline"
	ReviewOriginSubmitted ReviewOrigin = "submitted"
)

// Review представляет один отзыв о фильме.
// Rating хранится как float64 для единообразия: пользовательские оценки
// приходят целыми числами, базовые могут быть дробными.
type Review struct {
	Author  string       `json:"author"`
	Avatar  string       `json:"avatar"` // короткий визуальный маркер (emoji)
	Rating  float64      `json:"rating"`
	Comment string       `json:"comment"`
	Origin  ReviewOrigin `json:"origin"`
}

// SubmitReviewRequest определяет тело запроса на добавление отзыва.
// Порядок полей важен: валидатор сообщает о первом нарушенном правиле.
type SubmitReviewRequest struct {
	Author  string `json:"author" validate:"notblank"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"notblank"`
}

// SessionReviewState хранит состояние отзывов одной браузерной сессии:
// отправленные отзывы по фильмам (в порядке отправки), запомненное имя
// автора и закрепленный за сессией аватар.
type SessionReviewState struct {
	Author  string             `json:"author,omitempty"`
	Avatar  string             `json:"avatar,omitempty"`
	Reviews map[int64][]Review `json:"reviews,omitempty"` // ключ: ID фильма
}

// ReviewsFor возвращает отправленные в этой сессии отзывы для фильма
// в порядке отправки. Для пустой сессии возвращает nil.
func (s *SessionReviewState) ReviewsFor(movieID int64) []Review {
	if s == nil || s.Reviews == nil {
		return nil
	}
	return s.Reviews[movieID]
}

// Clone возвращает глубокую копию состояния, чтобы хранилище сессий не
// делило слайсы отзывов с вызывающим кодом.
func (s SessionReviewState) Clone() SessionReviewState {
	out := SessionReviewState{Author: s.Author, Avatar: s.Avatar}
	if s.Reviews == nil {
		return out
	}
	out.Reviews = make(map[int64][]Review, len(s.Reviews))
	for movieID, reviews := range s.Reviews {
		copied := make([]Review, len(reviews))
		copy(copied, reviews)
		out.Reviews[movieID] = copied
	}
	return out
}
