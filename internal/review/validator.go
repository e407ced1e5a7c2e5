// internal/review/validator.go
package review

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"movie-catalog-service/internal/domain"
)

// Пользовательские сообщения о нарушенных правилах. Они доходят до
// отправителя дословно, поэтому формулировки фиксированы здесь.
const (
	msgAuthorRequired   = "Author name cannot be empty"
	msgRatingOutOfRange = "Rating must be between 1 and 5"
	msgCommentRequired  = "Comment cannot be empty"
)

// ValidationError - нарушение одного из правил валидации отзыва.
// Это ошибка запроса, а не сбой системы: обработчик возвращает Message
// отправителю как есть и не пишет ее в лог как ошибку.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validator проверяет запрос на добавление отзыва. Правила проверяются
// по порядку, побеждает первое нарушение: автор -> оценка -> комментарий.
type Validator struct {
	validate *validator.Validate
}

// NewValidator создает валидатор и регистрирует правило notblank:
// строка непуста после обрезки пробелов по краям.
func NewValidator() *Validator {
	v := validator.New()
	// Ошибка регистрации возможна только при пустом теге, игнорируем.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{validate: v}
}

// Validate возвращает nil, если все правила пройдены, иначе *ValidationError
// с сообщением о первом нарушенном правиле. Порядок правил задан порядком
// полей SubmitReviewRequest.
func (v *Validator) Validate(req domain.SubmitReviewRequest) *ValidationError {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: "Invalid review"}
	}

	switch verrs[0].Field() {
	case "Author":
		return &ValidationError{Message: msgAuthorRequired}
	case "Rating":
		return &ValidationError{Message: msgRatingOutOfRange}
	case "Comment":
		return &ValidationError{Message: msgCommentRequired}
	default:
		return &ValidationError{Message: "Invalid review"}
	}
}
