// internal/store/review_source.go
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"movie-catalog-service/internal/domain"
)

// BaselineReviewSource отдает базовые (редакционные) отзывы для фильма.
// Источник внешний и read-only: сервис никогда не изменяет эти отзывы.
type BaselineReviewSource interface {
	ReviewsForMovie(ctx context.Context, movieID int64) ([]domain.Review, error)
}

// BaselineReviewEntry - формат одной записи в reviews.json.
type BaselineReviewEntry struct {
	MovieID int64   `json:"movieId"`
	Author  string  `json:"author"`
	Avatar  string  `json:"avatar"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// StaticReviewSource хранит базовые отзывы, загруженные из JSON-файла при
// старте. После загрузки данные неизменяемы.
type StaticReviewSource struct {
	byMovie map[int64][]domain.Review
}

// NewStaticReviewSource строит источник поверх готовых записей.
func NewStaticReviewSource(entries []BaselineReviewEntry) *StaticReviewSource {
	byMovie := make(map[int64][]domain.Review)
	for _, e := range entries {
		byMovie[e.MovieID] = append(byMovie[e.MovieID], domain.Review{
			Author:  e.Author,
			Avatar:  e.Avatar,
			Rating:  e.Rating,
			Comment: e.Comment,
			Origin:  domain.ReviewOriginBaseline,
		})
	}
	return &StaticReviewSource{byMovie: byMovie}
}

// LoadStaticReviewSource читает reviews.json. Та же политика, что у
// LoadCatalog: любая ошибка чтения или разбора означает пустой источник,
// сервис продолжает работать.
func LoadStaticReviewSource(path string, logger *slog.Logger) *StaticReviewSource {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read baseline reviews file, serving no baseline reviews",
			slog.String("path", path), slog.String("error", err.Error()))
		return NewStaticReviewSource(nil)
	}

	var entries []BaselineReviewEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("Failed to parse baseline reviews file, serving no baseline reviews",
			slog.String("path", path), slog.String("error", err.Error()))
		return NewStaticReviewSource(nil)
	}

	logger.Info("Baseline reviews loaded", slog.String("path", path), slog.Int("count", len(entries)))
	return NewStaticReviewSource(entries)
}

// ReviewsForMovie возвращает базовые отзывы в порядке их появления в файле.
// Для фильма без отзывов возвращает пустой слайс, не ошибку.
func (s *StaticReviewSource) ReviewsForMovie(_ context.Context, movieID int64) ([]domain.Review, error) {
	reviews := s.byMovie[movieID]
	out := make([]domain.Review, len(reviews))
	copy(out, reviews)
	return out, nil
}
