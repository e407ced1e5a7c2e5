// internal/store/postgres_review_source.go
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // драйвер postgres

	"movie-catalog-service/internal/domain"
)

// PostgresReviewSource читает базовые отзывы из таблицы baseline_reviews.
// Источник по-прежнему read-only: сервис только выбирает строки.
type PostgresReviewSource struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewPostgresReviewSource создает источник поверх уже открытого соединения.
func NewPostgresReviewSource(db *sqlx.DB, logger *slog.Logger) (*PostgresReviewSource, error) {
	if db == nil {
		return nil, errors.New("database connection (db) cannot be nil for PostgresReviewSource")
	}
	return &PostgresReviewSource{db: db, logger: logger}, nil
}

// baselineReviewRow - строка таблицы baseline_reviews.
type baselineReviewRow struct {
	Author  string  `db:"author"`
	Avatar  string  `db:"avatar"`
	Rating  float64 `db:"rating"`
	Comment string  `db:"comment"`
}

// ReviewsForMovie возвращает базовые отзывы фильма в порядке вставки.
func (s *PostgresReviewSource) ReviewsForMovie(ctx context.Context, movieID int64) ([]domain.Review, error) {
	query := `SELECT author, avatar, rating, comment FROM baseline_reviews WHERE movie_id = $1 ORDER BY id ASC`

	var rows []baselineReviewRow
	if err := s.db.SelectContext(ctx, &rows, query, movieID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to load baseline reviews from DB",
			slog.Int64("movieID", movieID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load baseline reviews: %w", err)
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, domain.Review{
			Author:  row.Author,
			Avatar:  row.Avatar,
			Rating:  row.Rating,
			Comment: row.Comment,
			Origin:  domain.ReviewOriginBaseline,
		})
	}
	return reviews, nil
}
