// internal/store/catalog_store.go
package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"

	"movie-catalog-service/internal/domain"
)

// CatalogStore определяет read-only доступ к каталогу фильмов.
// Каталог строится один раз при старте и дальше не изменяется, поэтому
// все методы безопасны для конкурентного вызова без блокировок.
type CatalogStore interface {
	GetAll() []domain.Movie
	GetByID(id int64) (domain.Movie, bool)
	Genres() []string
}

// InMemoryCatalogStore хранит неизменяемый снимок каталога: список в
// порядке загрузки и индекс по ID.
type InMemoryCatalogStore struct {
	movies []domain.Movie
	index  map[int64]domain.Movie
}

// NewInMemoryCatalogStore строит хранилище поверх готового списка фильмов.
// ID считаются уникальными; при дубликате в индексе побеждает более
// поздняя запись (задокументированная особенность, не исправляем).
func NewInMemoryCatalogStore(movies []domain.Movie) *InMemoryCatalogStore {
	index := make(map[int64]domain.Movie, len(movies))
	for _, m := range movies {
		index[m.ID] = m
	}
	return &InMemoryCatalogStore{movies: movies, index: index}
}

// LoadCatalog читает JSON-файл с массивом фильмов и строит хранилище.
// Политика ошибок: нечитаемый файл или некорректный JSON приводят к отказу
// всей загрузки — ошибка логируется, сервис поднимается с пустым каталогом.
// Частичный пропуск битых записей не предполагался и не делается.
func LoadCatalog(path string, logger *slog.Logger) *InMemoryCatalogStore {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read movie catalog file, serving empty catalog",
			slog.String("path", path), slog.String("error", err.Error()))
		return NewInMemoryCatalogStore(nil)
	}

	var movies []domain.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		logger.Error("Failed to parse movie catalog file, serving empty catalog",
			slog.String("path", path), slog.String("error", err.Error()))
		return NewInMemoryCatalogStore(nil)
	}

	logger.Info("Movie catalog loaded", slog.String("path", path), slog.Int("count", len(movies)))
	return NewInMemoryCatalogStore(movies)
}

// GetAll возвращает полный каталог в порядке загрузки.
func (s *InMemoryCatalogStore) GetAll() []domain.Movie {
	return s.movies
}

// GetByID возвращает фильм по ID. Тотальная функция: для нулевого,
// отрицательного или отсутствующего ID возвращает (Movie{}, false),
// ошибки не бывает.
func (s *InMemoryCatalogStore) GetByID(id int64) (domain.Movie, bool) {
	if id <= 0 {
		return domain.Movie{}, false
	}
	m, ok := s.index[id]
	return m, ok
}

// Genres собирает жанры всех фильмов каталога без дубликатов
// (точное сравнение строк, с учетом регистра) и сортирует по возрастанию.
func (s *InMemoryCatalogStore) Genres() []string {
	seen := make(map[string]struct{}, len(s.movies))
	genres := make([]string, 0, len(s.movies))
	for _, m := range s.movies {
		if _, ok := seen[m.Genre]; ok {
			continue
		}
		seen[m.Genre] = struct{}{}
		genres = append(genres, m.Genre)
	}
	sort.Strings(genres)
	return genres
}
