// internal/search/search.go
package search

import (
	"strings"

	"movie-catalog-service/internal/domain"
	"movie-catalog-service/internal/store"
)

// Params - критерии поиска. Нулевые значения означают отсутствие фильтра.
type Params struct {
	Name  string
	ID    int64
	Genre string
}

// Engine выполняет поиск по каталогу. Чистое вычисление над неизменяемым
// снимком: без состояния, без блокировок, без ошибок.
type Engine struct {
	catalog store.CatalogStore
}

func NewEngine(catalog store.CatalogStore) *Engine {
	return &Engine{catalog: catalog}
}

// Search применяет критерии с определенным приоритетом:
//   - положительный ID перекрывает все остальное: результат - ровно один
//     фильм или пустой список, имя и жанр игнорируются;
//   - иначе имя и жанр работают как независимые фильтры по логическому И
//     (подстрока без учета регистра, фрагмент обрезается по краям,
//     пустой фрагмент пропускает все);
//   - порядок каталога сохраняется.
//
// Некорректный ID (<= 0) здесь трактуется как отсутствие фильтра, а не
// ошибка: пользовательскую ошибку по ID поднимает вызывающий слой.
// Вызов без критериев эквивалентен GetAll.
func (e *Engine) Search(p Params) []domain.Movie {
	if p.ID > 0 {
		if m, ok := e.catalog.GetByID(p.ID); ok {
			return []domain.Movie{m}
		}
		return []domain.Movie{}
	}

	name := strings.ToLower(strings.TrimSpace(p.Name))
	genre := strings.ToLower(strings.TrimSpace(p.Genre))

	all := e.catalog.GetAll()
	results := make([]domain.Movie, 0, len(all))
	for _, m := range all {
		matchesName := name == "" || strings.Contains(strings.ToLower(m.Name), name)
		matchesGenre := genre == "" || strings.Contains(strings.ToLower(m.Genre), genre)
		if matchesName && matchesGenre {
			results = append(results, m)
		}
	}
	return results
}
