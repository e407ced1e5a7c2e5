// internal/api/handlers.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"movie-catalog-service/internal/domain"
	"movie-catalog-service/internal/review"
	"movie-catalog-service/internal/search"
	"movie-catalog-service/internal/session"
	"movie-catalog-service/internal/store"
)

// Handler содержит зависимости HTTP-обработчиков каталога.
type Handler struct {
	catalog  store.CatalogStore
	engine   *search.Engine
	reviews  *review.Service
	baseline store.BaselineReviewSource
	sessions session.Store
	logger   *slog.Logger
}

// NewHandler создает новый экземпляр Handler.
func NewHandler(
	catalog store.CatalogStore,
	engine *search.Engine,
	reviews *review.Service,
	baseline store.BaselineReviewSource,
	sessions session.Store,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		engine:   engine,
		reviews:  reviews,
		baseline: baseline,
		sessions: sessions,
		logger:   logger,
	}
}

// --- Вспомогательные функции ---

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			h.logger.ErrorContext(r.Context(), "Failed to encode JSON response",
				slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		}
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.respondJSON(w, r, status, map[string]string{"error": message})
}

// parseMovieID разбирает {movieId} из пути. Вторым значением возвращает
// false, если параметр не является положительным целым числом.
func parseMovieID(r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["movieId"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// --- Обработчики ---

// GetMovies возвращает каталог, опционально суженный фильтрами name/id/genre.
// Этот эндпоинт мягкий: некорректный id трактуется как отсутствие фильтра,
// как и внутри поискового движка. Строгая проверка id живет в SearchMovies.
func (h *Handler) GetMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	queryParams := r.URL.Query()
	h.logger.InfoContext(ctx, "GetMovies endpoint hit", slog.String("query", queryParams.Encode()))

	params := search.Params{
		Name:  queryParams.Get("name"),
		Genre: queryParams.Get("genre"),
	}
	if idStr := queryParams.Get("id"); idStr != "" {
		if idVal, err := strconv.ParseInt(idStr, 10, 64); err == nil {
			params.ID = idVal
		}
	}

	movies := h.engine.Search(params)

	response := struct {
		Movies     []domain.Movie `json:"movies"`
		TotalCount int            `json:"total_count"`
	}{
		Movies:     movies,
		TotalCount: len(movies),
	}
	h.respondJSON(w, r, http.StatusOK, response)
}

// SearchMovies - поисковый API с декорированным ответом. В отличие от
// движка, явно переданный некорректный id здесь пользовательская ошибка:
// проверка выполняется до вызова поиска.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	queryParams := r.URL.Query()
	h.logger.InfoContext(ctx, "SearchMovies endpoint hit", slog.String("query", queryParams.Encode()))

	params := search.Params{
		Name:  queryParams.Get("name"),
		Genre: queryParams.Get("genre"),
	}

	idStr := queryParams.Get("id")
	if idStr != "" {
		idVal, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || idVal <= 0 {
			h.logger.WarnContext(ctx, "Search request with invalid movie ID", slog.String("id", idStr))
			h.respondJSON(w, r, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   "Invalid movie ID. ID must be a positive number.",
			})
			return
		}
		params.ID = idVal
	}

	results := h.engine.Search(params)

	message := "No movies found matching your search criteria."
	if len(results) == 1 {
		message = "Found 1 movie."
	} else if len(results) > 1 {
		message = "Found " + strconv.Itoa(len(results)) + " movies."
	}

	response := map[string]interface{}{
		"success":      true,
		"movies":       results,
		"totalResults": len(results),
		"message":      message,
		"searchCriteria": map[string]string{
			"name":  queryParams.Get("name"),
			"id":    idStr,
			"genre": queryParams.Get("genre"),
		},
	}

	h.logger.InfoContext(ctx, "Search completed", slog.Int("results", len(results)))
	h.respondJSON(w, r, http.StatusOK, response)
}

// GetGenres возвращает отсортированный список жанров каталога без дубликатов.
func (h *Handler) GetGenres(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, map[string][]string{"genres": h.catalog.Genres()})
}

// GetMovieByID возвращает один фильм каталога.
func (h *Handler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	movieID, ok := parseMovieID(r)
	if !ok {
		h.respondError(w, r, http.StatusBadRequest, "Invalid movie ID. ID must be a positive number.")
		return
	}

	movie, found := h.catalog.GetByID(movieID)
	if !found {
		h.logger.WarnContext(ctx, "Movie not found", slog.Int64("movieID", movieID))
		h.respondError(w, r, http.StatusNotFound, "Movie not found")
		return
	}
	h.respondJSON(w, r, http.StatusOK, movie)
}

// GetMovieDetails возвращает фильм вместе со всеми отзывами для показа:
// базовые отзывы внешнего источника плюс отзывы текущей сессии.
func (h *Handler) GetMovieDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	movieID, ok := parseMovieID(r)
	if !ok {
		h.respondError(w, r, http.StatusBadRequest, "Invalid movie ID. ID must be a positive number.")
		return
	}

	movie, found := h.catalog.GetByID(movieID)
	if !found {
		h.logger.WarnContext(ctx, "Movie not found for details", slog.Int64("movieID", movieID))
		h.respondError(w, r, http.StatusNotFound, "Movie not found")
		return
	}

	baseline, err := h.baseline.ReviewsForMovie(ctx, movieID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to load baseline reviews",
			slog.Int64("movieID", movieID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to load reviews")
		return
	}

	// Сбой хранилища сессий не прячет страницу фильма: показываем
	// детали без отзывов сессии.
	sessionID := SessionIDFromContext(ctx)
	state, err := h.sessions.Get(ctx, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to load session state, rendering without session reviews",
			slog.String("sessionID", sessionID), slog.String("error", err.Error()))
		state = domain.SessionReviewState{}
	}

	response := struct {
		Movie      domain.Movie    `json:"movie"`
		Icon       string          `json:"icon"`
		Reviews    []domain.Review `json:"reviews"`
		AuthorName string          `json:"author_name,omitempty"`
	}{
		Movie:      movie,
		Icon:       movieIcon(movie.Name),
		Reviews:    h.reviews.DisplayReviews(movieID, baseline, &state),
		AuthorName: state.Author,
	}
	h.respondJSON(w, r, http.StatusOK, response)
}

// SubmitReview принимает отзыв посетителя. Ошибка валидации возвращается
// отправителю дословно и не меняет состояние сессии.
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	movieID, ok := parseMovieID(r)
	if !ok {
		h.respondError(w, r, http.StatusBadRequest, "Invalid movie ID. ID must be a positive number.")
		return
	}

	if _, found := h.catalog.GetByID(movieID); !found {
		h.logger.WarnContext(ctx, "Attempt to review non-existent movie", slog.Int64("movieID", movieID))
		h.respondError(w, r, http.StatusNotFound, "Movie not found")
		return
	}

	var req domain.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "Failed to decode review request body", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	sessionID := SessionIDFromContext(ctx)
	state, err := h.sessions.Get(ctx, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to load session state for review submission",
			slog.String("sessionID", sessionID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to submit review")
		return
	}

	newReview, err := h.reviews.Submit(movieID, req, &state)
	if err != nil {
		var verr *review.ValidationError
		if errors.As(err, &verr) {
			h.respondError(w, r, http.StatusBadRequest, verr.Message)
			return
		}
		h.logger.ErrorContext(ctx, "Failed to submit review", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to submit review")
		return
	}

	if err := h.sessions.Put(ctx, sessionID, state); err != nil {
		h.logger.ErrorContext(ctx, "Failed to persist session state",
			slog.String("sessionID", sessionID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to submit review")
		return
	}

	h.logger.InfoContext(ctx, "Review added", slog.Int64("movieID", movieID))
	h.respondJSON(w, r, http.StatusCreated, map[string]interface{}{
		"message": "Review added",
		"review":  newReview,
	})
}
