// internal/api/handlers_test.go
package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-service/internal/domain"
	"movie-catalog-service/internal/review"
	"movie-catalog-service/internal/search"
	"movie-catalog-service/internal/session"
	"movie-catalog-service/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalog := store.NewInMemoryCatalogStore([]domain.Movie{
		{ID: 1, Name: "The Prison Escape", Director: "Frank Darren", Year: 1994, Genre: "Drama", Duration: 142, IMDBRating: 9.3},
		{ID: 2, Name: "The Family Boss", Director: "Francis Romano", Year: 1972, Genre: "Action/Crime", Duration: 175, IMDBRating: 9.2},
	})
	baseline := store.NewStaticReviewSource([]store.BaselineReviewEntry{
		{MovieID: 1, Author: "CinephileSam", Avatar: "🎥", Rating: 5, Comment: "A classic."},
	})

	reviewService := review.NewService(review.NewValidator(), logger, func(n int) int { return 0 })
	handler := NewHandler(catalog, search.NewEngine(catalog), reviewService, baseline, session.NewMemoryStore(), logger)
	return NewRouter(handler)
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestGetMoviesListsWholeCatalog(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/movies", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, float64(2), payload["total_count"])
	movies := payload["movies"].([]interface{})
	require.Len(t, movies, 2)
	assert.Equal(t, "The Prison Escape", movies[0].(map[string]interface{})["movieName"])
}

func TestGetMoviesLenientIDHandling(t *testing.T) {
	router := newTestRouter(t)

	// Некорректный id на списочном эндпоинте не ошибка, а отсутствие фильтра.
	rec := doRequest(t, router, http.MethodGet, "/api/movies?id=-3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["total_count"])
}

func TestSearchMovies(t *testing.T) {
	router := newTestRouter(t)

	t.Run("by name fragment", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/movies/search?name=prison", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		payload := decodeBody(t, rec)
		assert.Equal(t, true, payload["success"])
		assert.Equal(t, float64(1), payload["totalResults"])
		assert.Equal(t, "Found 1 movie.", payload["message"])
	})

	t.Run("id wins over genre", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/movies/search?id=2&genre=Drama", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		payload := decodeBody(t, rec)
		movies := payload["movies"].([]interface{})
		require.Len(t, movies, 1)
		assert.Equal(t, float64(2), movies[0].(map[string]interface{})["id"])
	})

	t.Run("non-positive explicit id is a request error", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/movies/search?id=0", "", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		payload := decodeBody(t, rec)
		assert.Equal(t, false, payload["success"])
		assert.Contains(t, payload["error"], "positive")
	})

	t.Run("non-numeric id is a request error", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/movies/search?id=abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no matches", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/movies/search?name=nothing", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		payload := decodeBody(t, rec)
		assert.Equal(t, float64(0), payload["totalResults"])
		assert.Equal(t, "No movies found matching your search criteria.", payload["message"])
	})
}

func TestGetGenres(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/genres", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Genres []string `json:"genres"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, []string{"Action/Crime", "Drama"}, payload.Genres)
}

func TestGetMovieByID(t *testing.T) {
	router := newTestRouter(t)

	t.Run("found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/movies/1", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "The Prison Escape", decodeBody(t, rec)["movieName"])
	})

	t.Run("not found", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/movies/999", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/movies/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionMiddlewareIssuesCookie(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/movies", "", nil)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestSubmitReviewFlow(t *testing.T) {
	router := newTestRouter(t)

	// Первый запрос выдает cookie сессии.
	rec := doRequest(t, router, http.MethodGet, "/api/movies/1/details", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	payload := decodeBody(t, rec)
	assert.Len(t, payload["reviews"], 1, "fresh session sees only the baseline review")

	// Отправляем отзыв в рамках той же сессии.
	body := `{"author": "Sam", "rating": 5, "comment": "Masterpiece"}`
	rec = doRequest(t, router, http.MethodPost, "/api/movies/1/reviews", body, cookies)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody(t, rec)["review"].(map[string]interface{})
	assert.Equal(t, "submitted", created["origin"])
	assert.Equal(t, "Sam", created["author"])

	// Детали теперь содержат базовый отзыв и отзыв сессии, в этом порядке.
	rec = doRequest(t, router, http.MethodGet, "/api/movies/1/details", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	payload = decodeBody(t, rec)
	reviews := payload["reviews"].([]interface{})
	require.Len(t, reviews, 2)
	assert.Equal(t, "baseline", reviews[0].(map[string]interface{})["origin"])
	assert.Equal(t, "submitted", reviews[1].(map[string]interface{})["origin"])
	assert.Equal(t, "Sam", payload["author_name"])

	// Другая сессия отзыв не видит.
	rec = doRequest(t, router, http.MethodGet, "/api/movies/1/details", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["reviews"], 1)
}

func TestSubmitReviewValidationError(t *testing.T) {
	router := newTestRouter(t)

	body := `{"author": "Sam", "rating": 5, "comment": "  "}`
	rec := doRequest(t, router, http.MethodPost, "/api/movies/1/reviews", body, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Comment cannot be empty", decodeBody(t, rec)["error"])
}

func TestSubmitReviewUnknownMovie(t *testing.T) {
	router := newTestRouter(t)

	body := `{"author": "Sam", "rating": 5, "comment": "ok"}`
	rec := doRequest(t, router, http.MethodPost, "/api/movies/999/reviews", body, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitReviewMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/movies/1/reviews", `{not json`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovieDetailsIncludesIcon(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/movies/1/details", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "⛓️", decodeBody(t, rec)["icon"])
}
