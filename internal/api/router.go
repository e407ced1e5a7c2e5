// internal/api/router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter создает и настраивает маршрутизатор сервиса каталога.
func NewRouter(handler *Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(handler.RecoverMiddleware, handler.LoggingMiddleware, handler.SessionMiddleware)

	apiRouter := router.PathPrefix("/api").Subrouter()

	moviesRouter := apiRouter.PathPrefix("/movies").Subrouter()
	moviesRouter.HandleFunc("", handler.GetMovies).Methods(http.MethodGet)
	// /search регистрируется раньше /{movieId}, чтобы не перехватывался шаблоном
	moviesRouter.HandleFunc("/search", handler.SearchMovies).Methods(http.MethodGet)
	moviesRouter.HandleFunc("/{movieId}", handler.GetMovieByID).Methods(http.MethodGet)
	moviesRouter.HandleFunc("/{movieId}/details", handler.GetMovieDetails).Methods(http.MethodGet)
	moviesRouter.HandleFunc("/{movieId}/reviews", handler.SubmitReview).Methods(http.MethodPost)

	apiRouter.HandleFunc("/genres", handler.GetGenres).Methods(http.MethodGet)

	return router
}
