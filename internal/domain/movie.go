// internal/domain/movie.go
package domain

// Movie представляет одну запись каталога. Записи создаются один раз при
// загрузке каталога и после этого никогда не изменяются.
type Movie struct {
	ID          int64   `json:"id"`
	Name        string  `json:"movieName"`
	Director    string  `json:"director"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre"` // может быть составной меткой, например "Action/Crime"
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // минуты
	IMDBRating  float64 `json:"imdbRating"`
}
