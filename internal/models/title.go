package models

import (
	"encoding/json"
	"time"
)

// TitleDetails is the slice of catalog metadata this service relies on.
type TitleDetails struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
	IMDbID      string `json:"imdb_id"`
}

func (t *TitleDetails) MarshalBinary() ([]byte, error) {
	return json.Marshal(t)
}

func (t *TitleDetails) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, t)
}

// ReleaseYear returns the year part of ReleaseDate, or 0.
func (t *TitleDetails) ReleaseYear() int {
	if d, err := time.Parse("2006-01-02", t.ReleaseDate); err == nil {
		return d.Year()
	}
	return 0
}
