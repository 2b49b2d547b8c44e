package models

import "time"

type HistoryEntry struct {
	TitleID       int64     `json:"title_id" db:"title_id"`
	Title         string    `json:"title" db:"title"`
	PosterPath    string    `json:"poster_path" db:"poster_path"`
	LastWatchedAt time.Time `json:"last_watched_at" db:"last_watched_at"`
	JobID         string    `json:"job_id" db:"job_id"`
	Status        JobStatus `json:"status" db:"status"`
}

type HistoryList struct {
	Movies []*HistoryEntry `json:"movies"`
	Total  int             `json:"total"`
}
