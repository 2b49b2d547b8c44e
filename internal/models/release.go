package models

import "time"

type Release struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Size        int64      `json:"size"`
	DownloadURL string     `json:"download_url"`
	Quality     string     `json:"quality"`
	Resolution  string     `json:"resolution"`
	Codec       string     `json:"codec"`
	Source      string     `json:"source"`
	Group       string     `json:"group"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Score       int        `json:"score"`
}

type ReleaseList struct {
	Releases []*Release `json:"releases"`
	Total    int        `json:"total"`
}
