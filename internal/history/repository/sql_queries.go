package repository

const (
	// watchedJobs keeps the most recently watched job of each title.
	watchedJobs = `SELECT DISTINCT ON (j.title_id) j.title_id, j.job_id, j.status, j.last_watched_at
					FROM jobs j
					WHERE j.status IN ('ready', 'deleted') AND j.last_watched_at IS NOT NULL
					ORDER BY j.title_id, j.last_watched_at DESC`

	listHistoryQuery = `SELECT w.title_id, COALESCE(t.title, '') AS title, COALESCE(t.poster_path, '') AS poster_path,
					w.last_watched_at, w.job_id, w.status
					FROM (` + watchedJobs + `) w
					LEFT JOIN titles t ON t.title_id = w.title_id
					ORDER BY w.last_watched_at DESC, w.title_id
					LIMIT $1 OFFSET $2`

	countHistoryQuery = `SELECT COUNT(DISTINCT title_id) FROM jobs
					WHERE status IN ('ready', 'deleted') AND last_watched_at IS NOT NULL`
)
