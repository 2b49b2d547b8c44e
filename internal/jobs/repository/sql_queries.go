package repository

const (
	jobColumns = `job_id, title_id, status, progress, release_title, release_id, quality, error_message, r2_key,
					file_size, callback_seq, created_at, updated_at, ready_at, expires_at, last_watched_at`

	createJobQuery = `INSERT INTO jobs (job_id, title_id, status, release_title, release_id, quality, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING ` + jobColumns
	getJobByIDQuery = `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1`

	getActiveJobByTitleQuery = `SELECT ` + jobColumns + ` FROM jobs
					WHERE title_id = $1 AND status IN ('queued', 'starting', 'downloading', 'preparing', 'ready', 'error')
					ORDER BY created_at DESC LIMIT 1`
	getLatestJobByTitleQuery = `SELECT ` + jobColumns + ` FROM jobs
					WHERE title_id = $1 ORDER BY created_at DESC LIMIT 1`

	listJobsQuery = `SELECT ` + jobColumns + ` FROM jobs
					WHERE status <> 'deleted' ORDER BY updated_at DESC LIMIT $1`
	listJobsByStatusQuery = `SELECT ` + jobColumns + ` FROM jobs
					WHERE status = $1 ORDER BY updated_at DESC LIMIT $2`

	markJobErrorQuery = `UPDATE jobs SET status = 'error', error_message = $2, updated_at = $3 WHERE job_id = $1`

	applyReadyQuery = `UPDATE jobs
					SET status = 'ready',
					    progress = $2,
					    error_message = $3,
					    r2_key = COALESCE($4, r2_key),
					    file_size = COALESCE($5, file_size),
					    ready_at = $6,
					    expires_at = $7,
					    updated_at = $8,
					    callback_seq = COALESCE($9::bigint, callback_seq)
					WHERE job_id = $1 AND status <> 'deleted'
					  AND ($9::bigint IS NULL OR callback_seq IS NULL OR callback_seq < $9::bigint)`
	applyErrorQuery = `UPDATE jobs
					SET status = 'error',
					    error_message = $2,
					    updated_at = $3,
					    callback_seq = COALESCE($4::bigint, callback_seq)
					WHERE job_id = $1 AND status <> 'deleted'
					  AND ($4::bigint IS NULL OR callback_seq IS NULL OR callback_seq < $4::bigint)`
	applyProgressQuery = `UPDATE jobs
					SET status = $2,
					    progress = $3,
					    updated_at = $4,
					    callback_seq = COALESCE($5::bigint, callback_seq)
					WHERE job_id = $1 AND status <> 'deleted'
					  AND ($5::bigint IS NULL OR callback_seq IS NULL OR callback_seq < $5::bigint)`

	touchLastWatchedQuery = `UPDATE jobs SET last_watched_at = $2 WHERE job_id = $1`

	upsertTitleQuery = `INSERT INTO titles (title_id, title, poster_path, imdb_id, release_year, updated_at)
					VALUES ($1, $2, $3, $4, $5, now())
					ON CONFLICT (title_id) DO UPDATE
					SET title = EXCLUDED.title,
					    poster_path = EXCLUDED.poster_path,
					    imdb_id = EXCLUDED.imdb_id,
					    release_year = EXCLUDED.release_year,
					    updated_at = now()`
)
