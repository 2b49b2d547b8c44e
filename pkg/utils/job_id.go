package utils

import (
	"strings"

	"github.com/google/uuid"
)

// JobIDPrefix marks job identifiers so routes accepting either a job id or a
// title id can tell them apart.
const JobIDPrefix = "job_"

func NewJobID() string {
	return JobIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func IsJobID(id string) bool {
	return strings.HasPrefix(id, JobIDPrefix) && len(id) > len(JobIDPrefix)
}
