// Package job contains the background jobs scheduled by the web server.
package job

import (
	"blogtask/database"
	"blogtask/logger"
)

// CheckpointJob flushes the SQLite write-ahead log back into the main
// database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
	}
}
