// Package job contains the panel's scheduled background jobs.
package job

import (
	"inav-panel/database"
	"inav-panel/logger"
	"inav-panel/util/common"
)

// CheckpointJob flushes the SQLite write-ahead log so the database file
// stays compact on long-running installs.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	defer common.Recover("checkpoint job")
	if err := database.Checkpoint(); err != nil {
		logger.Warning("database checkpoint failed:", err)
	}
}
