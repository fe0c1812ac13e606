package job

import (
	"blogtask/logger"
	"blogtask/web/service"
)

// StatsJob periodically logs content statistics.
type StatsJob struct {
	serverService service.ServerService
}

func NewStatsJob() *StatsJob {
	return new(StatsJob)
}

func (j *StatsJob) Run() {
	status := j.serverService.GetStatus()
	logger.Infof("content stats: %d users, %d articles, %d tags, %d comments",
		status.Counts.Users, status.Counts.Articles, status.Counts.Tags, status.Counts.Comments)
}
