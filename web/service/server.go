package service

import (
	"time"

	"blogtask/config"
	"blogtask/database"
	"blogtask/database/model"
	"blogtask/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Status is the panel health snapshot served to the admin UI.
type Status struct {
	T       time.Time `json:"-"`
	Cpu     float64   `json:"cpu"`
	Mem     struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Uptime  uint64 `json:"uptime"`
	Version string `json:"version"`
	Counts  struct {
		Users    int64 `json:"users"`
		Articles int64 `json:"articles"`
		Tags     int64 `json:"tags"`
		Comments int64 `json:"comments"`
	} `json:"counts"`
}

// ServerService reports process and content statistics.
type ServerService struct{}

func (s *ServerService) GetStatus() *Status {
	status := &Status{
		T:       time.Now(),
		Version: config.GetVersion(),
	}

	if percents, err := cpu.Percent(0, false); err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	if upTime, err := host.Uptime(); err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = upTime
	}

	if memInfo, err := mem.VirtualMemory(); err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	db := database.GetDB()
	db.Model(model.User{}).Count(&status.Counts.Users)
	db.Model(model.Article{}).Count(&status.Counts.Articles)
	db.Model(model.Tag{}).Count(&status.Counts.Tags)
	db.Model(model.Comment{}).Count(&status.Counts.Comments)

	return status
}

// GetLogs returns up to count recent log lines at or below the given level.
func (s *ServerService) GetLogs(count int, level string) []string {
	return logger.GetLogs(count, level)
}
