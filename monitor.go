package main

import (
	"context"
	"time"
)

// GroupMonitor periodically logs the live group census at debug level.
type GroupMonitor struct {
	engine   *Engine
	interval time.Duration
}

func NewGroupMonitor(engine *Engine, interval time.Duration) *GroupMonitor {
	return &GroupMonitor{engine: engine, interval: interval}
}

func (m *GroupMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			census := m.engine.GroupCensus()
			LogGroupCensus(len(census))
			for _, group := range census {
				LogGroupCensusEntry(group.Code, group.Members)
			}
		}
	}
}
