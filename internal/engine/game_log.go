package engine

import (
	"fmt"
	"time"

	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	LogInfo   = "INFO"
	LogCombat = "COMBAT"
	LogLoot   = "LOOT"

	maxLogEntries = 6
)

// LogEntry - одна строка ленты сообщений на экране.
type LogEntry struct {
	ID   string
	Text string
	Type string
	At   time.Duration
}

// AddLog добавляет запись в ленту, при переполнении выкидывает самую старую.
func (g *Game) AddLog(text, logType string) {
	now := g.clock.Now()
	g.logSeq++
	g.Logs = append(g.Logs, LogEntry{
		ID:   fmt.Sprintf("%d_%d", g.cfg.Seed, g.logSeq),
		Text: text,
		Type: logType,
		At:   now,
	})
	if len(g.Logs) > maxLogEntries {
		g.Logs = g.Logs[len(g.Logs)-maxLogEntries:]
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
		"at":        now.Round(time.Millisecond).String(),
	}).Info(text)
}

// RecentLogs возвращает записи моложе maxAge, старые первыми.
func (g *Game) RecentLogs(maxAge time.Duration) []LogEntry {
	now := g.clock.Now()
	for i, e := range g.Logs {
		if now-e.At <= maxAge {
			return g.Logs[i:]
		}
	}
	return nil
}
