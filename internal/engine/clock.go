package engine

import "time"

// Clock отдаёт игровое время с начала сессии.
type Clock interface {
	Now() time.Duration
}

// WallClock меряет реальное время с момента создания.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock двигается только по команде. Для тестов и headless-прогонов.
type ManualClock struct {
	T time.Duration
}

func (c *ManualClock) Now() time.Duration {
	return c.T
}

func (c *ManualClock) Advance(d time.Duration) {
	c.T += d
}
