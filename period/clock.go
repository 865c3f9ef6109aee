// Package period provides the pay-period tag stamped on new transactions.
package period

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule rolls the period at midnight on the 1st and 16th of each month
const DefaultSchedule = "0 0 1,16 * *"

// Label names the half-month pay period containing t, e.g. "Oct 1-15, 2026"
// or "Oct 16-31, 2026".
func Label(t time.Time) string {
	year, month, day := t.Date()
	if day <= 15 {
		return fmt.Sprintf("%s 1-15, %d", month.String()[:3], year)
	}
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, t.Location()).Day()
	return fmt.Sprintf("%s 16-%d, %d", month.String()[:3], last, year)
}

// Clock holds the current period tag and refreshes it on a cron schedule
type Clock struct {
	mu      sync.RWMutex
	current string
	now     func() time.Time
	cron    *cron.Cron
}

// NewClock creates a clock whose tag is computed from now()
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	c := &Clock{now: now}
	c.Refresh()
	return c
}

// Current returns the active period tag
func (c *Clock) Current() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Refresh recomputes the tag and returns it
func (c *Clock) Refresh() string {
	label := Label(c.now())
	c.mu.Lock()
	c.current = label
	c.mu.Unlock()
	return label
}

// Start schedules Refresh using a standard five-field cron expression.
// onRoll, if set, is called with the tag after every scheduled refresh.
func (c *Clock) Start(schedule string, onRoll func(tag string)) error {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	sched := cron.New()
	_, err := sched.AddFunc(schedule, func() {
		tag := c.Refresh()
		if onRoll != nil {
			onRoll(tag)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid period schedule %q: %w", schedule, err)
	}

	c.mu.Lock()
	c.cron = sched
	c.mu.Unlock()

	sched.Start()
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish
func (c *Clock) Stop() {
	c.mu.RLock()
	sched := c.cron
	c.mu.RUnlock()

	if sched != nil {
		<-sched.Stop().Done()
	}
}

// ValidateSchedule reports whether schedule parses as a five-field cron expression
func ValidateSchedule(schedule string) error {
	_, err := cron.ParseStandard(schedule)
	return err
}
