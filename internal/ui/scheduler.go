package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"contribcard/internal/search"
)

// programScheduler runs search tasks on the Bubble Tea event loop: the timer
// only posts a message, and Update runs the callback.
type programScheduler struct {
	send func(tea.Msg)
}

// programTask fields other than timer are only touched on the event loop
type programTask struct {
	timer   *time.Timer
	f       func()
	stopped bool
	ran     bool
}

// AfterFunc implements search.Scheduler
func (s *programScheduler) AfterFunc(d time.Duration, f func()) search.Task {
	t := &programTask{f: f}
	send := s.send
	t.timer = time.AfterFunc(d, func() {
		if send == nil {
			log.Warn("ui: search task due before program start, dropped")
			return
		}
		send(runTaskMsg{task: t})
	})
	return t
}

// Stop implements search.Task
func (t *programTask) Stop() bool {
	if t.stopped || t.ran {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}

func (t *programTask) run() {
	if t.stopped || t.ran {
		return
	}
	t.ran = true
	t.f()
}
