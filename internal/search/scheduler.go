package search

import "time"

// Task is a handle to a scheduled callback
type Task interface {
	// Stop prevents the callback from running if it has not started yet.
	Stop() bool
}

// Scheduler runs a callback once after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// TimerScheduler schedules callbacks with time.AfterFunc. Callbacks run on
// the timer goroutine, so it only suits callers that synchronize themselves.
type TimerScheduler struct{}

// AfterFunc implements Scheduler
func (TimerScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}

// SchedulerFunc adapts a function to the Scheduler interface
type SchedulerFunc func(d time.Duration, f func()) Task

// AfterFunc implements Scheduler
func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) Task {
	return fn(d, f)
}
