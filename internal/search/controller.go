// Package search implements the typeahead controller behind the contributor
// search box: debounced prefix filtering over the contributor directory,
// keyboard highlight navigation and selection.
//
// A Controller is driven from a single event loop. It is not safe for
// concurrent use; the Scheduler it is given must deliver callbacks on the
// same loop that calls the controller. The default TimerScheduler runs them
// on a timer goroutine, which only holds that contract when the caller waits
// for the resulting notification before touching the controller again.
package search

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultMinCharacters = 3
	DefaultDelay         = 300 * time.Millisecond
	DefaultMaxResults    = 10
)

// NoHighlight is the Highlight value when nothing is highlighted
const NoHighlight = -1

// Directory is the read-only list of known contributor logins
type Directory interface {
	List() []string
}

// Navigator receives committed selections
type Navigator interface {
	GoTo(login string)
}

// NavigatorFunc adapts a function to the Navigator interface
type NavigatorFunc func(login string)

// GoTo implements Navigator
func (f NavigatorFunc) GoTo(login string) { f(login) }

// Options tunes a Controller. Zero values fall back to the defaults.
type Options struct {
	MinCharacters int
	Delay         time.Duration
	MaxResults    int
	Scheduler     Scheduler
}

func (o Options) withDefaults() Options {
	if o.MinCharacters <= 0 {
		o.MinCharacters = DefaultMinCharacters
	}
	if o.Delay <= 0 {
		o.Delay = DefaultDelay
	}
	if o.MaxResults <= 0 {
		o.MaxResults = DefaultMaxResults
	}
	if o.Scheduler == nil {
		o.Scheduler = TimerScheduler{}
	}
	return o
}

// Snapshot is the observable state of a Controller
type Snapshot struct {
	Query string
	// Results is nil until a search has been computed
	Results   []string
	Highlight int
	Visible   bool
	Focused   bool
}

// Highlighted returns the highlighted login, if any
func (s Snapshot) Highlighted() (string, bool) {
	if s.Highlight < 0 || s.Highlight >= len(s.Results) {
		return "", false
	}
	return s.Results[s.Highlight], true
}

// NoResults reports whether the panel is showing an empty search
func (s Snapshot) NoResults() bool {
	return s.Visible && s.Results != nil && len(s.Results) == 0
}

type subscriber struct {
	id uint64
	fn func(Snapshot)
}

// Controller is the typeahead state machine
type Controller struct {
	dir  Directory
	nav  Navigator
	opts Options

	query     string
	results   []string
	highlight int
	visible   bool
	focused   bool

	// single pending recompute; generation invalidates fires that race a Stop
	pending    Task
	generation uint64
	closed     bool

	subscribers []subscriber
	nextSubID   uint64
}

// New creates a controller over dir reporting selections to nav
func New(dir Directory, nav Navigator, opts Options) *Controller {
	return &Controller{
		dir:       dir,
		nav:       nav,
		opts:      opts.withDefaults(),
		highlight: NoHighlight,
	}
}

// SetDirectory swaps the directory. Results on display are recomputed
// against it at once; a pending recompute will use it when it fires.
func (c *Controller) SetDirectory(dir Directory) {
	c.dir = dir
	if c.closed || !c.visible || !c.focused || c.pending != nil {
		return
	}
	c.results = Filter(c.dir, c.query, c.opts.MaxResults)
	c.highlight = NoHighlight
	c.notify()
}

// Options returns the effective options
func (c *Controller) Options() Options {
	return c.opts
}

// Query returns the current text
func (c *Controller) Query() string { return c.query }

// Results returns the current result set; nil means not computed
func (c *Controller) Results() []string { return c.results }

// Highlight returns the highlighted index
func (c *Controller) Highlight() (int, bool) {
	return c.highlight, c.highlight != NoHighlight
}

// Visible reports whether the result panel is shown
func (c *Controller) Visible() bool { return c.visible }

// Focused reports whether the search input holds focus
func (c *Controller) Focused() bool { return c.focused }

// Pending reports whether a recompute is scheduled
func (c *Controller) Pending() bool { return c.pending != nil }

// Snapshot returns the current observable state
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Query:     c.query,
		Results:   c.results,
		Highlight: c.highlight,
		Visible:   c.visible,
		Focused:   c.focused,
	}
}

// Subscribe registers fn to be called after every state change.
// Returns an unsubscribe function.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Focus marks the search input as focused
func (c *Controller) Focus() {
	if c.closed || c.focused {
		return
	}
	c.focused = true
	c.notify()
}

// Blur marks the search input as unfocused. Visible results stay until the
// next recompute so that a pointer can still pick one.
func (c *Controller) Blur() {
	if c.closed || !c.focused {
		return
	}
	c.focused = false
	c.notify()
}

// SetQuery updates the query text and schedules or clears the search
func (c *Controller) SetQuery(text string) {
	if c.closed || text == c.query {
		return
	}
	c.query = text

	if c.focused {
		if utf8.RuneCountInString(text) >= c.opts.MinCharacters {
			c.schedule()
		} else {
			c.cancel()
			c.clearItems()
		}
	}
	c.notify()
}

// OnKey handles a key press while the input is active
func (c *Controller) OnKey(key Key) {
	if c.closed {
		return
	}

	switch key {
	case KeyEscape:
		c.cancel()
		c.clearItems()
		c.query = ""
		c.notify()
	case KeyArrowDown:
		c.moveHighlight(1)
	case KeyArrowUp:
		c.moveHighlight(-1)
	case KeyEnter:
		if login, ok := c.Snapshot().Highlighted(); ok {
			c.commit(login)
		} else if c.query != "" {
			c.commit(c.query)
		}
	}
}

// OnHover highlights the result at index
func (c *Controller) OnHover(index int) {
	if c.closed || index < 0 || index >= len(c.results) || index == c.highlight {
		return
	}
	c.highlight = index
	c.notify()
}

// OnLeave clears the highlight
func (c *Controller) OnLeave() {
	if c.closed || c.highlight == NoHighlight {
		return
	}
	c.highlight = NoHighlight
	c.notify()
}

// Select commits the result at index, as a click on it would
func (c *Controller) Select(index int) {
	if c.closed || index < 0 || index >= len(c.results) {
		return
	}
	c.commit(c.results[index])
}

// Close cancels any pending recompute and detaches subscribers. The
// controller ignores every call afterwards.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.cancel()
	c.closed = true
	c.subscribers = nil
}

func (c *Controller) schedule() {
	c.cancel()
	gen := c.generation
	c.pending = c.opts.Scheduler.AfterFunc(c.opts.Delay, func() {
		c.fire(gen)
	})
}

func (c *Controller) cancel() {
	c.generation++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) fire(gen uint64) {
	if c.closed || gen != c.generation {
		return
	}
	c.pending = nil
	c.generation++

	results := Filter(c.dir, c.query, c.opts.MaxResults)
	if !c.focused {
		c.clearItems()
	} else {
		c.results = results
		c.visible = true
		c.highlight = NoHighlight
	}
	c.notify()
}

// moveHighlight steps the highlight by delta. "No highlight" is a stop in
// the cycle: past the last item (or before the first) comes none, then the
// opposite end.
func (c *Controller) moveHighlight(delta int) {
	n := len(c.results)
	if c.results == nil || !c.visible || n == 0 {
		return
	}

	switch {
	case c.highlight == NoHighlight && delta > 0:
		c.highlight = 0
	case c.highlight == NoHighlight:
		c.highlight = n - 1
	default:
		next := c.highlight + delta
		if next < 0 || next >= n {
			next = NoHighlight
		}
		c.highlight = next
	}
	c.notify()
}

func (c *Controller) commit(login string) {
	c.cancel()
	c.clearItems()
	c.query = ""
	c.focused = false
	c.notify()
	if c.nav != nil {
		c.nav.GoTo(login)
	}
}

func (c *Controller) clearItems() {
	c.results = nil
	c.visible = false
	c.highlight = NoHighlight
}

func (c *Controller) notify() {
	if len(c.subscribers) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, s := range append([]subscriber(nil), c.subscribers...) {
		s.fn(snap)
	}
}

// Filter returns up to limit logins from dir that start with query, ignoring
// case. The result is never nil.
func Filter(dir Directory, query string, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	matches := make([]string, 0, limit)
	if dir == nil || limit == 0 {
		return matches
	}
	prefix := strings.ToLower(query)
	for _, login := range dir.List() {
		if strings.HasPrefix(strings.ToLower(login), prefix) {
			matches = append(matches, login)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
