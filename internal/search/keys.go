package search

// Key is a keyboard key the controller reacts to
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyArrowDown
	KeyArrowUp
	KeyEnter
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyEnter:
		return "Enter"
	default:
		return "Other"
	}
}

// ParseKey maps a key name as reported by a terminal toolkit ("esc", "down",
// "enter", ...) to a Key. Unknown names map to KeyOther.
func ParseKey(name string) Key {
	switch name {
	case "esc", "escape", "Escape":
		return KeyEscape
	case "down", "ctrl+n", "ArrowDown":
		return KeyArrowDown
	case "up", "ctrl+p", "ArrowUp":
		return KeyArrowUp
	case "enter", "Enter":
		return KeyEnter
	default:
		return KeyOther
	}
}
