package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDirectoryLoaded     EventType = "DirectoryLoaded"
	EventDirectoryLoadFailed EventType = "DirectoryLoadFailed"
	EventContributorSelected EventType = "ContributorSelected"
	EventCardLoaded          EventType = "CardLoaded"
	EventCardNotFound        EventType = "CardNotFound"
	EventCardFailed          EventType = "CardFailed"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DirectoryLoadedEvent is emitted when the all-contributors index is (re)loaded.
// Directory holds a *directory.Directory; it is typed loosely to keep domain
// free of package dependencies.
type DirectoryLoadedEvent struct {
	Directory interface{}
	Count     int
}

func (e DirectoryLoadedEvent) Type() EventType { return EventDirectoryLoaded }

// DirectoryLoadFailedEvent is emitted when the index cannot be loaded
type DirectoryLoadFailedEvent struct {
	Err error
}

func (e DirectoryLoadFailedEvent) Type() EventType { return EventDirectoryLoadFailed }

// ContributorSelectedEvent is emitted when a search selection is committed
type ContributorSelectedEvent struct {
	Login string
}

func (e ContributorSelectedEvent) Type() EventType { return EventContributorSelected }

// CardLoadedEvent carries a fetched contributor document
type CardLoadedEvent struct {
	Login       string
	Contributor *Contributor
}

func (e CardLoadedEvent) Type() EventType { return EventCardLoaded }

// CardNotFoundEvent is emitted when no document exists for the login
type CardNotFoundEvent struct {
	Login string
}

func (e CardNotFoundEvent) Type() EventType { return EventCardNotFound }

// CardFailedEvent is emitted when fetching a document fails
type CardFailedEvent struct {
	Login string
	Err   error
}

func (e CardFailedEvent) Type() EventType { return EventCardFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
