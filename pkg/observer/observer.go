package observer

type EventType int

const (
	DigestEvent EventType = 1
)

type Event struct {
	E      EventType
	Digest string
}

func NewDigestEvent(digest string) Event {
	return Event{Digest: digest, E: DigestEvent}
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	Register(Observer)
	Notify(Event)
}
