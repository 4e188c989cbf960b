package pasture

// EventType discriminates the Event variant.
type EventType uint8

const (
	EventNone    EventType = iota // anything the scenes ignore
	EventQuit                     // window close or terminal interrupt
	EventKeyDown                  // a key transitioned to pressed
)

// Key identifies the keys the programs react to. Every other key maps to
// KeyUnknown.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyRight:   "right",
	KeyLeft:    "left",
	KeyUp:      "up",
	KeyDown:    "down",
}

// String returns the lowercase key name used by test scripts.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return keyNames[KeyUnknown]
}

// ParseKey looks up a key by the name returned from Key.String.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name && Key(i) != KeyUnknown {
			return Key(i), true
		}
	}
	return KeyUnknown, false
}

// Event is a single input event delivered by a Backend. Key is only
// meaningful when Type is EventKeyDown.
type Event struct {
	Type EventType
	Key  Key
}

// QuitEvent returns a window-close event.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// KeyDownEvent returns a key-press event for k.
func KeyDownEvent(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// IsQuit reports whether the event ends the program: a quit event or the
// escape key going down.
func (e Event) IsQuit() bool {
	return e.Type == EventQuit || (e.Type == EventKeyDown && e.Key == KeyEscape)
}

// arrowDelta returns the movement for an arrow key, and false for any other
// key.
func arrowDelta(k Key) (dx, dy int, ok bool) {
	switch k {
	case KeyRight:
		return MoveStep, 0, true
	case KeyLeft:
		return -MoveStep, 0, true
	case KeyUp:
		return 0, -MoveStep, true
	case KeyDown:
		return 0, MoveStep, true
	}
	return 0, 0, false
}
