package trail

import "fmt"

// EventKind tags a RawEvent.
type EventKind int

const (
	KindQuit EventKind = iota
	KindPointerMoved
	KindButtonDown
	KindButtonUp
)

func (k EventKind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindPointerMoved:
		return "pointer_moved"
	case KindButtonDown:
		return "button_down"
	case KindButtonUp:
		return "button_up"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Point is a 2D integer coordinate.
type Point struct {
	X, Y int
}

// RawEvent is one environment event. X and Y are set for pointer and button
// events; Button only for button events.
type RawEvent struct {
	Kind   EventKind
	X, Y   int
	Button Button
}

// Quit builds a termination request.
func Quit() RawEvent { return RawEvent{Kind: KindQuit} }

// Moved builds a pointer motion event.
func Moved(x, y int) RawEvent { return RawEvent{Kind: KindPointerMoved, X: x, Y: y} }

// Pressed builds a button-down event.
func Pressed(b Button, x, y int) RawEvent {
	return RawEvent{Kind: KindButtonDown, X: x, Y: y, Button: b}
}

// Released builds a button-up event.
func Released(b Button, x, y int) RawEvent {
	return RawEvent{Kind: KindButtonUp, X: x, Y: y, Button: b}
}

// Point returns the event position.
func (e RawEvent) Point() Point { return Point{X: e.X, Y: e.Y} }

// Predicates used by the app pipelines.

func isQuit(e RawEvent) bool   { return e.Kind == KindQuit }
func isMotion(e RawEvent) bool { return e.Kind == KindPointerMoved }

func isLeftDown(e RawEvent) bool {
	return e.Kind == KindButtonDown && e.Button == ButtonLeft
}

func isLeftUp(e RawEvent) bool {
	return e.Kind == KindButtonUp && e.Button == ButtonLeft
}
