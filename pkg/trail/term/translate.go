package term

import (
	"github.com/gdamore/tcell/v2"

	"go-rxtrail/pkg/trail"
)

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button trail.Button
}{
	{tcell.ButtonPrimary, trail.ButtonLeft},
	{tcell.ButtonMiddle, trail.ButtonMiddle},
	{tcell.ButtonSecondary, trail.ButtonRight},
}

// Translator converts tcell events into trail events.
// tcell reports the set of held buttons on every mouse event, so the translator
// remembers the previous set to produce press and release edges.
type Translator struct {
	held  tcell.ButtonMask
	x, y  int
	moved bool
}

// Translate returns the trail events for ev, in the order they should be delivered.
func (t *Translator) Translate(ev tcell.Event) []trail.RawEvent {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return []trail.RawEvent{trail.Quit()}
		}
	case *tcell.EventInterrupt:
		return []trail.RawEvent{trail.Quit()}
	}
	return nil
}

func (t *Translator) mouse(ev *tcell.EventMouse) []trail.RawEvent {
	var out []trail.RawEvent
	x, y := ev.Position()
	if !t.moved || x != t.x || y != t.y {
		out = append(out, trail.Moved(x, y))
		t.x, t.y, t.moved = x, y, true
	}

	held := ev.Buttons() & (tcell.ButtonPrimary | tcell.ButtonMiddle | tcell.ButtonSecondary)
	for _, b := range buttonMap {
		was, is := t.held&b.mask != 0, held&b.mask != 0
		switch {
		case is && !was:
			out = append(out, trail.Pressed(b.button, x, y))
		case was && !is:
			out = append(out, trail.Released(b.button, x, y))
		}
	}
	t.held = held
	return out
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
