package loop

import (
	"fmt"
	"io"

	"github.com/vovakirdan/slider-pong/internal/pong"
)

// Announcer publishes score events.
type Announcer interface {
	Announce(ev pong.ScoreEvent)
}

// AnnouncerFunc adapts a function to Announcer.
type AnnouncerFunc func(ev pong.ScoreEvent)

// Announce calls f(ev).
func (f AnnouncerFunc) Announce(ev pong.ScoreEvent) {
	f(ev)
}

// WriterAnnouncer prints one line per point, e.g. to the serial console.
type WriterAnnouncer struct {
	W io.Writer
}

// Announce writes the announcement line.
func (a WriterAnnouncer) Announce(ev pong.ScoreEvent) {
	fmt.Fprintln(a.W, ev.String())
}

// Banner prints the start-up lines.
func Banner(w io.Writer) {
	fmt.Fprintln(w, "Starting Pong game!")
	fmt.Fprintln(w, "Left player uses first slider, right player uses second slider")
	fmt.Fprintln(w, "Score: Left - Right")
}
