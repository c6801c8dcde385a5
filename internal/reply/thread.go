package reply

import (
	"time"

	"github.com/dustin/go-humanize"
)

// OwnerFallbackName labels owner replies when the profile has no name.
const OwnerFallbackName = "You"

// ThreadTime returns the relative label and the tooltip shown for a thread entry.
func ThreadTime(t, now time.Time) (string, string) {
	rel := humanize.RelTime(t, now, "ago", "from now")
	clock := t.Format("3:04 PM")

	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, now.Location())
	day := time.Date(y1, m1, d1, 0, 0, 0, 0, now.Location())
	days := int(today.Sub(day).Hours() / 24)

	switch {
	case days <= 0:
		return rel, "Today at " + clock
	case days == 1:
		return rel, "Yesterday at " + clock
	case days < 7:
		return rel, t.Weekday().String() + " at " + clock
	default:
		return rel, t.Format("Jan 2") + " at " + clock
	}
}
