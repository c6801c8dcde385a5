package dashboard

// Key is a feed keyboard event.
type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
)

func (k Key) IsValid() bool {
	switch k {
	case KeyArrowDown, KeyArrowUp, KeyEnter, KeyEscape:
		return true
	}
	return false
}

// NoCursor marks that no comment has focus.
const NoCursor = -1

// MoveCursor moves the focus circularly over a feed of n comments.
// Keys other than the arrows leave it where it is.
func MoveCursor(cur, n int, key Key) int {
	if n <= 0 {
		return NoCursor
	}
	cur = ClampCursor(cur, n)
	switch key {
	case KeyArrowDown:
		if cur == NoCursor {
			return 0
		}
		return (cur + 1) % n
	case KeyArrowUp:
		if cur <= 0 {
			return n - 1
		}
		return cur - 1
	default:
		return cur
	}
}

// ClampCursor resets a cursor that no longer points into the feed.
func ClampCursor(cur, n int) int {
	if cur < 0 || cur >= n {
		return NoCursor
	}
	return cur
}
