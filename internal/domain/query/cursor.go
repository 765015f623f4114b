package query

// Direction is a selection movement.
type Direction int

const (
	Up Direction = iota
	Down
)

// Cursor is an index into the active result set.
type Cursor int

// Move returns the cursor after one step in dir over a set of length n.
// Moves past either end are ignored; there is no wrap-around.
func (c Cursor) Move(dir Direction, n int) Cursor {
	if n <= 0 {
		return 0
	}
	next := c
	switch dir {
	case Up:
		next--
	case Down:
		next++
	}
	if next < 0 || int(next) >= n {
		return c.Clamp(n)
	}
	return next
}

// Clamp keeps the cursor inside [0, n).
func (c Cursor) Clamp(n int) Cursor {
	if n <= 0 || c < 0 {
		return 0
	}
	if int(c) >= n {
		return Cursor(n - 1)
	}
	return c
}
