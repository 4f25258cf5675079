package glimpse

import "strconv"

// Key is a platform defined key code. Codes are passed through to the
// platform unchanged.
type Key int

func (k Key) String() string {
	return "Key(" + strconv.Itoa(int(k)) + ")"
}
