//go:build !windows

package probe

import "errors"

func primaryDisplayBounds() (int, int, error) {
	return 0, 0, errors.New("no display query API on this platform")
}
