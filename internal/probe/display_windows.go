//go:build windows

package probe

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const (
	smCxScreen = 0
	smCyScreen = 1
)

var (
	moduser32            = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = moduser32.NewProc("GetSystemMetrics")
)

func primaryDisplayBounds() (int, int, error) {
	width, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	height, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("GetSystemMetrics returned %dx%d", width, height)
	}
	return int(width), int(height), nil
}
