//go:build windows

package dxdiag

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps the diagnostic tool from flashing a console window.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
