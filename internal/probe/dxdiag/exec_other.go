//go:build !windows

package dxdiag

import "os/exec"

func hideWindow(_ *exec.Cmd) {}
