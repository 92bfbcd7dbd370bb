// Package format renders structured fact values as display strings.
// All formatting is locale-independent: probes deal in raw numbers and
// every string layout decision is made here, nowhere else.
package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/readylabs/winready/internal/domain"
)

const (
	kbPerGB    = 1024 * 1024
	bytesPerGB = 1024 * 1024 * 1024
)

// Text renders any fact value as its display string.
func Text(v domain.FactValue) string {
	switch fact := v.(type) {
	case domain.Platform:
		return Platform(fact)
	case domain.Processor:
		return Processor(fact)
	case domain.Memory:
		return Memory(fact)
	case domain.Storage:
		return Storage(fact)
	case domain.Graphics:
		return Graphics(fact)
	case domain.Display:
		return Display(fact)
	case domain.Network:
		return Network(fact)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Platform renders the OS description with the machine architecture.
func Platform(p domain.Platform) string {
	if p.Arch == "" {
		return p.OS
	}
	return p.OS + " (" + p.Arch + ")"
}

// Processor renders clock speed in GHz to one decimal, core count, and
// bit width: "3.4GHz 8cores 64bit".
func Processor(p domain.Processor) string {
	return fmt.Sprintf("%.1fGHz %dcores %dbit", p.ClockMHz/1000, p.LogicalCores, p.ArchBits)
}

// Memory renders total memory in whole gigabytes: "16GB".
func Memory(m domain.Memory) string {
	gb := math.Round(float64(m.TotalKB) / kbPerGB)
	return strconv.Itoa(int(gb)) + "GB"
}

// Storage renders the largest free space in whole gigabytes: "25GB".
func Storage(s domain.Storage) string {
	gb := math.Round(float64(s.MaxFreeBytes) / bytesPerGB)
	return strconv.Itoa(int(gb)) + "GB"
}

// Graphics renders the supported API generation: "DirectX 12".
func Graphics(g domain.Graphics) string {
	return "DirectX " + strconv.Itoa(g.DirectXVersion)
}

// Display renders the primary screen bounds: "1920x1080".
func Display(d domain.Display) string {
	return strconv.Itoa(d.Width) + "x" + strconv.Itoa(d.Height)
}

// Network renders connectivity as a boolean string.
func Network(n domain.Network) string {
	return strconv.FormatBool(n.Up)
}
