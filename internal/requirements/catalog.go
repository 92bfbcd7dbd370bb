// Package requirements bundles the published Windows 11 minimum system
// requirements as static reference text. Nothing here is measured or
// compared; the catalog is rendered next to the live report so the
// reader can judge for themselves.
package requirements

import "github.com/readylabs/winready/internal/domain"

var catalog = []domain.RequirementEntry{
	{
		Category:    "Processor",
		Description: "1 gigahertz (GHz) or faster with 2 or more cores on a compatible 64-bit processor or System on a Chip (SoC)",
	},
	{
		Category:    "Memory",
		Description: "4 GB RAM",
	},
	{
		Category:    "Storage",
		Description: "64 GB or larger storage device",
	},
	{
		Category:    "System firmware",
		Description: "UEFI, Secure Boot capable",
	},
	{
		Category:    "TPM",
		Description: "Trusted Platform Module (TPM) version 2.0",
	},
	{
		Category:    "Graphics card",
		Description: "Compatible with DirectX 12 or later with WDDM 2.0 driver",
	},
	{
		Category:    "Display",
		Description: "High definition (720p) display that is greater than 9\" diagonally, 8 bits per color channel",
	},
	{
		Category:    "Internet connection",
		Description: "Internet connectivity is necessary to perform updates and to download and take advantage of some features",
	},
}

// Load returns the ordered minimum-requirement catalog. It is constant
// and side-effect-free; callers must not mutate the returned slice.
func Load() []domain.RequirementEntry {
	return catalog
}
