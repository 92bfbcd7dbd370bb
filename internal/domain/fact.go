package domain

// FactKind identifies which host capability a fact value describes.
type FactKind string

const (
	KindPlatform  FactKind = "platform"
	KindProcessor FactKind = "processor"
	KindMemory    FactKind = "memory"
	KindStorage   FactKind = "storage"
	KindGraphics  FactKind = "graphics"
	KindDisplay   FactKind = "display"
	KindNetwork   FactKind = "network"
)

// FactValue is a structured measurement produced by a probe.
// Values carry raw numbers only; string formatting is a presentation
// concern and lives in internal/format.
type FactValue interface {
	Kind() FactKind
}

// Platform describes the operating system and architecture of the host.
type Platform struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// Processor describes the CPU: maximum clock speed as reported by the
// OS (in MHz), logical core count, and process bit width.
type Processor struct {
	ClockMHz     float64 `json:"clock_mhz"`
	LogicalCores int     `json:"logical_cores"`
	ArchBits     int     `json:"arch_bits"`
}

// Memory describes total visible physical memory in kilobytes.
type Memory struct {
	TotalKB uint64 `json:"total_kb"`
}

// Storage describes free space across ready drives. MaxFreeBytes is the
// largest free-space figure found on any single ready drive.
type Storage struct {
	MaxFreeBytes uint64 `json:"max_free_bytes"`
	ReadyDrives  int    `json:"ready_drives"`
}

// Graphics describes the supported graphics API generation
// (e.g. 12 for DirectX 12).
type Graphics struct {
	DirectXVersion int `json:"directx_version"`
}

// Display describes the primary screen bounds in pixels.
type Display struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Network reports whether any non-loopback network interface is up.
type Network struct {
	Up bool `json:"up"`
}

func (Platform) Kind() FactKind  { return KindPlatform }
func (Processor) Kind() FactKind { return KindProcessor }
func (Memory) Kind() FactKind    { return KindMemory }
func (Storage) Kind() FactKind   { return KindStorage }
func (Graphics) Kind() FactKind  { return KindGraphics }
func (Display) Kind() FactKind   { return KindDisplay }
func (Network) Kind() FactKind   { return KindNetwork }
