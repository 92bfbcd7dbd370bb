// Package dxdiag extracts the supported DirectX generation from the
// output of the DirectX diagnostic tool. The tool is spawned with an
// argument requesting an XML report to a file; the file is then polled
// until it materializes, bounded by the caller's context, and a single
// version attribute is parsed out of it.
package dxdiag

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const reportFileName = "winready-dxdiag.xml"

var (
	// ErrMissingVersion means the report lacks the DirectXVersion node.
	ErrMissingVersion = errors.New("report has no DirectXVersion node")

	// ErrBadVersion means the version string is not of the accepted
	// "DirectX <integer>" form.
	ErrBadVersion = errors.New("unrecognized DirectX version string")
)

// LaunchFunc starts the diagnostic tool writing its XML report to
// outPath. It returns once the process has been started; the report
// file appears asynchronously.
type LaunchFunc func(ctx context.Context, binary, outPath string) error

// Collector runs the diagnostic tool and parses its report.
type Collector struct {
	binary    string
	reportDir string
	poll      time.Duration
	launch    LaunchFunc
}

// Option customizes a Collector.
type Option func(*Collector)

// WithLaunch overrides how the diagnostic tool is started. Used by
// tests to simulate the external tool.
func WithLaunch(launch LaunchFunc) Option {
	return func(c *Collector) { c.launch = launch }
}

// NewCollector creates a Collector that spawns binary with an XML
// report path under reportDir and re-checks the file every poll
// interval while waiting for it.
func NewCollector(binary, reportDir string, poll time.Duration, opts ...Option) *Collector {
	c := &Collector{
		binary:    binary,
		reportDir: reportDir,
		poll:      poll,
		launch:    launchTool,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Version runs the diagnostic tool and returns the DirectX generation
// number from its report (12 for "DirectX 12"). The wait for the
// report file is bounded by ctx: on expiry the error wraps
// ctx.Err() and no result is returned.
func (c *Collector) Version(ctx context.Context) (int, error) {
	outPath := filepath.Join(c.reportDir, reportFileName)

	// A stale report from an earlier run must not be parsed as fresh.
	_ = os.Remove(outPath)

	if err := c.launch(ctx, c.binary, outPath); err != nil {
		return 0, fmt.Errorf("launch %s: %w", c.binary, err)
	}

	if err := waitForFile(ctx, outPath, c.poll); err != nil {
		return 0, fmt.Errorf("wait for report: %w", err)
	}
	defer os.Remove(outPath)

	f, err := os.Open(outPath)
	if err != nil {
		return 0, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	return ParseVersion(f)
}

// waitForFile polls path every interval until it exists with non-zero
// size, or ctx expires.
func waitForFile(ctx context.Context, path string, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// dxReport mirrors the part of the diagnostic XML document we read:
// <DxDiag><SystemInformation><DirectXVersion>DirectX 12</...
type dxReport struct {
	SystemInformation struct {
		DirectXVersion string `xml:"DirectXVersion"`
	} `xml:"SystemInformation"`
}

// ParseVersion extracts the generation number from a diagnostic XML
// report. Only version strings of the exact form "DirectX <integer>"
// are accepted.
func ParseVersion(r io.Reader) (int, error) {
	var report dxReport
	if err := xml.NewDecoder(r).Decode(&report); err != nil {
		return 0, fmt.Errorf("decode report: %w", err)
	}

	raw := strings.TrimSpace(report.SystemInformation.DirectXVersion)
	if raw == "" {
		return 0, ErrMissingVersion
	}

	numeric, found := strings.CutPrefix(raw, "DirectX ")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrBadVersion, raw)
	}
	version, err := strconv.Atoi(numeric)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadVersion, raw)
	}
	return version, nil
}

// launchTool starts the diagnostic tool in the background and reaps it
// once it exits. The /x flag requests an XML-format report.
func launchTool(ctx context.Context, binary, outPath string) error {
	cmd := exec.CommandContext(ctx, binary, "/x", outPath)
	hideWindow(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
