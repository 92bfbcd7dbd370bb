package dxdiag

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedReport = `<?xml version="1.0"?>
<DxDiag>
	<SystemInformation>
		<Time>2026/08/29</Time>
		<DirectXVersion>DirectX 12</DirectXVersion>
	</SystemInformation>
</DxDiag>`

func TestParseVersion(t *testing.T) {
	version, err := ParseVersion(strings.NewReader(wellFormedReport))
	require.NoError(t, err)
	assert.Equal(t, 12, version)
}

func TestParseVersionMissingNode(t *testing.T) {
	report := `<DxDiag><SystemInformation><Time>now</Time></SystemInformation></DxDiag>`
	_, err := ParseVersion(strings.NewReader(report))
	assert.ErrorIs(t, err, ErrMissingVersion)
}

func TestParseVersionBadString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no prefix", raw: "Direct3D 12"},
		{name: "non numeric", raw: "DirectX twelve"},
		{name: "trailing text", raw: "DirectX 12.1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := `<DxDiag><SystemInformation><DirectXVersion>` +
				tc.raw + `</DirectXVersion></SystemInformation></DxDiag>`
			_, err := ParseVersion(strings.NewReader(report))
			assert.ErrorIs(t, err, ErrBadVersion)
		})
	}
}

func TestParseVersionMalformedXML(t *testing.T) {
	_, err := ParseVersion(strings.NewReader("<DxDiag><unterminated"))
	assert.Error(t, err)
}

func TestVersionToolWritesReport(t *testing.T) {
	dir := t.TempDir()

	// Simulate a tool that takes a moment to publish its report.
	launch := func(_ context.Context, _, outPath string) error {
		go func() {
			time.Sleep(20 * time.Millisecond)
			_ = os.WriteFile(outPath, []byte(wellFormedReport), 0o644)
		}()
		return nil
	}

	c := NewCollector("dxdiag", dir, 5*time.Millisecond, WithLaunch(launch))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	version, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, version)
}

func TestVersionToolNeverWrites(t *testing.T) {
	dir := t.TempDir()

	launch := func(context.Context, string, string) error { return nil }
	c := NewCollector("dxdiag", dir, 5*time.Millisecond, WithLaunch(launch))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Version(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second, "wait must be bounded by the context")
}

func TestVersionLaunchFails(t *testing.T) {
	launch := func(context.Context, string, string) error {
		return errors.New("executable not found")
	}
	c := NewCollector("dxdiag", t.TempDir(), 5*time.Millisecond, WithLaunch(launch))

	_, err := c.Version(context.Background())
	assert.ErrorContains(t, err, "launch")
}

func TestVersionIgnoresStaleReport(t *testing.T) {
	dir := t.TempDir()

	// A leftover report claims DirectX 9; the fresh run writes 12.
	stale := strings.Replace(wellFormedReport, "DirectX 12", "DirectX 9", 1)
	require.NoError(t, os.WriteFile(dir+"/"+reportFileName, []byte(stale), 0o644))

	launch := func(_ context.Context, _, outPath string) error {
		return os.WriteFile(outPath, []byte(wellFormedReport), 0o644)
	}
	c := NewCollector("dxdiag", dir, 5*time.Millisecond, WithLaunch(launch))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	version, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, version)
}
