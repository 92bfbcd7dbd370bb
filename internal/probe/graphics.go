package probe

import (
	"context"
	"time"

	"github.com/readylabs/winready/internal/domain"
	"github.com/readylabs/winready/internal/probe/dxdiag"
)

// GraphicsProbe determines the supported DirectX generation through the
// external diagnostic tool. Any failure of that integration — tool
// missing, report never written, report malformed — is an unavailable
// result, never a fatal one.
type GraphicsProbe struct {
	collector *dxdiag.Collector
}

// NewGraphicsProbe wires the diagnostic tool collector.
func NewGraphicsProbe(binary, reportDir string, poll time.Duration, opts ...dxdiag.Option) GraphicsProbe {
	return GraphicsProbe{collector: dxdiag.NewCollector(binary, reportDir, poll, opts...)}
}

func (GraphicsProbe) Name() string { return "graphics" }

func (p GraphicsProbe) Collect(ctx context.Context) (domain.FactValue, error) {
	version, err := p.collector.Version(ctx)
	if err != nil {
		return nil, domain.Unavailablef(p.Name(), "DirectX version could not be determined: %v", err)
	}
	return domain.Graphics{DirectXVersion: version}, nil
}
