// Package checker wires the probes, aggregator, requirement catalog,
// and renderer into the runnable tool.
package checker

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/readylabs/winready/internal/config"
	"github.com/readylabs/winready/internal/domain"
	"github.com/readylabs/winready/internal/probe"
	"github.com/readylabs/winready/internal/render"
	"github.com/readylabs/winready/internal/report"
	"github.com/readylabs/winready/internal/requirements"
)

// Checker is the top-level application: it produces one capability
// report and hands it, with the requirement catalog, to the renderer.
type Checker struct {
	cfg    *config.Config
	logger *slog.Logger

	aggregator *report.Aggregator
	renderer   render.Renderer
}

// New creates and wires all subsystems.
func New(cfg *config.Config, logger *slog.Logger) (*Checker, error) {
	renderer, err := newRenderer(cfg)
	if err != nil {
		return nil, err
	}

	return &Checker{
		cfg:        cfg,
		logger:     logger,
		aggregator: report.New(DefaultProbes(cfg), cfg.ProbeTimeout, logger),
		renderer:   renderer,
	}, nil
}

// DefaultProbes declares the registered probes in their fixed
// presentation order. The report always carries one entry per probe in
// exactly this order.
func DefaultProbes(cfg *config.Config) []probe.Probe {
	return []probe.Probe{
		probe.PlatformProbe{},
		probe.ProcessorProbe{},
		probe.MemoryProbe{},
		probe.StorageProbe{},
		probe.NewGraphicsProbe(cfg.DxdiagBinary, cfg.ReportDir, cfg.DxdiagPoll),
		probe.DisplayProbe{},
		probe.NetworkProbe{},
	}
}

// newRenderer selects the presentation adapter from the configuration.
func newRenderer(cfg *config.Config) (render.Renderer, error) {
	switch cfg.Output {
	case config.OutputJSON:
		return render.JSON{}, nil
	case config.OutputTable, "":
		return render.Table{}, nil
	default:
		return nil, fmt.Errorf("unknown output %q (expected %q or %q)", cfg.Output, config.OutputTable, config.OutputJSON)
	}
}

// Run performs one aggregation pass and renders it to w. Individual
// probe failures surface as placeholder entries, never as an error.
func (c *Checker) Run(ctx context.Context, w io.Writer) error {
	rep := c.aggregator.Produce(ctx)
	c.logger.Info("report produced",
		"id", rep.ID,
		"entries", len(rep.Entries),
		"unavailable", countUnavailable(rep),
	)

	if err := c.renderer.Render(w, rep, requirements.Load()); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func countUnavailable(rep domain.Report) int {
	n := 0
	for _, entry := range rep.Entries {
		if !entry.OK() {
			n++
		}
	}
	return n
}
