package probe

import (
	"context"

	"github.com/readylabs/winready/internal/domain"
)

// DisplayProbe reads the primary screen bounds in pixels. It is only
// meaningful during an interactive session; on platforms without a
// desktop query API it reports unavailable.
type DisplayProbe struct{}

func (DisplayProbe) Name() string { return "display" }

func (p DisplayProbe) Collect(_ context.Context) (domain.FactValue, error) {
	width, height, err := primaryDisplayBounds()
	if err != nil {
		return nil, domain.Unavailablef(p.Name(), "%v", err)
	}
	return domain.Display{Width: width, Height: height}, nil
}
