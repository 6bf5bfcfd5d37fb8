package region

import (
	"context"

	"winecast-dashboard/internal/domain/model"
)

// RegionGateway keeps the latest rendered fragment of every display region.
// Write replaces the region wholesale; the last writer wins.
type RegionGateway interface {
	Write(ctx context.Context, fragment model.Fragment) error
	// Read returns the fragment of a region and false when nothing was rendered yet
	Read(ctx context.Context, region model.Region) (model.Fragment, bool, error)
	Health() model.ComponentHealthStatus
}
