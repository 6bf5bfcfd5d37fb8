package region

import (
	"context"
	"strconv"
	"sync"

	"winecast-dashboard/internal/domain/model"
)

type MemoryRegionGateway struct {
	fragments map[model.Region]model.Fragment
	mutex     sync.RWMutex
}

var _ RegionGateway = (*MemoryRegionGateway)(nil)

func NewMemoryRegionGateway() *MemoryRegionGateway {
	return &MemoryRegionGateway{
		fragments: make(map[model.Region]model.Fragment),
	}
}

func (gateway *MemoryRegionGateway) Write(_ context.Context, fragment model.Fragment) error {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.fragments[fragment.Region] = fragment
	return nil
}

func (gateway *MemoryRegionGateway) Read(_ context.Context, region model.Region) (model.Fragment, bool, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()
	fragment, ok := gateway.fragments[region]
	return fragment, ok, nil
}

func (gateway *MemoryRegionGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"type":    "memory",
			"regions": strconv.Itoa(len(gateway.fragments)),
		},
	}
}
