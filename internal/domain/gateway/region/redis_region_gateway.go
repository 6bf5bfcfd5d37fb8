package region

import (
	"context"
	"fmt"

	"winecast-dashboard/internal/domain/model"
	"winecast-dashboard/pkg/redis"
)

// RegionCacheName prefixes the keys of stored regions and selects their TTL
const RegionCacheName = "dashboard_regions"

// RedisRegionGateway shares rendered regions between dashboard replicas.
type RedisRegionGateway struct {
	client *redis.Client
	cache  *redis.Cache
}

var _ RegionGateway = (*RedisRegionGateway)(nil)

func NewRedisRegionGateway(client *redis.Client) *RedisRegionGateway {
	return &RedisRegionGateway{
		client: client,
		cache:  redis.NewCache(client, redis.NewCacheOptions().WithCacheName(RegionCacheName)),
	}
}

func (gateway *RedisRegionGateway) Write(ctx context.Context, fragment model.Fragment) error {
	if err := gateway.cache.Set(ctx, string(fragment.Region), fragment); err != nil {
		return fmt.Errorf("failed to store region %s: %w", fragment.Region, err)
	}
	return nil
}

func (gateway *RedisRegionGateway) Read(ctx context.Context, region model.Region) (model.Fragment, bool, error) {
	var fragment model.Fragment
	found, err := gateway.cache.Get(ctx, string(region), &fragment)
	if err != nil {
		return model.Fragment{}, false, fmt.Errorf("failed to read region %s: %w", region, err)
	}
	return fragment, found, nil
}

func (gateway *RedisRegionGateway) Health() model.ComponentHealthStatus {
	check := gateway.client.HealthCheck(context.Background())

	status := model.StatusUp
	if check.Status != redis.StatusUp {
		status = model.StatusDown
	}

	details := map[string]string{"type": "redis"}
	for key, value := range check.Details {
		details[key] = value
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: details,
	}
}
