package infra_availability_cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"

	"github.com/moviedrafter/core/internal/model"
)

// Driver caches availability verdicts under a shared key prefix so Purge can
// drop every verdict without touching unrelated keys.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Set(key string, result *model.AvailabilityResult, ttl time.Duration) error {
	payload, err := json.Marshal(FromDomain(result))
	if err != nil {
		return fmt.Errorf("failed to marshal availability result: %w", err)
	}

	fullKey := d.getFullKey(key)
	err = d.client.Set(fullKey, payload, ttl).Err()
	if err != nil {
		return err
	}

	return nil
}

func (d *Driver) Get(key string) (*model.AvailabilityResult, error) {
	fullKey := d.getFullKey(key)

	val, err := d.client.Get(fullKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var resultDB AvailabilityResultDB
	if err := json.Unmarshal(val, &resultDB); err != nil {
		return nil, fmt.Errorf("failed to unmarshal availability result: %w", err)
	}

	result := resultDB.ToDomain()
	return &result, nil
}

func (d *Driver) Purge() error {
	keys, err := d.client.Keys(d.getFullKey("*")).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	return d.client.Del(keys...).Err()
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
