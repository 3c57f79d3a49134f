package geocode

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/astrarium/natalchart/internal/domain/chart"
)

// ValkeyStore persists geocode results in a Valkey-compatible database
// so a fleet of instances shares one cache.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "geocode"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

type valkeyEntry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Get implements Store.
func (s *ValkeyStore) Get(ctx context.Context, key string) (chart.Coordinates, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return chart.Coordinates{}, false, nil
		}
		return chart.Coordinates{}, false, err
	}
	var entry valkeyEntry
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		return chart.Coordinates{}, false, err
	}
	return chart.Coordinates{Lat: entry.Lat, Lon: entry.Lon}, true, nil
}

// Save implements Store.
func (s *ValkeyStore) Save(ctx context.Context, key string, coords chart.Coordinates, ttl time.Duration) error {
	payload, err := json.Marshal(valkeyEntry{Lat: coords.Lat, Lon: coords.Lon})
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return s.prefix + ":place:" + key
}

var _ Store = (*ValkeyStore)(nil)
