package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// getList reads a JSON-array value. Absent or unparseable values read as
// the empty collection; corruption resets instead of crashing.
func getList[T any](ctx context.Context, kv Store, key string) ([]T, error) {
	v, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || v == "" {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(v), &out); err != nil {
		return nil, nil
	}
	return out, nil
}

// setList persists the whole collection as one JSON-array value.
func setList[T any](ctx context.Context, kv Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return kv.Set(ctx, key, string(b))
}
