package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// Layer describes how typed values map onto a byte store
type Layer[K any, V any] struct {
	// Name labels the layer in logs
	Name   string
	Key    func(K) string
	Encode func(V) ([]byte, error)
	Decode func([]byte) (V, error)
	// Validate is optional; a failure makes the entry a miss
	Validate func(K, V) error
}

// ReadThrough is a typed cache-or-compute layer over a byte store. Entries
// that fail to decode or validate are treated as absent.
type ReadThrough[K any, V any] struct {
	store  Cache
	layer  Layer[K, V]
	logger *slog.Logger
}

// NewReadThrough creates a read-through layer over store
func NewReadThrough[K any, V any](store Cache, layer Layer[K, V], logger *slog.Logger) *ReadThrough[K, V] {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadThrough[K, V]{
		store:  store,
		layer:  layer,
		logger: logger.With("layer", layer.Name),
	}
}

// Get returns the cached value for k
func (r *ReadThrough[K, V]) Get(k K) (V, bool) {
	var zero V
	key := r.layer.Key(k)

	data, ok := r.store.Get(key)
	if !ok {
		r.logger.Debug("cache miss", "key", key)
		return zero, false
	}

	v, err := r.layer.Decode(data)
	if err == nil && r.layer.Validate != nil {
		err = r.layer.Validate(k, v)
	}
	if err != nil {
		r.logger.Warn("discarding malformed cache entry", "key", key, "error", err)
		return zero, false
	}

	r.logger.Debug("cache hit", "key", key)
	return v, true
}

// Put stores v under k
func (r *ReadThrough[K, V]) Put(k K, v V) error {
	key := r.layer.Key(k)
	data, err := r.layer.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes the entry for k
func (r *ReadThrough[K, V]) Delete(k K) error {
	return r.store.Delete(r.layer.Key(k))
}

// GetOrCompute returns the cached value or computes, stores and returns it.
// A compute error is returned as is and nothing is stored.
func (r *ReadThrough[K, V]) GetOrCompute(ctx context.Context, k K, compute func(context.Context, K) (V, error)) (V, error) {
	if v, ok := r.Get(k); ok {
		return v, nil
	}

	v, err := compute(ctx, k)
	if err != nil {
		var zero V
		return zero, err
	}

	if err := r.Put(k, v); err != nil {
		return v, err
	}
	return v, nil
}
