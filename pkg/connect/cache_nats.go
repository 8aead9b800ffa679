package connect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/connect/internal/constants"
)

// NATSKVConfig configures the NATS JetStream KeyValue cache.
type NATSKVConfig struct {
	// URL of the NATS server. Ignored when Conn is set.
	URL string

	// Conn reuses an existing connection. The cache does not close it.
	Conn *nats.Conn

	// Bucket is created with TTL when it does not exist yet.
	Bucket string
	TTL    time.Duration
}

// kvStore is the subset of a KV bucket the cache needs.
type kvStore interface {
	get(key string) ([]byte, error)
	put(key string, value []byte) error
	delete(key string) error
	keys() ([]string, error)
}

// NATSKVCache stores response bodies in a JetStream KeyValue bucket so that
// several processes can share them.
type NATSKVCache struct {
	store  kvStore
	nc     *nats.Conn
	ownsNC bool
	now    func() time.Time
}

// NewNATSKVCache connects to NATS (unless a connection is supplied) and opens
// or creates the bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, constants.ErrNATSConfigRequired
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = constants.DefaultNATSBucket
	}

	nc, owns := config.Conn, false
	if nc == nil {
		url := config.URL
		if url == "" {
			url = nats.DefaultURL
		}

		var err error

		nc, err = nats.Connect(url, nats.Name("connect-sdk-cache"))
		if err != nil {
			return nil, fmt.Errorf("connecting to NATS: %w", err)
		}

		owns = true
	}

	js, err := nc.JetStream()
	if err != nil {
		closeIfOwned(nc, owns)

		return nil, fmt.Errorf("opening JetStream: %w", err)
	}

	kv, err := js.KeyValue(bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket:      bucket,
			Description: "Connect API response cache",
			TTL:         config.TTL,
		})
	}

	if err != nil {
		closeIfOwned(nc, owns)

		return nil, fmt.Errorf("opening KV bucket %s: %w", bucket, err)
	}

	return &NATSKVCache{
		store:  natsStore{kv: kv},
		nc:     nc,
		ownsNC: owns,
		now:    time.Now,
	}, nil
}

func newNATSKVCacheWithStore(store kvStore) *NATSKVCache {
	return &NATSKVCache{store: store, now: time.Now}
}

func closeIfOwned(nc *nats.Conn, owns bool) {
	if owns {
		nc.Close()
	}
}

// Get returns the entry stored under key.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	data, err := c.store.get(key)
	if err != nil {
		return nil, err
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.Expired(c.now()) {
		_ = c.store.delete(key)

		return nil, constants.ErrEntryExpired
	}

	return &entry, nil
}

// Set stores entry under key.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	return c.store.put(key, data)
}

// Delete removes key.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	return c.store.delete(key)
}

// Clear removes every key of the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.store.keys()
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := c.store.delete(key); err != nil {
			return err
		}
	}

	return nil
}

// Has reports whether a live entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close closes the NATS connection if the cache opened it.
func (c *NATSKVCache) Close() {
	if c.ownsNC && c.nc != nil {
		c.nc.Close()
	}
}

type natsStore struct {
	kv nats.KeyValue
}

func (s natsStore) get(key string) ([]byte, error) {
	entry, err := s.kv.Get(key)
	if errors.Is(err, nats.ErrKeyNotFound) {
		return nil, constants.ErrKeyNotFound
	}

	if err != nil {
		return nil, err
	}

	return entry.Value(), nil
}

func (s natsStore) put(key string, value []byte) error {
	_, err := s.kv.Put(key, value)

	return err
}

func (s natsStore) delete(key string) error {
	return s.kv.Delete(key)
}

func (s natsStore) keys() ([]string, error) {
	keys, err := s.kv.Keys()
	if errors.Is(err, nats.ErrNoKeysFound) {
		return nil, nil
	}

	return keys, err
}
