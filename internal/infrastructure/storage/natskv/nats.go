package natskv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"pingate/internal/domain/pin"
)

// Storage хранит значения в JetStream Key-Value бакете
type Storage struct {
	conn *nats.Conn
	kv   jetstream.KeyValue
}

// New подключается к NATS и создает бакет, если его нет
func New(ctx context.Context, url, bucket string, opts ...nats.Option) (*Storage, error) {
	defaults := []nats.Option{
		nats.Name("pingate"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "pingate key-value store",
		History:     1,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("key-value bucket %s: %w", bucket, err)
	}

	return &Storage{conn: nc, kv: kv}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	entry, err := s.kv.Get(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return "", pin.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}

	return string(entry.Value()), nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if _, err := s.kv.Put(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.Get(ctx, key)
	if errors.Is(err, pin.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Storage) Close() error {
	s.conn.Close()
	return nil
}
