package keyvalue

import (
	"context"
	"errors"
	"strings"

	libnats "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"marketloop/internal/config"
)

const bucketName = "marketloop"

// JetStream KV keys must match [-/_=.a-zA-Z0-9]+, so the colon in thread keys
// like "messages:u1" is not storable as-is. Logical keys never contain '=',
// which makes the mapping reversible.
func natsKey(key string) string {
	return strings.ReplaceAll(key, ":", "=")
}

// NATS is the persistent backend, one key per KV bucket entry.
type NATS struct {
	conn *libnats.Conn
	kv   jetstream.KeyValue
}

// DialNATS connects and binds the bucket, creating it first when the
// nats-init flag is set.
func DialNATS(ctx context.Context, cfg *config.Config) (*NATS, error) {
	nc, err := libnats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, err
	}

	if cfg.NATSInit {
		if _, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket: bucketName,
		}); err != nil {
			nc.Close()
			return nil, err
		}
	}

	kv, err := js.KeyValue(ctx, bucketName)
	if err != nil {
		nc.Close()
		return nil, err
	}

	return &NATS{conn: nc, kv: kv}, nil
}

func (n *NATS) Name() string { return "nats" }

func (n *NATS) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := n.kv.Get(ctx, natsKey(key))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry.Value(), nil
}

func (n *NATS) Set(ctx context.Context, key string, value []byte) error {
	_, err := n.kv.Put(ctx, natsKey(key), value)
	return err
}

func (n *NATS) Remove(ctx context.Context, key string) error {
	err := n.kv.Delete(ctx, natsKey(key))
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (n *NATS) HealthCheck(context.Context) error {
	_, err := n.conn.RTT()
	return err
}

func (n *NATS) Shutdown(context.Context) error {
	return n.conn.Drain()
}
