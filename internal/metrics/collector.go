package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"marketloop/internal/core"
	"marketloop/internal/keyvalue"
)

var collectionSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "marketloop_collection_size",
	Help: "Record count per persisted collection.",
}, []string{"collection"})

// Collector periodically gauges how many records every collection holds.
type Collector struct {
	Logger *slog.Logger
	KV     core.KeyValueStore
}

func (c *Collector) Init(_ context.Context) error {
	c.Logger = c.Logger.With("component", "metrics.Collector")
	return nil
}

func (c *Collector) Run(ctx context.Context) error {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := c.collect(ctx); err != nil {
				c.Logger.Warn("collecting collection sizes", "error", err)
			}
		}
	}
}

func (c *Collector) collect(ctx context.Context) error {
	collections := []string{
		core.KeyPosts,
		core.KeyProducts,
		core.KeyOrders,
		core.KeyProfiles,
		core.KeyConversations,
		core.KeySellerProducts,
	}

	for _, key := range collections {
		items, err := keyvalue.GetJSON(ctx, c.KV, key, []json.RawMessage(nil))
		if err != nil {
			return err
		}
		collectionSize.WithLabelValues(key).Set(float64(len(items)))
	}

	conversations, err := keyvalue.GetJSON(ctx, c.KV, core.KeyConversations, []core.Conversation(nil))
	if err != nil {
		return err
	}
	for _, conversation := range conversations {
		key := core.MessagesKey(conversation.ID)
		items, err := keyvalue.GetJSON(ctx, c.KV, key, []json.RawMessage(nil))
		if err != nil {
			return err
		}
		collectionSize.WithLabelValues(key).Set(float64(len(items)))
	}

	return nil
}
