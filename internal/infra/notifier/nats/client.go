// Package nats publishes match events to a NATS JetStream stream, one subject
// per chain. Event keys are used as JetStream message ids so the server drops
// redelivered events inside its duplicate window.
package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/chaintrack/internal/pkg/logger"

	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher publishes one message with a deduplication id.
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte, msgID string) error
}

// Client owns a NATS connection with JetStream enabled.
type Client struct {
	nc *natsgo.Conn
	js jetstream.JetStream
}

var _ Publisher = (*Client)(nil)

// Connect dials url and enables JetStream. Reconnects are unlimited.
func Connect(ctx context.Context, url, name string) (*Client, error) {
	nc, err := natsgo.Connect(url,
		natsgo.Name(name),
		natsgo.ReconnectWait(2*time.Second),
		natsgo.MaxReconnects(-1),
		natsgo.Timeout(10*time.Second),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Warn(ctx, "nats disconnected", "error", err)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info(ctx, "nats reconnected", "nats.url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream init: %w", err)
	}

	return &Client{nc: nc, js: js}, nil
}

// EnsureStream creates or updates the stream capturing subjectPrefix.>.
func (c *Client) EnsureStream(ctx context.Context, name, subjectPrefix string) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        name,
		Subjects:    []string{subjectPrefix + ".>"},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      7 * 24 * time.Hour,
		Duplicates:  time.Hour,
		Storage:     jetstream.FileStorage,
		Discard:     jetstream.DiscardOld,
		Description: "chaintrack match events",
	})
	if err != nil {
		return fmt.Errorf("ensure stream %s: %w", name, err)
	}
	return nil
}

func (c *Client) Publish(ctx context.Context, subject string, data []byte, msgID string) error {
	_, err := c.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID))
	return err
}

// Close drains the connection.
func (c *Client) Close() error {
	if err := c.nc.Drain(); err != nil {
		c.nc.Close()
		return fmt.Errorf("nats drain: %w", err)
	}
	return nil
}
