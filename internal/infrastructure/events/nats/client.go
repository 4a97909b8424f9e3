// Package nats forwards state-change notifications to a NATS server.
package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/narwhalmedia/marquee/pkg/interfaces"
)

// Config configures the NATS connection.
type Config struct {
	URL           string
	ClientName    string
	MaxReconnect  int
	ReconnectWait time.Duration
}

// Client wraps a NATS connection
type Client struct {
	nc     *nats.Conn
	logger interfaces.Logger
}

// NewClient connects to NATS. The returned cleanup drains the connection.
func NewClient(cfg Config, logger interfaces.Logger) (*Client, func(), error) {
	logger = logger.WithFields(interfaces.String("component", "nats"))

	if cfg.ClientName == "" {
		cfg.ClientName = "marquee"
	}
	if cfg.MaxReconnect == 0 {
		cfg.MaxReconnect = 5
	}
	if cfg.ReconnectWait == 0 {
		cfg.ReconnectWait = time.Second
	}

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.Timeout(2 * time.Second),
		nats.MaxReconnects(cfg.MaxReconnect),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", interfaces.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", interfaces.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	cleanup := func() {
		if err := nc.Drain(); err != nil {
			logger.Error("failed to drain NATS connection", interfaces.Error(err))
		}
	}

	logger.Info("NATS client initialized", interfaces.String("url", cfg.URL))

	return &Client{nc: nc, logger: logger}, cleanup, nil
}

// Conn returns the underlying connection.
func (c *Client) Conn() *nats.Conn {
	return c.nc
}
