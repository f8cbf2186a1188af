package httpclient

import (
	"context"

	"github.com/murkdev/gameclient/component"
)

// Component wraps a Client with lifecycle management, for game applications
// that start their infrastructure through a component registry.
type Component struct {
	client *Client
	config Config
	opts   []Option
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a new HTTP client component.
// The client is created lazily in Start().
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	return "api-client"
}

// Start initializes the HTTP client.
func (c *Component) Start(_ context.Context) error {
	client, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.client = client
	return nil
}

// Stop releases idle transport connections.
func (c *Component) Stop(_ context.Context) error {
	if c.client != nil {
		c.client.Unwrap().CloseIdleConnections()
	}
	return nil
}

// Health returns the component health status.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	if c.client == nil {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns the component description for a startup summary.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    c.Name(),
		Type:    "http-client",
		Details: c.config.BaseURL,
	}
}

// Client returns the underlying client. Must be called after Start().
func (c *Component) Client() *Client {
	return c.client
}
