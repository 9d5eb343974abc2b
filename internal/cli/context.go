package cli

import (
	"context"
	"fmt"

	"github.com/pluqqy/walletdeck/internal/config"
	"github.com/pluqqy/walletdeck/pkg/store"
)

// CommandContext carries the loaded configuration and opens the stores on
// demand for a single command invocation.
type CommandContext struct {
	Config config.Config
	stores *store.Stores
}

// NewCommandContext loads configuration, honouring an explicit config file.
func NewCommandContext(cfgFile string) (*CommandContext, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	return &CommandContext{Config: cfg}, nil
}

// WithDataDir overrides the configured data directory when dir is set.
func (c *CommandContext) WithDataDir(dir string) *CommandContext {
	if dir != "" {
		c.Config.DataDir = dir
	}
	return c
}

// Stores opens the data directory once and caches the result.
func (c *CommandContext) Stores(ctx context.Context) (*store.Stores, error) {
	if c.stores != nil {
		return c.stores, nil
	}
	stores, err := store.Open(ctx, c.Config.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	c.stores = stores
	return stores, nil
}
