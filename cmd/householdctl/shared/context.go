// Package shared holds the context passed to all householdctl commands.
package shared

import (
	"github.com/smart-grocery/backend/config"
	"github.com/smart-grocery/backend/internal/infra/db"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// DatabaseURL overrides DATABASE_URL when non-empty.
	DatabaseURL string
}

// Open connects to the configured database. Callers must Close it.
func (c *Context) Open() (*db.Database, error) {
	cfg := config.Load()
	if c.DatabaseURL != "" {
		cfg.Database.URL = c.DatabaseURL
	}
	return db.NewConnection(&cfg.Database)
}
