// Package migratecmd implements the `householdctl migrate` command.
package migratecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smart-grocery/backend/cmd/householdctl/shared"
	"github.com/smart-grocery/backend/internal/integration/persistence/model"
)

// Command implements `householdctl migrate`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the migrate command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the grocery, budget and meal plan tables",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	database, err := c.ctx.Open()
	if err != nil {
		return err
	}
	defer database.Close()

	models := model.AllModels()
	if err := database.AutoMigrate(models...); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d tables\n", len(models))
	return nil
}
