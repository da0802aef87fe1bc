// Package rootcmd wires the root cobra.Command for the householdctl binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	budgetcmd "github.com/smart-grocery/backend/cmd/householdctl/budget"
	exportcmd "github.com/smart-grocery/backend/cmd/householdctl/export"
	migratecmd "github.com/smart-grocery/backend/cmd/householdctl/migrate"
	"github.com/smart-grocery/backend/cmd/householdctl/shared"
)

// New creates and returns the root cobra.Command for householdctl.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "householdctl",
		Short:         "Administer the Smart Grocery household database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().StringVar(
		&ctx.DatabaseURL, "database-url", "",
		"Database to operate on (default: $DATABASE_URL)",
	)

	root.AddCommand(
		migratecmd.New(ctx).Cmd(),
		budgetcmd.New(ctx).Cmd(),
		exportcmd.New(ctx).Cmd(),
	)

	return root
}
