// Package budgetcmd implements the `householdctl budget` command.
package budgetcmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smart-grocery/backend/cmd/householdctl/shared"
	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/application/usecase/budget"
	"github.com/smart-grocery/backend/internal/domain/entity"
	"github.com/smart-grocery/backend/internal/integration/persistence"
)

var (
	overBudget  = color.New(color.FgRed, color.Bold).SprintFunc()
	nearLimit   = color.New(color.FgYellow, color.Bold).SprintFunc()
	underBudget = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Command implements `householdctl budget`.
type Command struct {
	ctx   *shared.Context
	cmd   *cobra.Command
	month string
	year  int
}

// New creates the budget command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "budget",
		Short: "Show the budget of the current month, or of --month/--year",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().StringVar(&c.month, "month", "", "Full month name, e.g. March")
	c.cmd.Flags().IntVar(&c.year, "year", 0, "Four digit year")
	c.cmd.MarkFlagsRequiredTogether("month", "year")
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

	repo := persistence.NewBudgetRepository(database.DB())

	var output *budget.GetBudgetOutput
	if c.month != "" {
		output, err = budget.NewGetBudgetUseCase(repo).Execute(cmd.Context(), budget.GetBudgetInput{
			Month: c.month,
			Year:  c.year,
		})
	} else {
		output, err = budget.NewGetCurrentBudgetUseCase(repo, adapter.SystemClock{}).Execute(cmd.Context())
	}
	if err != nil {
		return err
	}

	printBudget(cmd, output.Budget)
	return nil
}

func printBudget(cmd *cobra.Command, b *entity.Budget) {
	pct := b.PercentageSpent()

	status := underBudget("on track")
	switch {
	case pct.GreaterThan(entity.FullBudgetPercentage):
		status = overBudget("over budget")
	case pct.GreaterThanOrEqual(entity.BudgetWarningPercentage):
		status = nearLimit("near limit")
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Budget for %s\n", b.Period())
	fmt.Fprintf(w, "  Total:     %s\n", b.TotalBudget.StringFixed(2))
	fmt.Fprintf(w, "  Spent:     %s (%s%%)\n", b.AmountSpent.StringFixed(2), pct.StringFixed(1))
	fmt.Fprintf(w, "  Remaining: %s\n", b.RemainingBudget().StringFixed(2))
	fmt.Fprintf(w, "  Status:    %s\n", status)
}
