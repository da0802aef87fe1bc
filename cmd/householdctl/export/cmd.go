// Package exportcmd implements the `householdctl export` command.
package exportcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/smart-grocery/backend/cmd/householdctl/shared"
	"github.com/smart-grocery/backend/internal/application/usecase/budget"
	"github.com/smart-grocery/backend/internal/application/usecase/grocery"
	"github.com/smart-grocery/backend/internal/application/usecase/mealplan"
	"github.com/smart-grocery/backend/internal/domain/entity"
	"github.com/smart-grocery/backend/internal/integration/persistence"
)

// Snapshot is the exported state of a household.
type Snapshot struct {
	Groceries []Grocery  `json:"groceries" yaml:"groceries"`
	Budgets   []Budget   `json:"budgets" yaml:"budgets"`
	MealPlans []MealPlan `json:"mealPlans" yaml:"mealPlans"`
}

// Grocery is an exported inventory item.
type Grocery struct {
	Name       string    `json:"name" yaml:"name"`
	Brand      string    `json:"brand" yaml:"brand"`
	Quantity   int       `json:"quantity" yaml:"quantity"`
	Price      string    `json:"price" yaml:"price"`
	Category   string    `json:"category" yaml:"category"`
	ExpiryDate time.Time `json:"expiryDate" yaml:"expiryDate"`
}

// Budget is an exported monthly budget.
type Budget struct {
	Month       string `json:"month" yaml:"month"`
	Year        int    `json:"year" yaml:"year"`
	TotalBudget string `json:"totalBudget" yaml:"totalBudget"`
	AmountSpent string `json:"amountSpent" yaml:"amountSpent"`
}

// MealPlan is an exported day of the meal plan.
type MealPlan struct {
	Day         string `json:"day" yaml:"day"`
	Meal        string `json:"meal" yaml:"meal"`
	Ingredients string `json:"ingredients" yaml:"ingredients"`
}

// Command implements `householdctl export`.
type Command struct {
	ctx    *shared.Context
	cmd    *cobra.Command
	format string
}

// New creates the export command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "export",
		Short: "Print the inventory, budgets and meal plan",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().StringVarP(&c.format, "format", "f", "yaml", "Output format: yaml or json")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	if c.format != "yaml" && c.format != "json" {
		return fmt.Errorf("unsupported format %q (want yaml or json)", c.format)
	}

	database, err := c.ctx.Open()
	if err != nil {
		return err
	}
	defer database.Close()

	gdb := database.DB()
	listGroceries := grocery.NewListGroceryItemsUseCase(persistence.NewGroceryItemRepository(gdb))
	listBudgets := budget.NewListBudgetsUseCase(persistence.NewBudgetRepository(gdb))
	listMealPlans := mealplan.NewListMealPlansUseCase(persistence.NewMealPlanRepository(gdb))

	var (
		items   []*entity.GroceryItem
		budgets []*entity.Budget
		plans   []*entity.MealPlan
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		out, err := listGroceries.Execute(ctx)
		if err != nil {
			return err
		}
		items = out.Items
		return nil
	})
	g.Go(func() error {
		out, err := listBudgets.Execute(ctx)
		if err != nil {
			return err
		}
		budgets = out.Budgets
		return nil
	})
	g.Go(func() error {
		out, err := listMealPlans.Execute(ctx)
		if err != nil {
			return err
		}
		plans = out.MealPlans
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return write(cmd.OutOrStdout(), c.format, newSnapshot(items, budgets, plans))
}

func newSnapshot(items []*entity.GroceryItem, budgets []*entity.Budget, plans []*entity.MealPlan) Snapshot {
	s := Snapshot{
		Groceries: make([]Grocery, len(items)),
		Budgets:   make([]Budget, len(budgets)),
		MealPlans: make([]MealPlan, len(plans)),
	}
	for i, item := range items {
		s.Groceries[i] = Grocery{
			Name:       item.Name,
			Brand:      item.Brand,
			Quantity:   item.Quantity,
			Price:      item.Price.StringFixed(2),
			Category:   item.Category,
			ExpiryDate: item.ExpiryDate,
		}
	}
	for i, b := range budgets {
		s.Budgets[i] = Budget{
			Month:       b.Month,
			Year:        b.Year,
			TotalBudget: b.TotalBudget.StringFixed(2),
			AmountSpent: b.AmountSpent.StringFixed(2),
		}
	}
	for i, p := range plans {
		s.MealPlans[i] = MealPlan{
			Day:         p.Day,
			Meal:        p.Meal,
			Ingredients: p.Ingredients,
		}
	}
	return s
}

func write(w io.Writer, format string, s Snapshot) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
