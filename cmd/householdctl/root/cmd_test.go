package rootcmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	exportcmd "github.com/smart-grocery/backend/cmd/householdctl/export"
	rootcmd "github.com/smart-grocery/backend/cmd/householdctl/root"
	"github.com/smart-grocery/backend/config"
	"github.com/smart-grocery/backend/internal/domain/entity"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
	"github.com/smart-grocery/backend/internal/infra/db"
	"github.com/smart-grocery/backend/internal/integration/persistence"
)

// execute runs householdctl with args and returns its stdout.
func execute(t testing.TB, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootcmd.New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// newDatabaseURL returns a file-backed SQLite URL in a temp directory.
func newDatabaseURL(t *testing.T) string {
	t.Helper()
	return "sqlite://" + filepath.Join(t.TempDir(), "household.db")
}

// seed stores one record of each kind directly through the repositories.
func seed(t *testing.T, url string) {
	t.Helper()
	c := qt.New(t)

	database, err := db.NewConnection(&config.DatabaseConfig{URL: url})
	c.Assert(err, qt.IsNil)
	defer database.Close()

	ctx := context.Background()
	now := time.Now()
	gdb := database.DB()

	item := entity.NewGroceryItem("Oat Milk", "Oatly", 2, decimal.RequireFromString("2.49"), "Dairy", now.AddDate(0, 0, 5), now)
	c.Assert(persistence.NewGroceryItemRepository(gdb).Create(ctx, item), qt.IsNil)

	b := entity.NewBudget(decimal.NewFromInt(400), valueobject.CurrentPeriod(now), now)
	stored, err := persistence.NewBudgetRepository(gdb).UpsertTotal(ctx, b)
	c.Assert(err, qt.IsNil)
	stored.AddExpense(decimal.NewFromInt(340), now)
	c.Assert(persistence.NewBudgetRepository(gdb).Update(ctx, stored), qt.IsNil)

	_, err = persistence.NewMealPlanRepository(gdb).UpsertByDay(ctx, entity.NewMealPlan("Monday", "Pasta", "pasta, sauce", now))
	c.Assert(err, qt.IsNil)
}

func TestMigrate(t *testing.T) {
	c := qt.New(t)

	out, err := execute(t, "--database-url", newDatabaseURL(t), "migrate")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Equals, "Migrated 3 tables\n")
}

func TestBudget_NoBudgetForCurrentMonth(t *testing.T) {
	c := qt.New(t)
	url := newDatabaseURL(t)

	_, err := execute(t, "--database-url", url, "migrate")
	c.Assert(err, qt.IsNil)

	_, err = execute(t, "--database-url", url, "budget")
	c.Assert(err, qt.ErrorMatches, "No budget found for current month.*")
}

func TestBudget_ShowsCurrentMonth(t *testing.T) {
	c := qt.New(t)
	url := newDatabaseURL(t)

	_, err := execute(t, "--database-url", url, "migrate")
	c.Assert(err, qt.IsNil)
	seed(t, url)

	out, err := execute(t, "--database-url", url, "budget")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Budget for "+valueobject.CurrentPeriod(time.Now()).String())
	c.Assert(out, qt.Contains, "Spent:     340.00 (85.0%)")
	c.Assert(out, qt.Contains, "Remaining: 60.00")
	c.Assert(out, qt.Contains, "near limit")
}

func TestBudget_MonthRequiresYear(t *testing.T) {
	c := qt.New(t)

	_, err := execute(t, "--database-url", newDatabaseURL(t), "budget", "--month", "March")
	c.Assert(err, qt.IsNotNil)
}

func TestExport(t *testing.T) {
	c := qt.New(t)
	url := newDatabaseURL(t)

	_, err := execute(t, "--database-url", url, "migrate")
	c.Assert(err, qt.IsNil)
	seed(t, url)

	c.Run("yaml", func(c *qt.C) {
		out, err := execute(c, "--database-url", url, "export")
		c.Assert(err, qt.IsNil)

		var snapshot exportcmd.Snapshot
		c.Assert(yaml.Unmarshal([]byte(out), &snapshot), qt.IsNil)
		c.Assert(snapshot.Groceries, qt.HasLen, 1)
		c.Assert(snapshot.Groceries[0].Price, qt.Equals, "2.49")
		c.Assert(snapshot.Budgets, qt.HasLen, 1)
		c.Assert(snapshot.Budgets[0].AmountSpent, qt.Equals, "340.00")
		c.Assert(snapshot.MealPlans, qt.DeepEquals, []exportcmd.MealPlan{
			{Day: "Monday", Meal: "Pasta", Ingredients: "pasta, sauce"},
		})
	})

	c.Run("json", func(c *qt.C) {
		out, err := execute(c, "--database-url", url, "export", "--format", "json")
		c.Assert(err, qt.IsNil)

		var snapshot exportcmd.Snapshot
		c.Assert(json.Unmarshal([]byte(out), &snapshot), qt.IsNil)
		c.Assert(snapshot.Groceries[0].Name, qt.Equals, "Oat Milk")
	})

	c.Run("unknown format", func(c *qt.C) {
		_, err := execute(c, "--database-url", url, "export", "--format", "csv")
		c.Assert(err, qt.ErrorMatches, `unsupported format "csv".*`)
	})
}
