// Package dependency provides dependency injection for the application.
package dependency

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/smart-grocery/backend/config"
	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/application/usecase/budget"
	"github.com/smart-grocery/backend/internal/application/usecase/grocery"
	"github.com/smart-grocery/backend/internal/application/usecase/mealplan"
	"github.com/smart-grocery/backend/internal/infra/server/router"
	"github.com/smart-grocery/backend/internal/integration/entrypoint/controller"
	"github.com/smart-grocery/backend/internal/integration/entrypoint/middleware"
	"github.com/smart-grocery/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// clock is the source of "now" for every date rule; staticFiles may be nil.
func NewInjector(cfg *config.Config, db *gorm.DB, clock adapter.Clock, staticFiles http.FileSystem) *Injector {
	// Create repositories
	groceryItemRepo := persistence.NewGroceryItemRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	mealPlanRepo := persistence.NewMealPlanRepository(db)

	// Create grocery use cases
	createGroceryItemUseCase := grocery.NewCreateGroceryItemUseCase(groceryItemRepo, clock)
	listGroceryItemsUseCase := grocery.NewListGroceryItemsUseCase(groceryItemRepo)
	getGroceryItemUseCase := grocery.NewGetGroceryItemUseCase(groceryItemRepo)
	updateGroceryItemUseCase := grocery.NewUpdateGroceryItemUseCase(groceryItemRepo, clock)
	deleteGroceryItemUseCase := grocery.NewDeleteGroceryItemUseCase(groceryItemRepo)

	// Create budget use cases
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo, clock)
	getCurrentBudgetUseCase := budget.NewGetCurrentBudgetUseCase(budgetRepo, clock)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	addExpenseUseCase := budget.NewAddExpenseUseCase(budgetRepo, clock)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create meal plan use cases
	saveMealPlansUseCase := mealplan.NewSaveMealPlansUseCase(mealPlanRepo, clock)
	listMealPlansUseCase := mealplan.NewListMealPlansUseCase(mealPlanRepo)
	getMealPlanUseCase := mealplan.NewGetMealPlanUseCase(mealPlanRepo)
	deleteMealPlanUseCase := mealplan.NewDeleteMealPlanUseCase(mealPlanRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, clock)

	groceryController := controller.NewGroceryController(
		createGroceryItemUseCase,
		listGroceryItemsUseCase,
		getGroceryItemUseCase,
		updateGroceryItemUseCase,
		deleteGroceryItemUseCase,
	)

	budgetController := controller.NewBudgetController(
		setBudgetUseCase,
		getCurrentBudgetUseCase,
		getBudgetUseCase,
		addExpenseUseCase,
		deleteBudgetUseCase,
	)

	mealPlanController := controller.NewMealPlanController(
		saveMealPlansUseCase,
		listMealPlansUseCase,
		getMealPlanUseCase,
		deleteMealPlanUseCase,
	)

	// Create middleware
	var writeLimiter *middleware.RateLimiter
	if cfg.Server.WriteRateLimit > 0 {
		writeLimiter = middleware.NewRateLimiter(cfg.Server.WriteRateLimit, time.Minute, clock)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		groceryController,
		budgetController,
		mealPlanController,
		middleware.DefaultCORSConfig(cfg.Web.AllowedOrigin),
		writeLimiter,
		staticFiles,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
