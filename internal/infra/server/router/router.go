// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smart-grocery/backend/internal/integration/entrypoint/controller"
	"github.com/smart-grocery/backend/internal/integration/entrypoint/dto"
	"github.com/smart-grocery/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	groceryController  *controller.GroceryController
	budgetController   *controller.BudgetController
	mealPlanController *controller.MealPlanController
	corsConfig         middleware.CORSConfig
	writeLimiter       *middleware.RateLimiter
	staticFiles        http.FileSystem
}

// NewRouter creates a new router instance with all dependencies.
// writeLimiter and staticFiles may be nil, which disables write limiting or
// serving the browser client respectively.
func NewRouter(
	healthController *controller.HealthController,
	groceryController *controller.GroceryController,
	budgetController *controller.BudgetController,
	mealPlanController *controller.MealPlanController,
	corsConfig middleware.CORSConfig,
	writeLimiter *middleware.RateLimiter,
	staticFiles http.FileSystem,
) *Router {
	return &Router{
		healthController:   healthController,
		groceryController:  groceryController,
		budgetController:   budgetController,
		mealPlanController: mealPlanController,
		corsConfig:         corsConfig,
		writeLimiter:       writeLimiter,
		staticFiles:        staticFiles,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.CORS(r.corsConfig))

	r.setupHealthRoutes()
	r.setupAPIRoutes()
	r.setupClientRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	if r.writeLimiter != nil {
		api.Use(r.writeLimiter.Middleware())
	}
	{
		groceries := api.Group("/groceries")
		{
			groceries.POST("", r.groceryController.Create)
			groceries.GET("", r.groceryController.List)
			groceries.GET("/:id", r.groceryController.Get)
			groceries.PUT("/:id", r.groceryController.Update)
			groceries.DELETE("/:id", r.groceryController.Delete)
		}

		budget := api.Group("/budget")
		{
			budget.POST("", r.budgetController.Set)
			budget.GET("", r.budgetController.GetCurrent)
			budget.PUT("/spend", r.budgetController.Spend)
			budget.GET("/:year/:month", r.budgetController.Get)
			budget.DELETE("/:year/:month", r.budgetController.Delete)
		}

		meals := api.Group("/meals")
		{
			meals.POST("", r.mealPlanController.Save)
			meals.GET("", r.mealPlanController.List)
			meals.GET("/:day", r.mealPlanController.Get)
			meals.DELETE("/:day", r.mealPlanController.Delete)
		}
	}
}

// setupClientRoutes serves the browser client for every path the API does not own.
// Unknown /api paths get a JSON 404 instead of a file lookup.
func (r *Router) setupClientRoutes() {
	var fileServer http.Handler
	if r.staticFiles != nil {
		fileServer = http.FileServer(r.staticFiles)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if fileServer == nil || path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Route not found",
			})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Route not found",
			})
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
