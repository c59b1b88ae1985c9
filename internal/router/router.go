package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/GuiCPessoa/Frota-Simples/internal/config"
	"github.com/GuiCPessoa/Frota-Simples/internal/handler"
	"github.com/GuiCPessoa/Frota-Simples/internal/middleware"
	"github.com/GuiCPessoa/Frota-Simples/internal/model"
	"github.com/GuiCPessoa/Frota-Simples/internal/service"
	"github.com/GuiCPessoa/Frota-Simples/internal/store"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store ← DB
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Stores ───────────────────────────────────────────────────────────────
	identity := store.NewIdentity(db)
	vehicles := store.NewScoped[model.Vehicle](db)
	suppliers := store.NewScoped[model.Supplier](db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(identity, cfg)
	vehicleSvc := service.NewVehicleService(identity, vehicles)
	supplierSvc := service.NewSupplierService(identity, suppliers)
	dashboardSvc := service.NewDashboardService(identity, vehicles, suppliers)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", middleware.LoginRateLimiter(rdb), authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(rdb), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. The token only authenticates the principal; every
	// service call re-resolves account membership from the users table.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/dashboard/stats", dashboardH.Stats)

		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", vehiclesH.List)
			vehicles.POST("", vehiclesH.Create)
			vehicles.GET("/:id", vehiclesH.GetByID)
			vehicles.PUT("/:id", vehiclesH.Update)
			vehicles.DELETE("/:id", vehiclesH.Delete)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.GET("", suppliersH.List)
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("/:id", suppliersH.GetByID)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}
	}

	// Swagger UI is only mounted outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
