package routes

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cashwallet/cashwallet/internal/admin"
	"github.com/cashwallet/cashwallet/internal/auth"
	"github.com/cashwallet/cashwallet/internal/config"
	"github.com/cashwallet/cashwallet/internal/middleware"
	"github.com/cashwallet/cashwallet/internal/transaction"
	"github.com/cashwallet/cashwallet/internal/user"
	"github.com/cashwallet/cashwallet/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *mongo.Database
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Without a database
// the repositories fall back to in-memory stores, which the tests and
// store-less development runs rely on.
func Setup(app *fiber.App, d Deps) error {
	if !isDev(d.Cfg.AppEnv) && d.DB == nil {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Cfg.CORSOrigins,
		// Credentialed CORS cannot be combined with a wildcard origin.
		AllowCredentials: d.Cfg.CORSOrigins != "*",
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories
	var (
		userRepo   user.Repository
		walletRepo wallet.Repository
		txRepo     transaction.Repository
	)
	if d.DB != nil {
		userRepo = user.NewMongoRepository(d.DB)
		walletRepo = wallet.NewMongoRepository(d.DB)
		txRepo = transaction.NewMongoRepository(d.DB)
	} else {
		userRepo = user.NewMemoryRepository()
		walletRepo = wallet.NewMemoryRepository()
		txRepo = transaction.NewMemoryRepository()
	}

	// Services and handlers
	tokens := auth.NewTokenService(d.Cfg.SecretKey)
	hasher := auth.NewHasher(0)
	walletSvc := wallet.NewService(walletRepo)
	authSvc := auth.NewService(userRepo, walletSvc, hasher, tokens)
	reporter := admin.NewReporter(userRepo, walletRepo, txRepo, d.Cache, d.Cfg.StatsCacheTTL, d.Logger)

	authHandler := auth.NewHandler(authSvc)
	walletHandler := wallet.NewHandler(walletSvc)
	txHandler := transaction.NewHandler(txRepo)
	adminHandler := admin.NewHandler(reporter, userRepo, walletRepo, txRepo)

	api := app.Group("/api")
	authmw := middleware.Authenticate(tokens, userRepo)

	RegisterAuthRoutes(api, authHandler, authmw)
	RegisterUserRoutes(api.Group("/user", authmw), authHandler, walletHandler, txHandler)
	RegisterAdminRoutes(api.Group("/admin", authmw, middleware.RequireAdmin()), adminHandler)

	api.Post("/init-admin", authHandler.InitAdmin)

	return nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}
