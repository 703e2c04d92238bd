package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"multivende-sync/core/config"
	"multivende-sync/core/crypto"
	"multivende-sync/core/database"
	"multivende-sync/core/logger"
	"multivende-sync/core/middleware/basicauth"
	"multivende-sync/core/middleware/rayid"
	"multivende-sync/feature/checkout"
	"multivende-sync/feature/credential"
	"multivende-sync/feature/multivende"
	"multivende-sync/feature/webhook"
)

// tokenLoader builds a fresh API client per webhook call, so the server
// keeps working across token rotations without a restart.
type tokenLoader struct {
	db     *gorm.DB
	store  *credential.Store
	api    multivende.Config
	logger *zap.Logger
}

func (l *tokenLoader) LoadCheckout(ctx context.Context, id string) error {
	token, err := l.store.BearerToken(ctx, time.Now())
	if err != nil {
		return err
	}
	client := multivende.NewClient(l.api, token, l.logger)
	return checkout.NewSyncer(l.db, client, l.logger, nil).LoadCheckout(ctx, id)
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook server",
	Long:  `Starts the HTTP server that receives marketplace sale notifications.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// 4. Credential store
		cipher, err := crypto.New(cfg.Auth.SecretKey)
		if err != nil {
			logg.Fatal("Failed to build token cipher", zap.Error(err))
		}
		loader := &tokenLoader{
			db:     db,
			store:  credential.NewStore(db, cipher, cfg.Auth),
			api:    cfg.API,
			logger: logg,
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Basic auth (no-op when no credentials configured)
		app.Use(basicauth.New(basicauth.Config{
			Username: cfg.Server.Username,
			Password: cfg.Server.Password,
		}))

		// 4. Routes
		webhook.NewHandler(loader, logg).RegisterRoutes(app)

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
