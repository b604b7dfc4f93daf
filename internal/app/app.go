package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/billing"
	"github.com/gadsdencode/pixprofolio/internal/config"
	"github.com/gadsdencode/pixprofolio/internal/email"
	"github.com/gadsdencode/pixprofolio/internal/handlers"
	"github.com/gadsdencode/pixprofolio/internal/logger"
	"github.com/gadsdencode/pixprofolio/internal/middleware"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/oauth"
	"github.com/gadsdencode/pixprofolio/internal/routes"
	"github.com/gadsdencode/pixprofolio/internal/services"
	"github.com/gadsdencode/pixprofolio/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	// Billing credentials are non-negotiable: invoicing is a core flow and a
	// server without it would fail on first use.
	if cfg.Stripe.SecretKey == "" {
		logger.Fatal("Missing required Stripe secret: STRIPE_SECRET_KEY")
	}

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Client{},
		&models.Invoice{},
		&models.PortfolioItem{},
		&models.ContactInquiry{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstOwner(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first owner user", "error", err)
	}

	provider := billing.NewStripeProvider(cfg.Stripe.SecretKey)
	sender := email.NewSMTPSender(cfg)

	serviceContainer := services.NewServiceContainer(cfg, provider, sender)

	startSessionJanitor(gormDB, serviceContainer.Session)

	ginRouter := SetupRouter(cfg, gormDB, serviceContainer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the middleware chain and routes. It takes the
// service container so tests can inject fakes.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, serviceContainer *services.ServiceContainer) *gin.Engine {
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB, serviceContainer)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeHandlers(cfg *config.Config, serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, cfg, serviceContainer.Auth, serviceContainer.Session),
		InvoiceHandler:   handlers.NewInvoiceHandler(baseHandler, serviceContainer.Invoice),
		PortfolioHandler: handlers.NewPortfolioHandler(baseHandler, serviceContainer.Portfolio),
		ContactHandler:   handlers.NewContactHandler(baseHandler, serviceContainer.Inquiry),
	}

	if cfg.OAuthEnabled() {
		googleClient := oauth.NewGoogleClient(cfg)
		appHandlers.OAuthHandler = handlers.NewOAuthHandler(baseHandler, cfg, googleClient, serviceContainer.Auth, serviceContainer.Session)
	}

	return appHandlers
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, serviceContainer *services.ServiceContainer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.Authenticate(serviceContainer.Session, cfg.Session.CookieName))
	return router
}

// startSessionJanitor purges expired sessions hourly.
func startSessionJanitor(db *gorm.DB, sessionService services.SessionService) {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		purged, err := sessionService.PurgeExpired(db)
		if err != nil {
			logger.Error("Expired session purge failed", "error", err)
			return
		}
		if purged > 0 {
			logger.Info("Expired sessions purged", "count", purged)
		}
	})
	if err != nil {
		logger.Fatal("Failed to schedule session purge job", "error", err)
	}
	c.Start()
}

// seedFirstOwner creates the owner account on first boot. Self-registration
// only produces clients, so the owner has to come from configuration.
func seedFirstOwner(db *gorm.DB, cfg *config.Config) error {
	ownerEmail := cfg.FirstOwnerEmail
	ownerPassword := cfg.FirstOwnerPassword

	if ownerEmail == "" || ownerPassword == "" {
		logger.Warn("FIRST_OWNER_EMAIL or FIRST_OWNER_PASSWORD is not set. Skipping owner seeding.")
		return nil
	}

	var owner models.User
	result := db.Where("email = ?", ownerEmail).First(&owner)

	if result.Error == nil {
		logger.Info("Owner user already exists. Skipping creation.", "email", ownerEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for owner user: %w", result.Error)
	}

	logger.Warn("No owner user found with specified email. Creating first owner...", "email", ownerEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}

	newOwner := &models.User{
		Email:        ownerEmail,
		PasswordHash: string(hashedPassword),
		Name:         "Owner",
		Role:         models.UserRoleOwner,
		Provider:     models.AuthProviderLocal,
	}

	if err := db.Create(newOwner).Error; err != nil {
		return fmt.Errorf("failed to create owner user in database: %w", err)
	}

	logger.Info("First owner user created", "email", ownerEmail)
	return nil
}
