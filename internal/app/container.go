package app

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/you/tradeops/domain"
	"github.com/you/tradeops/internal/config"
	"github.com/you/tradeops/internal/infrastructure/auth"
	"github.com/you/tradeops/internal/infrastructure/database"
	"github.com/you/tradeops/internal/infrastructure/llm"
	"github.com/you/tradeops/internal/infrastructure/notifications"
	"github.com/you/tradeops/internal/infrastructure/repositories"
	"github.com/you/tradeops/internal/infrastructure/search"
	"github.com/you/tradeops/internal/ratelimit"
	"github.com/you/tradeops/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB *gorm.DB

	UserRepo    domain.UserRepository
	OTPRepo     domain.OTPRepository
	ProductRepo domain.ProductRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	Limiter         domain.RateLimiter
	NewsFetcher     domain.NewsFetcher
	Generator       domain.TextGenerator
	AnalysisSvc     domain.AnalysisService
}

// NewContainer creates and initializes all dependencies. With an empty DSN
// the container falls back to in-memory stores, which keeps local
// development and the e2e suite free of external processes.
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initRepositories(); err != nil {
		return nil, err
	}
	if err := c.initServices(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories() error {
	if c.Config.DSN == "" {
		log.Println("no database DSN configured, using in-memory stores")
		c.UserRepo = repositories.NewMemoryUserRepository()
		c.OTPRepo = repositories.NewMemoryOTPRepository()
		c.ProductRepo = repositories.NewMemoryProductRepository()
		return nil
	}

	gdb, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	c.DB = gdb
	c.UserRepo = repositories.NewUserRepository(gdb)
	c.ProductRepo = repositories.NewProductRepository(gdb)

	rdb := database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return err
	}
	c.OTPRepo = repositories.NewOTPRepository(rdb.Client)
	return nil
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.NotificationSvc = notifications.NewTwilioService(c.Config.TwilioSID, c.Config.TwilioToken, c.Config.TwilioFrom)

	c.OTPSvc = services.NewOTPService(c.OTPRepo, c.NotificationSvc, services.OTPConfig{
		Length: c.Config.OTP_Length,
		TTL:    c.Config.OTP_TTL,
	})

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.OTPSvc, c.Config.TokenTTL)

	c.Limiter = ratelimit.New(c.Config.RateLimit, c.Config.RateLimitWindow)
	c.NewsFetcher = search.NewDuckDuckGoClient(c.Config.NewsTimeout)

	generator, err := llm.NewGeminiService(c.Config.GeminiAPIKey, c.Config.GeminiModel)
	if err != nil {
		return err
	}
	c.Generator = generator

	c.AnalysisSvc = services.NewAnalysisService(c.Limiter, c.NewsFetcher, c.Generator)
	return nil
}
