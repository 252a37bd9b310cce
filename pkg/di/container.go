package di

import (
	"github.com/tanaki1609/shop-api/application/serviceimpl"
	"github.com/tanaki1609/shop-api/domain/repositories"
	"github.com/tanaki1609/shop-api/domain/services"
	"github.com/tanaki1609/shop-api/infrastructure/postgres"
	redispkg "github.com/tanaki1609/shop-api/infrastructure/redis"
	"github.com/tanaki1609/shop-api/interfaces/api/handlers"
	"github.com/tanaki1609/shop-api/pkg/config"
	"github.com/tanaki1609/shop-api/pkg/logger"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client // optional cache

	// Repositories
	ProductRepository  repositories.ProductRepository
	CategoryRepository repositories.CategoryRepository
	TagRepository      repositories.TagRepository
	ReviewRepository   repositories.ReviewRepository
	UserRepository     repositories.UserRepository
	TokenRepository    repositories.TokenRepository

	// Services
	ProductService  services.ProductService
	CategoryService services.CategoryService
	TagService      services.TagService
	UserService     services.UserService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional - the product cache degrades gracefully without it.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.ProductRepository = postgres.NewProductRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.TagRepository = postgres.NewTagRepository(c.DB)
	c.ReviewRepository = postgres.NewReviewRepository(c.DB)
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TokenRepository = postgres.NewTokenRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.ProductService = serviceimpl.NewProductService(
		c.ProductRepository,
		c.CategoryRepository,
		c.TagRepository,
		c.ReviewRepository,
		c.RedisClient,
	)
	if c.RedisClient != nil {
		logger.Info("Product service initialized with Redis cache")
	} else {
		logger.Info("Product service initialized without cache")
	}

	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.TagService = serviceimpl.NewTagService(c.TagRepository)
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.TokenRepository, c.Config.JWT.Secret)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		ProductService:  c.ProductService,
		CategoryService: c.CategoryService,
		TagService:      c.TagService,
		UserService:     c.UserService,
		PageSize:        c.Config.App.PageSize,
		JWTSecret:       c.Config.JWT.Secret,
	}
}
