package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spycraft69/GAMA-Product-Request/internal/config"
	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/database"
	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/queue"
	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/storage"
	pkgdatabase "github.com/spycraft69/GAMA-Product-Request/pkg/database"
	"github.com/spycraft69/GAMA-Product-Request/pkg/jwt"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/directory"
	directoryHandler "github.com/spycraft69/GAMA-Product-Request/internal/domains/directory/handler"
	directoryRepo "github.com/spycraft69/GAMA-Product-Request/internal/domains/directory/repository"
	directoryService "github.com/spycraft69/GAMA-Product-Request/internal/domains/directory/service"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
	productHandler "github.com/spycraft69/GAMA-Product-Request/internal/domains/product/handler"
	productRepo "github.com/spycraft69/GAMA-Product-Request/internal/domains/product/repository"
	productService "github.com/spycraft69/GAMA-Product-Request/internal/domains/product/service"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher"
	publisherHandler "github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher/handler"
	publisherRepo "github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher/repository"
	publisherService "github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher/service"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/request"
	requestHandler "github.com/spycraft69/GAMA-Product-Request/internal/domains/request/handler"
	requestRepo "github.com/spycraft69/GAMA-Product-Request/internal/domains/request/repository"
	requestService "github.com/spycraft69/GAMA-Product-Request/internal/domains/request/service"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/user"
	userHandler "github.com/spycraft69/GAMA-Product-Request/internal/domains/user/handler"
	userRepo "github.com/spycraft69/GAMA-Product-Request/internal/domains/user/repository"
	userService "github.com/spycraft69/GAMA-Product-Request/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the whole dependency graph of the API process.
// Every field is a singleton built once at startup.
type Container struct {
	// Infrastructure, shared across all domains
	Config     *config.Config
	DB         *database.PostgresDB
	Queue      *queue.Client
	Storage    *storage.MinIOStorage
	Images     *storage.ImageProcessor
	JWTManager *jwt.Manager

	// Repositories
	UserRepo      user.Repository
	PublisherRepo publisher.Repository
	ProductRepo   product.Repository
	RequestRepo   request.Repository
	DirectoryRepo directory.Repository

	// Services
	UserService      user.Service
	PublisherService publisher.Service
	ProductService   product.Service
	RequestService   request.Service
	DirectoryService directory.Service

	// HTTP handlers
	UserHandler      *userHandler.UserHandler
	PublisherHandler *publisherHandler.PublisherHandler
	ProductHandler   *productHandler.ProductHandler
	RequestHandler   *requestHandler.RequestHandler
	DirectoryHandler *directoryHandler.DirectoryHandler
}

// NewContainer builds the dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
// A wrong order here panics on a nil dependency, so the steps stay
// explicit instead of clever.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE QUEUE CLIENT
	// ========================================
	// Tasks are handed to the worker process through Redis. The client
	// does not dial eagerly; a dead Redis surfaces on first enqueue and
	// requests still get stored.
	log.Println("📨 Initializing task queue client...")

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	log.Println("✅ Task queue client ready")

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣  Connecting to MinIO...")

	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Images = storage.NewImageProcessor()
	log.Println("✅ Object storage ready")

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(pool)
	c.ProductRepo = productRepo.NewPostgresRepository(pool)
	c.RequestRepo = requestRepo.NewPostgresRepository(pool)
	c.DirectoryRepo = directoryRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	// The runner is injected where a service spans tables across domains
	// (registration touches users + publisher_profiles, profile edits
	// touch publisher_profiles + users).
	txRunner := pkgdatabase.PoolRunner{Pool: c.DB.Pool}

	c.UserService = userService.NewUserService(c.UserRepo, c.PublisherRepo, txRunner, c.JWTManager)
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo, c.UserRepo, txRunner, c.Storage, c.Images)
	c.ProductService = productService.NewProductService(c.ProductRepo, txRunner, c.Storage, c.Images)
	c.RequestService = requestService.NewRequestService(c.RequestRepo, c.ProductRepo, c.PublisherRepo, c.UserRepo, c.Queue)
	c.DirectoryService = directoryService.NewDirectoryService(c.DirectoryRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.RequestHandler = requestHandler.NewRequestHandler(c.RequestService)
	c.DirectoryHandler = directoryHandler.NewDirectoryHandler(c.DirectoryService)
}

// Cleanup releases external connections. Called from the server's
// graceful shutdown path.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		} else {
			log.Println("✅ Queue client closed")
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	log.Println("✅ Container cleanup completed")
}
