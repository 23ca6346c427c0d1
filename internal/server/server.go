package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"teamroster/internal/config"
	"teamroster/internal/handler"
	"teamroster/internal/middleware"
	"teamroster/internal/repository"
	"teamroster/internal/service"
	"teamroster/pkg/logger"
	"teamroster/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	mongo  *mongo.Client
}

// Repositories holds all repository instances
type Repositories struct {
	Record repository.IRecordRepository
}

// Services holds all service instances
type Services struct {
	Record *service.RecordService
}

// Handlers holds all handler instances
type Handlers struct {
	Record *handler.RecordHandler
}

// New creates a new server instance. The Mongo client is constructed once
// here and injected down the stack; nothing else opens connections.
func New(cfg *config.Config) (*Server, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	repos := InitRepositories(cfg, db)
	services := InitServices(cfg, repos)
	handlers := InitHandlers(services)

	router := setupRouter(cfg, handlers, mongoClient)

	return &Server{
		cfg:    cfg,
		router: router,
		mongo:  mongoClient,
	}, nil
}

// Connect opens and pings the Mongo client
func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// InitRepositories constructs all repositories
func InitRepositories(cfg *config.Config, db *mongo.Database) *Repositories {
	return &Repositories{
		Record: repository.NewRecordRepository(cfg, db),
	}
}

// InitServices constructs all services
func InitServices(cfg *config.Config, repos *Repositories) *Services {
	photos := storage.NewDiskStorage(cfg.Uploads.Dir, cfg.Uploads.URLPrefix)
	return &Services{
		Record: service.NewRecordService(cfg, repos.Record, photos),
	}
}

// InitHandlers constructs all handlers
func InitHandlers(services *Services) *Handlers {
	return &Handlers{
		Record: handler.NewRecordHandler(services.Record),
	}
}

// Close disconnects the Mongo client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	logger.Info(context.Background(), "teamroster server running",
		zap.String("address", s.cfg.Server.Address()),
		zap.String("base_url", s.cfg.BaseURL))
	return s.router.Run(s.cfg.Server.Address())
}

// Router exposes the gin engine, used by tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func setupRouter(cfg *config.Config, h *Handlers, mongoClient *mongo.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.SetTrustedProxies(nil)

	// Static files: uploaded photos and the browser client
	r.Static(cfg.Uploads.URLPrefix, cfg.Uploads.Dir)
	r.Static("/ui", "./static")
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/ui/")
	})

	r.GET("/healthz", healthHandler(mongoClient))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Record routes
	records := api.Group("/records")
	{
		records.GET("", h.Record.List)
		records.POST("", h.Record.Create)
		records.PUT("/:id", h.Record.Update)
		records.DELETE("/:id", h.Record.Delete)
	}

	return r
}

func healthHandler(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if client != nil {
			if err := client.Ping(ctx, nil); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
