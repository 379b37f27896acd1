package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/pquerna/ffjson/ffjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"trends-dashboard/cmd/api-server/app/options"
	"trends-dashboard/internal/api/dashboard"
	"trends-dashboard/internal/api/relatedqueries"
	"trends-dashboard/internal/api/searchvolume"
	cache2 "trends-dashboard/internal/cache"
	db "trends-dashboard/internal/database"
	log "trends-dashboard/internal/logger"
	"trends-dashboard/internal/trends"
)

type Server struct {
	app    *fiber.App
	cache  *cache2.Cache
	db     *gorm.DB
	logger *zap.Logger
}

func NewServer(opts *options.Options, logger *zap.Logger) (*Server, error) {
	trendsConfig, err := trends.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("trends config: %w", err)
	}
	client := trends.NewClient(*trendsConfig, trends.WithLogger(logger.Named("trends")))

	cache, err := cache2.NewCache()
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	// the history store is optional
	var (
		conn       *gorm.DB
		repository searchvolume.SearchVolumeRepository
	)
	if *opts.Persist {
		conn, err = db.Connect()
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		repository = searchvolume.NewSearchVolumeRepository(conn)
	}

	accessLog, err := log.NewAccessLogWriter(*opts.AccessLog)
	if err != nil {
		return nil, fmt.Errorf("open access log: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "Trends Dashboard",
		Prefork:     false,
		JSONEncoder: ffjson.Marshal,
	})

	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(etag.New())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] [${ip}:${port}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     accessLog,
	}))

	if *opts.Mode == "debug" {
		app.Use(pprof.New())
	}

	// search volume
	svLogger := logger.Named("search-volume")
	svService := searchvolume.NewSearchVolumeService(cache, client, repository, svLogger)
	searchvolume.SearchVolumeRouter(app.Group("/api/v1/"), svService, trendsConfig.Geo, svLogger)
	// related queries
	rqLogger := logger.Named("related-queries")
	rqService := relatedqueries.NewRelatedQueriesService(cache, client, rqLogger)
	relatedqueries.RelatedQueriesRouter(app.Group("/api/v1/"), rqService, trendsConfig.Geo, rqLogger)
	// dashboard pages
	dashboard.DashboardRouter(app, svService, rqService, trendsConfig.Geo, logger.Named("dashboard"))

	app.Get("/monitor", monitor.New())

	app.Get("/swagger/*", swagger.Handler) // default

	app.All("*", func(c *fiber.Ctx) error {
		errorMessage := fmt.Sprintf("Route '%s' does not exist in this API!", c.OriginalURL())

		return c.Status(fiber.StatusNotFound).JSON(&fiber.Map{
			"status":  "fail",
			"message": errorMessage,
		})
	})

	return &Server{
		app:    app,
		cache:  cache,
		db:     conn,
		logger: logger,
	}, nil
}

func (app *Server) Listen(port int, certFile, keyFile *string) error {
	app.logger.Info("Starting Trends Dashboard api-server ...", zap.Int("port", port))

	address := fmt.Sprintf(":%d", port)
	if certFile != nil && keyFile != nil {
		if *certFile != "" && *keyFile != "" {
			return app.app.ListenTLS(address, *certFile, *keyFile)
		}
	}
	return app.app.Listen(address)
}

func (app *Server) Shutdown(parentCtx context.Context) error {
	g, ctx := errgroup.WithContext(parentCtx)
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	stopped := make(chan struct{})
	g.Go(func() error {
		defer close(stopped)
		if err := app.app.Shutdown(); err != nil {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// cache와 db는 진행 중인 요청이 끝난 뒤에 닫아야 함.
		select {
		case <-stopped:
		case <-ctx.Done():
		}
		app.cache.Clear()
		if app.db == nil {
			return nil
		}
		return db.Close(app.db)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}

func Run(opts *options.Options, logger *zap.Logger) error {
	// Start api-server
	apiServerError := make(chan error, 1)

	server, err := NewServer(opts, logger)
	if err != nil {
		logger.Error("Unable to initialize api-server", zap.Error(err))
		return err
	}

	go func() {
		if err := server.Listen(*opts.Port, opts.CertFile, opts.KeyFile); err != nil && err != http.ErrServerClosed {
			logger.Error("Listen for api-server failed", zap.Error(err))
			apiServerError <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutdown server ...")

		ctx := context.Background()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("close api-server failed", zap.Error(err))
			return err
		}
	case err := <-apiServerError:
		return err
	}

	return nil
}
