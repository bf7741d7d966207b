package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/kubev2v/vdi-migration-planner/internal/config"
	handlers "github.com/kubev2v/vdi-migration-planner/internal/handlers/v1alpha1"
	"github.com/kubev2v/vdi-migration-planner/internal/service"
	"github.com/kubev2v/vdi-migration-planner/pkg/metrics"
	"github.com/kubev2v/vdi-migration-planner/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg               *config.Config
	listener          net.Listener
	assessmentService *service.AssessmentService
}

// New returns a new instance of a vdi-migration-planner server.
func New(
	cfg *config.Config,
	listener net.Listener,
	assessmentService *service.AssessmentService,
) *Server {
	return &Server{
		cfg:               cfg,
		listener:          listener,
		assessmentService: assessmentService,
	}
}

// Router builds the API handler tree. The prometheus middleware collectors
// are not registered here.
func (s *Server) Router(metricMiddleware *metrics.Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.Service.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	handlers.NewServiceHandler(s.assessmentService).RegisterRoutes(router)

	return router
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: s.Router(metricMiddleware)}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
