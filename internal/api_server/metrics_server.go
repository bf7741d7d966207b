package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/pkg/log"
	"github.com/kubev2v/vdi-migration-planner/pkg/metrics"
)

type MetricServer struct {
	bindAddress string
	httpServer  *http.Server
	listener    net.Listener
}

// NewMetricServer serves /metrics from the default registry. The active
// rate table is exported alongside the request metrics.
func NewMetricServer(bindAddress string, listener net.Listener, rates estimation.Rates) *MetricServer {
	if err := prometheus.Register(metrics.NewRatesCollector(rates)); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			zap.S().Named("metrics_server").Warnw("failed to register rates collector", "error", err)
		}
	}

	router := chi.NewRouter()
	router.Use(log.AccessLogger(zap.L(), "metrics_server", zapcore.DebugLevel))
	router.Handle("/metrics", promhttp.Handler())

	return &MetricServer{
		bindAddress: bindAddress,
		listener:    listener,
		httpServer: &http.Server{
			Addr:    bindAddress,
			Handler: router,
		},
	}
}

func (m *MetricServer) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		m.httpServer.SetKeepAlivesEnabled(false)
		_ = m.httpServer.Shutdown(ctxTimeout)
		zap.S().Named("metrics_server").Info("metrics server terminated")
	}()

	zap.S().Named("metrics_server").Infof("serving metrics: %s", m.bindAddress)
	if err := m.httpServer.Serve(m.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
