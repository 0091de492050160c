package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"superstar/internal/logging"
	"superstar/internal/metrics"
	"superstar/internal/service"

	_ "superstar/docs"
)

type Server struct {
	engine   *gin.Engine
	orders   *service.OrderService
	delivery *service.DeliveryService

	log      zerolog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	swagger  bool

	// streams is cancelled by CloseStreams; open event feeds watch it
	streams      context.Context
	closeStreams context.CancelFunc
}

type Option func(*Server)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.log = logging.ForPackage(l, "http") }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithGatherer exposes g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

func WithSwagger(enabled bool) Option {
	return func(s *Server) { s.swagger = enabled }
}

func NewServer(orders *service.OrderService, delivery *service.DeliveryService, opts ...Option) *Server {
	s := &Server{
		orders:   orders,
		delivery: delivery,
		log:      zerolog.Nop(),
		swagger:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.streams, s.closeStreams = context.WithCancel(context.Background())

	r := gin.New()
	r.Use(requestID(), requestLogger(s.log), gin.Recovery(), s.metrics.GinMiddleware())
	s.engine = r
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

// CloseStreams ends every open /events connection. http.Server.Shutdown does not
// cancel running handlers, so register it with RegisterOnShutdown.
func (s *Server) CloseStreams() { s.closeStreams() }

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{
			ErrorHandling: promhttp.ContinueOnError,
		})))
	}
	if s.swagger {
		s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := s.engine.Group("/api/v1")
	{
		orders := v1.Group("/orders")
		orders.GET("", s.listOrders)
		orders.POST("", s.createOrder)
		orders.GET(":id", s.getOrder)
		orders.PATCH(":id/status", s.updateStatus)
		orders.PATCH(":id/delivery", s.assignDelivery)

		v1.GET("/events", s.events)
		v1.GET("/statuses", s.listStatuses)

		delivery := v1.Group("/delivery-companies")
		delivery.GET("", s.listDeliveryCompanies)
		delivery.GET("/stats", s.deliveryStats)

		dashboard := v1.Group("/dashboard")
		dashboard.GET("/seller", s.sellerDashboard)
		dashboard.GET("/admin", s.adminDashboard)
	}
}
