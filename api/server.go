package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/agrinet/cropguard-api/geo"
	"github.com/agrinet/cropguard-api/logmodule"
	"github.com/agrinet/cropguard-api/store"
	"github.com/agrinet/cropguard-api/surveillance"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.SurveillanceCore
	mongoStore store.MongoStore

	// Alert pipeline
	orchestrator surveillance.AlertOrchestrator

	// Farmer index, refreshed on demand through the secret route
	farmerIndex *geo.FarmerIndex
}

// NewServer new instance of server
func NewServer(
	core store.SurveillanceCore,
	mongoStore store.MongoStore,
	orchestrator surveillance.AlertOrchestrator,
	farmerIndex *geo.FarmerIndex) *Server {
	return &Server{
		store:        core,
		mongoStore:   mongoStore,
		orchestrator: orchestrator,
		farmerIndex:  farmerIndex,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	v1Route := apiRoute.Group("/v1")
	{
		v1Route.POST("/detections", s.submitDetection)
	}

	heatmapRoute := v1Route.Group("/heatmap")
	heatmapRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		heatmapRoute.GET("", s.heatmap)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/reindex", s.reindexFarmers)
		secretRoute.GET("/reports/:reportID/attempts", s.listAttempts)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// apikeyAuthentication gates operational routes behind a static key
func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.GetHeader("API-KEY") != key {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidAPIKey)
			return
		}
		c.Next()
	}
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if err := s.store.Ping(); err != nil {
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "CropGuard 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
