package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/hofix-app/hofix-api/logmodule"
	"github.com/hofix-app/hofix-api/messaging"
	"github.com/hofix-app/hofix-api/store"
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
	store      store.MarketplaceCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// real-time event publisher
	push messaging.PushCenter
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoStore store.MongoStore,
	jwtKey *rsa.PrivateKey,
	push messaging.PushCenter) *Server {
	return &Server{
		store:         store.NewMarketplaceStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		push:          push,
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
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
	}

	requestRoute := apiRoute.Group("/service-requests")
	requestRoute.Use(s.recognizeAccountMiddleware())
	{
		requestRoute.POST("", s.createServiceRequest)
		requestRoute.GET("", s.listServiceRequests)
		requestRoute.GET("/:requestID", s.serviceRequestDetail)
		requestRoute.POST("/:requestID/cancel", s.cancelServiceRequest)
		requestRoute.POST("/:requestID/select-quote", s.selectQuote)
	}

	quoteRoute := requestRoute.Group("")
	quoteRoute.Use(s.recognizeProviderMiddleware())
	{
		quoteRoute.POST("/:requestID/quote", s.submitQuote)
		quoteRoute.POST("/:requestID/cancel-quote", s.cancelQuote)
	}

	providerRoute := apiRoute.Group("/provider")
	providerRoute.Use(s.recognizeAccountMiddleware())
	providerRoute.Use(s.recognizeProviderMiddleware())
	{
		providerRoute.GET("/service-requests", s.openServiceRequests)
		providerRoute.GET("/notifications", s.providerNotifications)
		providerRoute.POST("/notifications/:notificationID/read", s.markNotificationRead)
		providerRoute.POST("/bookings/:bookingID/settle-cash", s.settleBookingCash)
		providerRoute.GET("/deposit", s.depositSummary)
		providerRoute.POST("/deposit", s.addDeposit)
	}

	walletRoute := apiRoute.Group("/wallet")
	walletRoute.Use(s.recognizeAccountMiddleware())
	{
		walletRoute.GET("", s.walletSummary)
		walletRoute.POST("/topup", s.walletTopup)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both sides of the datastore
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}
	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
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
