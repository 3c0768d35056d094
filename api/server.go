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

	"github.com/lifeline-bd/lifeline-api/background"
	"github.com/lifeline-bd/lifeline-api/consts"
	"github.com/lifeline-bd/lifeline-api/external/authprovider"
	"github.com/lifeline-bd/lifeline-api/geo"
	"github.com/lifeline-bd/lifeline-api/logmodule"
	"github.com/lifeline-bd/lifeline-api/store"
	"github.com/lifeline-bd/lifeline-api/tracking"
	"github.com/lifeline-bd/lifeline-api/utils"
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
	store     store.LifelineCore
	positions store.PositionLog

	// External services
	auth     authprovider.Provider
	router   geo.Router
	resolver geo.DistrictResolver

	// job dispatcher
	background background.Dispatcher

	tracker     *tracking.Tracker
	trackingIDs *utils.TrackingIDGenerator

	// secret of locally verified session tokens
	jwtSecret []byte

	clock func() time.Time
}

// NewServer new instance of server
func NewServer(
	core store.LifelineCore,
	positions store.PositionLog,
	auth authprovider.Provider,
	router geo.Router,
	resolver geo.DistrictResolver,
	dispatcher background.Dispatcher,
	tracker *tracking.Tracker) *Server {
	return &Server{
		store:       core,
		positions:   positions,
		auth:        auth,
		router:      router,
		resolver:    resolver,
		background:  dispatcher,
		tracker:     tracker,
		trackingIDs: utils.NewTrackingIDGenerator(consts.TrackingIDPrefix),
		jwtSecret:   []byte(viper.GetString("auth.jwt_secret")),
		clock:       time.Now,
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

func (s *Server) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
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

	publicRoute := apiRoute.Group("/public")
	publicRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))
	{
		publicRoute.POST("/request-blood", s.submitBloodRequest)
		publicRoute.GET("/track/:trackingID", s.trackRequest)
		publicRoute.GET("/map/markers", s.mapMarkers)
	}

	// api routes other than `/public` will apply the following middleware
	apiRoute.Use(s.sessionMiddleware(defaultPermissions))
	apiRoute.Use(s.permissionMiddleware(defaultPermissions))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
		authRoute.POST("/logout", s.logout)
		authRoute.GET("/me", s.me)
	}

	adminRoute := apiRoute.Group("/admin")
	{
		adminRoute.POST("/requests/:id/approve", s.approveRequest)
		adminRoute.POST("/requests/:id/assign", s.assignRequest)
		adminRoute.POST("/requests/:id/cancel", s.cancelRequest)
		adminRoute.GET("/analytics", s.analytics)
	}

	apiRoute.POST("/requests/:id/assign-donor", s.assignDonor)

	assignmentRoute := apiRoute.Group("/assignments")
	{
		assignmentRoute.POST("/:id/respond", s.respondAssignment)
		assignmentRoute.POST("/:id/start-transit", s.startTransit)
	}

	donationRoute := apiRoute.Group("/donations")
	{
		donationRoute.POST("/complete", s.completeDonation)
		donationRoute.POST("/:id/verify", s.verifyDonation)
	}

	routeRoute := apiRoute.Group("/routes")
	{
		routeRoute.GET("/:id/eta", s.routeETA)
		routeRoute.POST("/:id/eta", s.updateRoutePosition)
		routeRoute.POST("/:id/reroute", s.reroute)
		routeRoute.POST("/:id/share", s.shareRoute)
		routeRoute.DELETE("/:id/share", s.revokeRouteShare)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.POST("/:id/read", s.readNotification)
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
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, gin.H{
			"success": false,
			"error":   obj,
		})
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
