// README: HTTP router: CORS, auth, metrics, and all API routes.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Santhosh-R2/smart-travel/internal/http/handlers"
	"github.com/Santhosh-R2/smart-travel/internal/http/middleware"
	"github.com/Santhosh-R2/smart-travel/internal/infra"
	"github.com/Santhosh-R2/smart-travel/internal/maps"
	"github.com/Santhosh-R2/smart-travel/internal/metrics"
	"github.com/Santhosh-R2/smart-travel/internal/modules/chat"
	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
	"github.com/Santhosh-R2/smart-travel/internal/modules/post"
	"github.com/Santhosh-R2/smart-travel/internal/modules/trip"
	"github.com/Santhosh-R2/smart-travel/internal/service"
)

type RouterDeps struct {
	Estimate  *estimate.Service
	Cache     *estimate.Cache
	Trips     *trip.Service
	Posts     *post.Service
	Chat      *chat.Service
	Routes    *maps.RouteService
	Places    *maps.PlacesService
	Planner   *service.TripPlanner
	Verifier  infra.TokenVerifier
	Collector *metrics.Collector

	CORSOrigins []string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.Metrics(deps.Collector))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(deps.Collector.Handler()))

	estimateHandler := handlers.NewEstimateHandler(deps.Estimate, deps.Cache, deps.Routes, deps.Collector)
	tripHandler := handlers.NewTripHandler(deps.Trips)
	postHandler := handlers.NewPostHandler(deps.Posts)
	aiHandler := handlers.NewAIHandler(deps.Chat, deps.Places, deps.Planner)

	// Published blogs, place reviews, and place photos are readable
	// without a token.
	r.GET("/api/trips/public-blogs", tripHandler.PublicBlogs)
	r.GET("/api/posts/place/:placeId", postHandler.ListByPlace)
	r.GET("/api/ai/photos/:placeId", aiHandler.Photo)

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	api.POST("/ai/estimate-cost", estimateHandler.Estimate)
	api.POST("/ai/generate", aiHandler.Generate)
	api.POST("/ai/chat", aiHandler.Chat)
	api.GET("/ai/chat/history", aiHandler.History)
	api.POST("/ai/attractions", aiHandler.Attractions)

	api.POST("/trips", tripHandler.Create)
	api.GET("/trips", tripHandler.List)
	api.GET("/trips/:id", tripHandler.Get)
	api.PUT("/trips/:id/status", tripHandler.UpdateStatus)
	api.POST("/trips/:id/expenses", tripHandler.AddExpense)
	api.PUT("/trips/:id/blog", tripHandler.PublishBlog)
	api.DELETE("/trips/:id", tripHandler.Delete)

	api.POST("/posts", postHandler.Create)

	return r
}
