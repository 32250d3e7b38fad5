// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Santhosh-R2/smart-travel/internal/ai"
	"github.com/Santhosh-R2/smart-travel/internal/config"
	"github.com/Santhosh-R2/smart-travel/internal/events"
	httptransport "github.com/Santhosh-R2/smart-travel/internal/http"
	"github.com/Santhosh-R2/smart-travel/internal/infra"
	"github.com/Santhosh-R2/smart-travel/internal/maps"
	"github.com/Santhosh-R2/smart-travel/internal/metrics"
	"github.com/Santhosh-R2/smart-travel/internal/modules/chat"
	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
	"github.com/Santhosh-R2/smart-travel/internal/modules/post"
	"github.com/Santhosh-R2/smart-travel/internal/modules/trip"
	"github.com/Santhosh-R2/smart-travel/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("TRAVEL_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}

	var publisher *events.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = events.NewPublisher(cfg.NATS.URL)
		if err != nil {
			log.Fatalf("nats init: %v", err)
		}
		defer publisher.Close()
	}

	estimateSvc := estimate.NewService()
	quoteCache := estimate.NewCache(redisClient, cfg.Redis.QuoteTTL)

	tripStore := trip.NewStore(dbPool)
	var sink trip.EventSink
	if publisher != nil {
		sink = publisher
	}
	tripSvc := trip.NewService(tripStore, estimateSvc, sink)

	postSvc := post.NewService(post.NewStore(dbPool))

	chatStore := chat.NewStore(dbPool)
	chatSvc := chat.NewService(chatStore, cfg.AI.GeminiKey)

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()
	planner := service.NewTripPlanner(provider, placesSvc)

	collector := metrics.NewCollector()

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Estimate:    estimateSvc,
		Cache:       quoteCache,
		Trips:       tripSvc,
		Posts:       postSvc,
		Chat:        chatSvc,
		Routes:      routeSvc,
		Places:      placesSvc,
		Planner:     planner,
		Verifier:    verifier,
		Collector:   collector,
		CORSOrigins: cfg.HTTP.AllowOrigins,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
