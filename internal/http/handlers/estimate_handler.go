// README: Cost estimate handler; fills distance from Maps, serves via cache.
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh-R2/smart-travel/internal/maps"
	"github.com/Santhosh-R2/smart-travel/internal/metrics"
	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
)

type EstimateHandler struct {
	engine    *estimate.Service
	cache     *estimate.Cache
	routes    *maps.RouteService
	collector *metrics.Collector
}

func NewEstimateHandler(engine *estimate.Service, cache *estimate.Cache, routes *maps.RouteService, collector *metrics.Collector) *EstimateHandler {
	return &EstimateHandler{engine: engine, cache: cache, routes: routes, collector: collector}
}

type estimateReq struct {
	StartLocation string  `json:"startLocation"`
	Destination   string  `json:"destination"`
	Mode          string  `json:"mode"`
	Passengers    int     `json:"passengers"`
	Date          string  `json:"date"`
	Distance      float64 `json:"distance"`
	Preferences   struct {
		Accommodation bool   `json:"accommodation"`
		Meals         string `json:"meals"` // "1,0,1": breakfast,lunch,dinner
	} `json:"preferences"`
}

// Estimate handles POST /api/ai/estimate-cost.
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.StartLocation == "" || req.Destination == "" || req.Mode == "" || req.Date == "" {
		writeError(c, http.StatusBadRequest, "please provide all trip details")
		return
	}
	if req.Passengers < 1 {
		req.Passengers = 1
	}
	if req.Preferences.Meals == "" {
		req.Preferences.Meals = "1,1,1"
	}

	// When the client has no distance, ask Maps for the real route before
	// letting the engine fall back to a drawn one. Maps being down is not
	// fatal; the fallback covers it.
	distance := req.Distance
	if distance <= 0.1 && h.routes != nil {
		rctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if km, _, err := h.routes.GetRouteDistance(rctx, req.StartLocation, req.Destination, req.Mode); err == nil {
			distance = km
		} else {
			log.Printf("route distance lookup failed: %v", err)
		}
	}

	engineReq := estimate.Request{
		Origin:               req.StartLocation,
		Destination:          req.Destination,
		Mode:                 estimate.Mode(req.Mode),
		PartySize:            req.Passengers,
		TravelDate:           req.Date,
		IncludeAccommodation: req.Preferences.Accommodation,
		Meals:                estimate.ParseMealMask(req.Preferences.Meals),
		KnownDistanceKm:      distance,
	}

	if h.cache != nil {
		if cached, ok := h.cache.Get(c.Request.Context(), engineReq); ok {
			h.collector.EstimatesServed.WithLabelValues("cache").Inc()
			writeJSON(c, http.StatusOK, cached)
			return
		}
	}

	start := time.Now()
	result, err := h.engine.Estimate(c.Request.Context(), engineReq)
	h.collector.EstimateDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.collector.EstimateErrors.Inc()
		writeTripError(c, err)
		return
	}

	if h.cache != nil {
		h.cache.Put(c.Request.Context(), engineReq, result)
	}
	h.collector.EstimatesServed.WithLabelValues("engine").Inc()
	writeJSON(c, http.StatusOK, result)
}
