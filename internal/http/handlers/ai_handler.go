// README: AI handler: token-guarded Gemini chat, attraction search, photos.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh-R2/smart-travel/internal/ai"
	"github.com/Santhosh-R2/smart-travel/internal/http/middleware"
	"github.com/Santhosh-R2/smart-travel/internal/maps"
	"github.com/Santhosh-R2/smart-travel/internal/modules/chat"
	"github.com/Santhosh-R2/smart-travel/internal/service"
)

type AIHandler struct {
	chat    *chat.Service
	places  *maps.PlacesService
	planner *service.TripPlanner
}

func NewAIHandler(chatSvc *chat.Service, places *maps.PlacesService, planner *service.TripPlanner) *AIHandler {
	return &AIHandler{chat: chatSvc, places: places, planner: planner}
}

type aiChatReq struct {
	Message string `json:"message"`
}

// Chat handles POST /api/ai/chat. The caller's UID comes from auth, not
// the body.
func (h *AIHandler) Chat(c *gin.Context) {
	var req aiChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	reply, err := h.chat.Chat(ctx, middleware.CallerUID(c), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInsufficientTokens):
			writeError(c, http.StatusTooManyRequests, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"reply": reply})
}

// History handles GET /api/ai/chat/history.
func (h *AIHandler) History(c *gin.Context) {
	msgs, err := h.chat.History(c.Request.Context(), middleware.CallerUID(c), 0)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, msgs)
}

type generateReq struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Interests   []string `json:"interests"`
	Budget      int64    `json:"budget"`
}

// Generate handles POST /api/ai/generate, producing a day-by-day itinerary.
func (h *AIHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	if h.planner == nil {
		writeError(c, http.StatusServiceUnavailable, "itinerary generation unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := h.planner.Plan(ctx, ai.ItineraryRequest{
		Destination: req.Destination,
		Days:        req.Days,
		Interests:   req.Interests,
		BudgetINR:   req.Budget,
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, result)
}

type attractionsReq struct {
	City string `json:"city"`
}

// Attractions handles POST /api/ai/attractions.
func (h *AIHandler) Attractions(c *gin.Context) {
	var req attractionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.City = strings.TrimSpace(req.City)
	if req.City == "" {
		writeError(c, http.StatusBadRequest, "missing city")
		return
	}
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "places search unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := h.places.SearchAttractions(ctx, req.City)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, result)
}

// Photo handles GET /api/ai/photos/:placeId, resolving a place's lead
// photo to a loadable URL. Open route; photo links feed public pages too.
func (h *AIHandler) Photo(c *gin.Context) {
	placeID := strings.TrimSpace(c.Param("placeId"))
	if placeID == "" {
		writeError(c, http.StatusBadRequest, "missing placeId")
		return
	}
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "places search unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	url, err := h.places.PhotoURL(ctx, placeID)
	if err != nil {
		switch {
		case errors.Is(err, maps.ErrNoPhoto):
			writeError(c, http.StatusNotFound, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(c, http.StatusOK, map[string]string{"url": url})
}
