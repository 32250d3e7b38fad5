// README: Trip CRUD handler: create with budget snapshot, status, expenses, blogs.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh-R2/smart-travel/internal/http/middleware"
	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
	"github.com/Santhosh-R2/smart-travel/internal/modules/trip"
	"github.com/Santhosh-R2/smart-travel/internal/types"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(trips *trip.Service) *TripHandler {
	return &TripHandler{trips: trips}
}

type createTripReq struct {
	Title                string  `json:"title"`
	Origin               string  `json:"origin"`
	City                 string  `json:"city"`
	Country              string  `json:"country"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	Mode                 string  `json:"mode"`
	Passengers           int     `json:"passengers"`
	Distance             float64 `json:"distance"`
	IncludeAccommodation bool    `json:"includeAccommodation"`
	MealMask             string  `json:"mealMask"`
	IsPublic             bool    `json:"isPublic"`
}

// Create handles POST /api/trips.
func (h *TripHandler) Create(c *gin.Context) {
	var req createTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
		return
	}

	t, err := h.trips.Create(c.Request.Context(), trip.CreateCommand{
		OwnerID:              middleware.CallerUID(c),
		Title:                req.Title,
		Origin:               req.Origin,
		City:                 req.City,
		Country:              req.Country,
		StartDate:            start,
		EndDate:              end,
		TransportMode:        estimate.Mode(req.Mode),
		PartySize:            req.Passengers,
		DistanceKm:           req.Distance,
		IncludeAccommodation: req.IncludeAccommodation,
		MealMask:             req.MealMask,
		IsPublic:             req.IsPublic,
	})
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, t)
}

// List handles GET /api/trips, returning the caller's own trips.
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, trips)
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	t, err := h.trips.Get(c.Request.Context(), types.ID(id), middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/trips/:id/status.
func (h *TripHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.trips.UpdateStatus(c.Request.Context(), types.ID(id), middleware.CallerUID(c), trip.Status(req.Status)); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": req.Status})
}

type addExpenseReq struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	SpentAt     string `json:"spentAt"`
}

// AddExpense handles POST /api/trips/:id/expenses.
func (h *TripHandler) AddExpense(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	var req addExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	e := trip.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
	}
	if req.SpentAt != "" {
		at, err := time.Parse("2006-01-02", req.SpentAt)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid spentAt, expected YYYY-MM-DD")
			return
		}
		e.SpentAt = at
	}
	if err := h.trips.AddExpense(c.Request.Context(), types.ID(id), middleware.CallerUID(c), e); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"message": "expense recorded"})
}

type publishBlogReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PublishBlog handles PUT /api/trips/:id/blog.
func (h *TripHandler) PublishBlog(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	var req publishBlogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	blog := trip.Blog{Title: req.Title, Content: req.Content}
	if err := h.trips.PublishBlog(c.Request.Context(), types.ID(id), middleware.CallerUID(c), blog); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "blog published"})
}

// PublicBlogs handles GET /api/trips/public-blogs. No auth required.
func (h *TripHandler) PublicBlogs(c *gin.Context) {
	trips, err := h.trips.PublicBlogs(c.Request.Context())
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, trips)
}

// Delete handles DELETE /api/trips/:id.
func (h *TripHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	if err := h.trips.Delete(c.Request.Context(), types.ID(id), middleware.CallerUID(c)); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "trip deleted"})
}
