// README: Community post handler: create and list reviews per place.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh-R2/smart-travel/internal/http/middleware"
	"github.com/Santhosh-R2/smart-travel/internal/modules/post"
)

type PostHandler struct {
	posts *post.Service
}

func NewPostHandler(posts *post.Service) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostReq struct {
	PlaceID   string `json:"placeId"`
	PlaceName string `json:"placeName"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Rating    int    `json:"rating"`
}

// Create handles POST /api/posts. The author comes from auth, not the body.
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.posts.Create(c.Request.Context(), post.CreateCommand{
		AuthorID:  middleware.CallerUID(c),
		PlaceID:   req.PlaceID,
		PlaceName: req.PlaceName,
		Content:   req.Content,
		Image:     req.Image,
		Rating:    req.Rating,
	})
	if err != nil {
		writePostError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, p)
}

// ListByPlace handles GET /api/posts/place/:placeId. Reviews are public,
// so the route takes no token.
func (h *PostHandler) ListByPlace(c *gin.Context) {
	posts, err := h.posts.ListByPlace(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		writePostError(c, err)
		return
	}
	if posts == nil {
		posts = []*post.Post{}
	}
	writeJSON(c, http.StatusOK, posts)
}

func writePostError(c *gin.Context, err error) {
	switch err {
	case post.ErrBadRequest, post.ErrInvalidRating:
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
