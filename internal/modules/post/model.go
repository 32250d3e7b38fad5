// README: Community post attached to a Google Places result.
package post

import (
	"time"

	"github.com/Santhosh-R2/smart-travel/internal/types"
)

// Rating bounds; a zero rating on create means "not given" and defaults
// to MaxRating.
const (
	MinRating = 1
	MaxRating = 5
)

// Post is a short review a traveller leaves on a place. PlaceID is the
// Places id the attractions endpoint returns, so the frontend can group
// posts under the attraction card.
type Post struct {
	ID        types.ID `json:"id"`
	AuthorID  string   `json:"authorId"`
	PlaceID   string   `json:"placeId"`
	PlaceName string   `json:"placeName"`
	Content   string   `json:"content"`
	Image     string   `json:"image,omitempty"`
	Rating    int      `json:"rating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
