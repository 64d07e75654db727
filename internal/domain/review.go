package domain

import (
	"encoding/json"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Rating sub-score names
const (
	RatingService = "service"
	RatingPrice   = "price"
	RatingValue   = "value"
	RatingQuality = "quality"
)

// Rating maps sub-score names to their values. Values are usually numbers,
// but anything decoded from user input may end up here; only numeric values
// take part in scoring.
type Rating map[string]any

// Keys returns the sub-score names in sorted order
func (r Rating) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// Score returns the mean of the numeric sub-scores, or 0 if there are none
func (r Rating) Score() float64 {
	var (
		sum   float64
		count int
	)

	for _, v := range r {
		f, ok := numeric(v)
		if !ok {
			continue
		}
		sum += f
		count++
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Review represents a customer's rating of a product. It is not modified
// after creation.
type Review struct {
	ID        string    `json:"id" yaml:"id" validate:"required"`
	Author    string    `json:"author" yaml:"author"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Comment   string    `json:"comment" yaml:"comment"`
	Rating    Rating    `json:"rating" yaml:"rating"`
}

// NewReview creates a review with all four sub-scores set
func NewReview(id, author, comment string, service, price, value, quality float64) Review {
	return Review{
		ID:        id,
		Author:    author,
		CreatedAt: now(),
		Comment:   comment,
		Rating: Rating{
			RatingService: service,
			RatingPrice:   price,
			RatingValue:   value,
			RatingQuality: quality,
		},
	}
}

// NewReviewID returns a fresh random review identifier
func NewReviewID() string {
	return uuid.NewString()
}

// Score returns the per-review score
func (r Review) Score() float64 {
	return r.Rating.Score()
}

// Clone returns a copy of the review that shares no data with r
func (r Review) Clone() Review {
	r.Rating = maps.Clone(r.Rating)
	return r
}
