package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, ts time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
}

func newTestShirt() *Product {
	return NewClothing(Attributes{ID: "c1", Name: "T-shirt", Brand: "Adidas", Price: 12, Quantity: 5}, "M", "cotton", "white")
}

func TestNew_AbstractProductFails(t *testing.T) {
	p, err := New(KindProduct, Attributes{ID: "p1", Name: "Thing"})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrAbstractProduct)

	p, err = New("", Attributes{ID: "p1"})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrAbstractProduct)
}

func TestNew_UnknownKindFails(t *testing.T) {
	_, err := New("furniture", Attributes{ID: "f1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Contains(t, err.Error(), "furniture")
}

func TestNew_Variants(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	fixedClock(t, ts)

	c, err := New(KindClothing, Attributes{ID: "c1", Name: "Skirt", Brand: "Cos", Price: 15, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, KindClothing, c.Kind)
	require.NotNil(t, c.Clothing)
	assert.Nil(t, c.Electronics)
	assert.Equal(t, DefaultSizes(), c.Clothing.Sizes)
	assert.Equal(t, DefaultDescription, c.Description)
	assert.Equal(t, DefaultImages(), c.Images)
	assert.Equal(t, ts, c.CreatedAt)
	assert.Empty(t, c.Reviews)

	e, err := New(KindElectronics, Attributes{ID: "e1", Name: "Tv", Brand: "Sony", Price: 200, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, KindElectronics, e.Kind)
	assert.Nil(t, e.Clothing)
	require.NotNil(t, e.Electronics)
}

func TestNewElectronics_Fields(t *testing.T) {
	p := NewElectronics(Attributes{ID: "e4", Name: "Laptop", Brand: "HP", Price: 1200, Quantity: 14}, 24, 65)
	assert.Equal(t, 24, p.Electronics.Warranty)
	assert.Equal(t, 65.0, p.Electronics.Power)
	assert.Equal(t, "HP", p.Brand)
}

func TestProduct_Touch(t *testing.T) {
	fixedClock(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	p := newTestShirt()

	later := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	now = func() time.Time { return later }
	p.Touch()

	assert.Equal(t, later, p.CreatedAt)
}

func TestProduct_AverageRating(t *testing.T) {
	tests := []struct {
		name    string
		reviews []Review
		want    float64
	}{
		{
			name: "no reviews",
			want: 0,
		},
		{
			name: "two uniform reviews",
			reviews: []Review{
				NewReview("r1", "Max", "Super", 5, 5, 5, 5),
				NewReview("r2", "Andrew", "Bad", 1, 1, 1, 1),
			},
			want: 3,
		},
		{
			name: "mean of means",
			reviews: []Review{
				{ID: "r1", Rating: Rating{RatingService: 4}},
				{ID: "r2", Rating: Rating{RatingService: 2, RatingPrice: 2, RatingValue: 2, RatingQuality: 2}},
			},
			want: 3,
		},
		{
			name: "non-numeric sub-score is skipped",
			reviews: []Review{
				{ID: "r1", Rating: Rating{RatingService: 4, RatingPrice: 2, RatingQuality: "n/a"}},
			},
			want: 3,
		},
		{
			name: "review without numeric sub-scores counts as zero",
			reviews: []Review{
				{ID: "r1", Rating: Rating{RatingQuality: "n/a"}},
				{ID: "r2", Rating: Rating{RatingService: 4}},
			},
			want: 2,
		},
		{
			name: "integer sub-scores",
			reviews: []Review{
				{ID: "r1", Rating: Rating{RatingService: 5, RatingPrice: 4, RatingValue: int64(4), RatingQuality: uint8(5)}},
			},
			want: 4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestShirt().SetReviews(tt.reviews)
			assert.InDelta(t, tt.want, p.AverageRating(), 1e-9)
		})
	}
}

func TestProduct_AddReviewCopies(t *testing.T) {
	r := NewReview("r1", "Max", "Super", 5, 5, 5, 5)
	a := newTestShirt().AddReview(r)
	b := newTestShirt().AddReview(r)

	a.Reviews[0].Rating[RatingService] = 1

	assert.Equal(t, 5.0, b.Reviews[0].Rating[RatingService])
	assert.Equal(t, 5.0, r.Rating[RatingService])
}

func TestProduct_SetReviewsCopies(t *testing.T) {
	shared := []Review{NewReview("r1", "Max", "Super", 5, 5, 5, 5)}
	p := newTestShirt().SetReviews(shared)

	shared[0].Rating[RatingPrice] = 0
	shared[0] = Review{ID: "other"}

	assert.Equal(t, "r1", p.Reviews[0].ID)
	assert.Equal(t, 5.0, p.Reviews[0].Rating[RatingPrice])
}

func TestProduct_DeleteReview(t *testing.T) {
	p := newTestShirt().
		AddReview(NewReview("r1", "Max", "Super", 5, 5, 5, 5)).
		AddReview(NewReview("r2", "Alex", "Good", 4, 4, 4, 4)).
		AddReview(NewReview("r1", "Max", "OK", 5, 4, 4, 5))

	p.DeleteReview("r1")

	require.Len(t, p.Reviews, 1)
	assert.Equal(t, "r2", p.Reviews[0].ID)
}

func TestProduct_ReviewByID(t *testing.T) {
	p := newTestShirt().
		AddReview(NewReview("r1", "Max", "Super", 5, 5, 5, 5)).
		AddReview(NewReview("r1", "Serg", "Norm", 3, 3, 3, 3))

	r, ok := p.ReviewByID("r1")
	require.True(t, ok)
	assert.Equal(t, "Max", r.Author)

	_, ok = p.ReviewByID("missing")
	assert.False(t, ok)
}

func TestProduct_Images(t *testing.T) {
	p := newTestShirt()

	img, ok := p.ImageByIndex(1)
	assert.True(t, ok)
	assert.Equal(t, "img2", img)

	_, ok = p.ImageByIndex(3)
	assert.False(t, ok)
	_, ok = p.ImageByIndex(-1)
	assert.False(t, ok)

	img, ok = p.ImageByName("img3")
	assert.True(t, ok)
	assert.Equal(t, "img3", img)

	_, ok = p.ImageByName("img9")
	assert.False(t, ok)
}

func TestProduct_PriceForQuantity(t *testing.T) {
	p := newTestShirt()
	assert.Equal(t, 36.0, p.PriceForQuantity(3))
	assert.Equal(t, "$36", p.FormatPriceForQuantity(3))

	p.Price = 10.25
	assert.Equal(t, "$20.5", p.FormatPriceForQuantity(2))
}

func TestProduct_FullInformation(t *testing.T) {
	p := newTestShirt().AddReview(NewReview("r1", "Max", "Super", 5, 4, 3, 2))
	info := p.FullInformation()

	assert.Contains(t, info, "id - c1\n")
	assert.Contains(t, info, "name - T-shirt\n")
	assert.Contains(t, info, "activeSize - M\n")
	assert.Contains(t, info, "sizes - XS,S,M,L,XL,XXL\n")
	assert.Contains(t, info, " author - Max\n")
	assert.Contains(t, info, "  quality - 2\n")
}

func TestClothing_Sizes(t *testing.T) {
	p := newTestShirt()
	p.Clothing.AddSize("XXXL").AddSize("M")
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL", "M"}, p.Clothing.Sizes)

	p.Clothing.DeleteSize("M")
	assert.Equal(t, []string{"XS", "S", "L", "XL", "XXL", "XXXL"}, p.Clothing.Sizes)

	p.Clothing.DeleteSize("nope")
	assert.Len(t, p.Clothing.Sizes, 6)
}

// Feature: product-catalog, Property 1: Deleting an unknown review is a no-op
func TestProperty_DeleteUnknownReviewIsNoop(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("deleting a missing id leaves reviews unchanged", prop.ForAll(
		func(ids []string) bool {
			p := newTestShirt()
			for _, id := range ids {
				p.AddReview(NewReview("r-"+id, "author", "comment", 1, 2, 3, 4))
			}
			before := make([]Review, len(p.Reviews))
			copy(before, p.Reviews)

			p.DeleteReview("missing")

			if len(before) != len(p.Reviews) {
				return false
			}
			for i := range before {
				if before[i].ID != p.Reviews[i].ID || before[i].Comment != p.Reviews[i].Comment {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: product-catalog, Property 2: Average rating stays within sub-score bounds
func TestProperty_AverageRatingWithinBounds(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("average lies between min and max sub-score", prop.ForAll(
		func(scores []float64) bool {
			p := newTestShirt()
			if len(scores) == 0 {
				return p.AverageRating() == 0
			}

			lo, hi := scores[0], scores[0]
			for i, s := range scores {
				lo, hi = min(lo, s), max(hi, s)
				p.AddReview(NewReview("r"+string(rune('a'+i%26)), "a", "c", s, s, s, s))
			}

			avg := p.AverageRating()
			return avg >= lo-1e-9 && avg <= hi+1e-9
		},
		gen.SliceOf(gen.Float64Range(0, 5)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
