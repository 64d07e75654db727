package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	// DefaultDescription is assigned to every new product
	DefaultDescription = "no description"
)

var (
	ErrAbstractProduct = errors.New("cannot instantiate abstract product")
	ErrUnknownKind     = errors.New("unknown product kind")
)

// now is replaced in tests
var now = time.Now

// Kind discriminates the product variants
type Kind string

const (
	KindProduct     Kind = "product"
	KindClothing    Kind = "clothing"
	KindElectronics Kind = "electronics"
)

// DefaultImages returns the placeholder image set of a new product
func DefaultImages() []string {
	return []string{"img1", "img2", "img3"}
}

// Product represents a product in the catalog. Exactly one of Clothing or
// Electronics is set, matching Kind.
type Product struct {
	ID          string    `json:"id" yaml:"id" validate:"required"`
	Kind        Kind      `json:"kind" yaml:"kind" validate:"required,oneof=clothing electronics"`
	Name        string    `json:"name" yaml:"name" validate:"required"`
	Brand       string    `json:"brand" yaml:"brand"`
	Description string    `json:"description" yaml:"description"`
	Price       float64   `json:"price" yaml:"price" validate:"gte=0"`
	Quantity    int       `json:"quantity" yaml:"quantity" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	Reviews     []Review  `json:"reviews" yaml:"reviews" validate:"dive"`
	Images      []string  `json:"images" yaml:"images"`

	Clothing    *Clothing    `json:"clothing,omitempty" yaml:"clothing,omitempty"`
	Electronics *Electronics `json:"electronics,omitempty" yaml:"electronics,omitempty"`
}

// Attributes carries the fields shared by every product kind
type Attributes struct {
	ID       string
	Name     string
	Brand    string
	Price    float64
	Quantity int
}

// New creates a product of the given kind with default variant payload.
// The base kind is abstract and cannot be instantiated.
func New(kind Kind, attrs Attributes) (*Product, error) {
	switch kind {
	case KindClothing:
		return newProduct(kind, attrs, &Clothing{Sizes: DefaultSizes()}, nil), nil
	case KindElectronics:
		return newProduct(kind, attrs, nil, &Electronics{}), nil
	case KindProduct, "":
		return nil, ErrAbstractProduct
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func newProduct(kind Kind, attrs Attributes, c *Clothing, e *Electronics) *Product {
	return &Product{
		ID:          attrs.ID,
		Kind:        kind,
		Name:        attrs.Name,
		Brand:       attrs.Brand,
		Description: DefaultDescription,
		Price:       attrs.Price,
		Quantity:    attrs.Quantity,
		CreatedAt:   now(),
		Reviews:     []Review{},
		Images:      DefaultImages(),
		Clothing:    c,
		Electronics: e,
	}
}

// Touch refreshes the creation timestamp
func (p *Product) Touch() *Product {
	p.CreatedAt = now()
	return p
}

// AddReview appends a copy of the review to the product
func (p *Product) AddReview(review Review) *Product {
	p.Reviews = append(p.Reviews, review.Clone())
	return p
}

// SetReviews replaces the reviews with copies of the given ones
func (p *Product) SetReviews(reviews []Review) *Product {
	owned := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		owned = append(owned, r.Clone())
	}
	p.Reviews = owned
	return p
}

// DeleteReview removes every review with the given ID
func (p *Product) DeleteReview(id string) *Product {
	if !slices.ContainsFunc(p.Reviews, func(r Review) bool { return r.ID == id }) {
		return p
	}
	p.Reviews = slices.DeleteFunc(slices.Clone(p.Reviews), func(r Review) bool {
		return r.ID == id
	})
	return p
}

// ReviewByID returns the first review with the given ID
func (p *Product) ReviewByID(id string) (Review, bool) {
	i := slices.IndexFunc(p.Reviews, func(r Review) bool { return r.ID == id })
	if i < 0 {
		return Review{}, false
	}
	return p.Reviews[i].Clone(), true
}

// AverageRating returns the mean of the per-review scores, or 0 if the
// product has no reviews. Each review weighs the same regardless of how
// many sub-scores it carries.
func (p *Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}

	var total float64
	for _, r := range p.Reviews {
		total += r.Score()
	}

	return total / float64(len(p.Reviews))
}

// ImageByIndex returns the image at position i
func (p *Product) ImageByIndex(i int) (string, bool) {
	if i < 0 || i >= len(p.Images) {
		return "", false
	}
	return p.Images[i], true
}

// ImageByName returns the image with the given name if the product has it
func (p *Product) ImageByName(name string) (string, bool) {
	if slices.Contains(p.Images, name) {
		return name, true
	}
	return "", false
}

// PriceForQuantity returns the cost of n items
func (p *Product) PriceForQuantity(n int) float64 {
	return p.Price * float64(n)
}

// FormatPriceForQuantity returns the cost of n items as a dollar amount
func (p *Product) FormatPriceForQuantity(n int) string {
	return "$" + formatNumber(p.PriceForQuantity(n))
}

// FullInformation renders every field of the product, reviews included
func (p *Product) FullInformation() string {
	var b strings.Builder

	fmt.Fprintf(&b, "id - %s\n", p.ID)
	fmt.Fprintf(&b, "kind - %s\n", p.Kind)
	fmt.Fprintf(&b, "name - %s\n", p.Name)
	fmt.Fprintf(&b, "brand - %s\n", p.Brand)
	fmt.Fprintf(&b, "description - %s\n", p.Description)
	fmt.Fprintf(&b, "price - %s\n", formatNumber(p.Price))
	fmt.Fprintf(&b, "quantity - %d\n", p.Quantity)
	fmt.Fprintf(&b, "date - %s\n", p.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "images - %s\n", strings.Join(p.Images, ","))

	switch {
	case p.Clothing != nil:
		fmt.Fprintf(&b, "sizes - %s\n", strings.Join(p.Clothing.Sizes, ","))
		fmt.Fprintf(&b, "activeSize - %s\n", p.Clothing.ActiveSize)
		fmt.Fprintf(&b, "material - %s\n", p.Clothing.Material)
		fmt.Fprintf(&b, "color - %s\n", p.Clothing.Color)
	case p.Electronics != nil:
		fmt.Fprintf(&b, "warranty - %d\n", p.Electronics.Warranty)
		fmt.Fprintf(&b, "power - %s\n", formatNumber(p.Electronics.Power))
	}

	b.WriteString("reviews:\n")
	for _, r := range p.Reviews {
		fmt.Fprintf(&b, " id - %s\n", r.ID)
		fmt.Fprintf(&b, " author - %s\n", r.Author)
		fmt.Fprintf(&b, " comment - %s\n", r.Comment)
		for _, key := range r.Rating.Keys() {
			fmt.Fprintf(&b, "  %s - %v\n", key, r.Rating[key])
		}
	}

	return b.String()
}

func formatNumber(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
