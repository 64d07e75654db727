package fixture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"shop-catalog/internal/domain"
	"shop-catalog/internal/validation"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
)

//go:embed sample.yaml
var sample []byte

// Catalog is the document layout of a fixture file
type Catalog struct {
	Products []Record `yaml:"products"`
}

// Record describes one product in a fixture file. Omitted description,
// images and sizes get the product defaults.
type Record struct {
	ID          string              `yaml:"id"`
	Kind        domain.Kind         `yaml:"kind"`
	Name        string              `yaml:"name"`
	Brand       string              `yaml:"brand"`
	Description string              `yaml:"description"`
	Price       float64             `yaml:"price"`
	Quantity    int                 `yaml:"quantity"`
	Images      []string            `yaml:"images"`
	Reviews     []domain.Review     `yaml:"reviews"`
	Clothing    *domain.Clothing    `yaml:"clothing"`
	Electronics *domain.Electronics `yaml:"electronics"`
}

// Loader turns fixture documents into products
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new Loader
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the fixture at path, or the bundled sample catalog when path
// is empty
func (l *Loader) Load(path string) ([]*domain.Product, error) {
	if path == "" {
		l.logger.Debug("Using bundled sample catalog")
		return l.Decode(bytes.NewReader(sample))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()

	products, err := l.Decode(f)
	if err != nil {
		return nil, err
	}

	l.logger.Info("Loaded catalog fixture",
		zap.String("path", path),
		zap.Int("products", len(products)),
	)

	return products, nil
}

// Decode parses a YAML catalog and builds validated products from it
func (l *Loader) Decode(r io.Reader) ([]*domain.Product, error) {
	var doc Catalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	products := make([]*domain.Product, 0, len(doc.Products))
	for i, rec := range doc.Products {
		p, err := rec.Product()
		if err != nil {
			return nil, fmt.Errorf("product #%d (%q): %w", i, rec.ID, err)
		}
		products = append(products, p)
	}

	return products, nil
}

// Product builds the domain product described by the record
func (rec Record) Product() (*domain.Product, error) {
	p, err := domain.New(rec.Kind, domain.Attributes{
		ID:       rec.ID,
		Name:     rec.Name,
		Brand:    rec.Brand,
		Price:    rec.Price,
		Quantity: rec.Quantity,
	})
	if err != nil {
		return nil, err
	}

	if rec.Description != "" {
		p.Description = rec.Description
	}
	if len(rec.Images) > 0 {
		p.Images = rec.Images
	}

	if rec.Clothing != nil && p.Clothing != nil {
		sizes := p.Clothing.Sizes
		*p.Clothing = *rec.Clothing
		if len(p.Clothing.Sizes) == 0 {
			p.Clothing.Sizes = sizes
		}
	}
	if rec.Electronics != nil && p.Electronics != nil {
		*p.Electronics = *rec.Electronics
	}

	p.SetReviews(rec.Reviews)
	for i := range p.Reviews {
		if p.Reviews[i].CreatedAt.IsZero() {
			p.Reviews[i].CreatedAt = p.CreatedAt
		}
	}

	if err := validation.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProduct, describe(err))
	}

	return p, nil
}

func describe(err error) string {
	fields := validation.FormatValidationErrors(err)
	if len(fields) == 0 {
		return err.Error()
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", f.Field, f.Message)
	}
	return b.String()
}
