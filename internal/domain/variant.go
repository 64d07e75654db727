package domain

import "slices"

// DefaultSizes returns the size range of new clothing
func DefaultSizes() []string {
	return []string{"XS", "S", "M", "L", "XL", "XXL"}
}

// Clothing holds the clothing-specific attributes of a product
type Clothing struct {
	Sizes      []string `json:"sizes" yaml:"sizes"`
	ActiveSize string   `json:"active_size" yaml:"active_size"`
	Material   string   `json:"material" yaml:"material"`
	Color      string   `json:"color" yaml:"color"`
}

// AddSize appends a size to the list
func (c *Clothing) AddSize(size string) *Clothing {
	c.Sizes = append(c.Sizes, size)
	return c
}

// DeleteSize removes every occurrence of the size
func (c *Clothing) DeleteSize(size string) *Clothing {
	c.Sizes = slices.DeleteFunc(slices.Clone(c.Sizes), func(s string) bool {
		return s == size
	})
	return c
}

// Electronics holds the electronics-specific attributes of a product
type Electronics struct {
	Warranty int     `json:"warranty" yaml:"warranty" validate:"gte=0"` // in months
	Power    float64 `json:"power" yaml:"power" validate:"gte=0"`       // in watts
}

// NewClothing creates a clothing product
func NewClothing(attrs Attributes, activeSize, material, color string) *Product {
	return newProduct(KindClothing, attrs, &Clothing{
		Sizes:      DefaultSizes(),
		ActiveSize: activeSize,
		Material:   material,
		Color:      color,
	}, nil)
}

// NewElectronics creates an electronics product
func NewElectronics(attrs Attributes, warranty int, power float64) *Product {
	return newProduct(KindElectronics, attrs, nil, &Electronics{
		Warranty: warranty,
		Power:    power,
	})
}
