// Package site holds the storefront content catalog and its configuration:
// products, collections, testimonials, navigation and per-section carousel
// settings. The catalog is loaded from YAML, falling back to an embedded
// default, and can be watched for live edits.
package site

import "github.com/germanamz/irena/pkg/carousel"

// Product is an item for sale, shown in the bestsellers carousel.
type Product struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Details string  `yaml:"details"`
	Price   float64 `yaml:"price"`
	Image   string  `yaml:"image"`
	Alt     string  `yaml:"alt"`
}

// Collection is a product family, shown in the collections carousel.
type Collection struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Alt         string `yaml:"alt"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID     string `yaml:"id"`
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

// NavigationItem links a header or footer entry to a page section.
type NavigationItem struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Anchor returns the section id the item points at ("#about" -> "about").
// External links return "".
func (n NavigationItem) Anchor() string {
	if len(n.Href) > 1 && n.Href[0] == '#' {
		return n.Href[1:]
	}
	return ""
}

// CollectionItems maps collections to carousel slides.
func CollectionItems(collections []Collection) []carousel.Item {
	items := make([]carousel.Item, 0, len(collections))
	for _, c := range collections {
		items = append(items, carousel.Item{
			ID:          c.ID,
			Image:       c.Image,
			Alt:         c.Alt,
			Title:       c.Title,
			Description: c.Description,
		})
	}
	return items
}

// ProductItems maps products to carousel slides, carrying their price.
func ProductItems(products []Product) []carousel.Item {
	items := make([]carousel.Item, 0, len(products))
	for _, p := range products {
		items = append(items, carousel.Item{
			ID:      p.ID,
			Image:   p.Image,
			Alt:     p.Alt,
			Title:   p.Name,
			Details: p.Details,
			Price:   p.Price,
		})
	}
	return items
}
