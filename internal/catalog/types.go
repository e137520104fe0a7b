// Package catalog holds the property listing types and the intent-based
// listing matcher. Catalog entries are immutable once loaded; the matcher
// only reads them.
package catalog

// Listing is a single property catalog entry. Records come from an external
// supplier (file or database); only title, price and location are required,
// the rest degrade to "no match" when a constraint needs them.
type Listing struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Price       float64  `json:"price" yaml:"price" validate:"required,gt=0"`
	Location    string   `json:"location" yaml:"location" validate:"required"`
	Bedrooms    int      `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms   int      `json:"bathrooms,omitempty" yaml:"bathrooms,omitempty"`
	Area        int      `json:"area,omitempty" yaml:"area,omitempty"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Images      []string `json:"images,omitempty" yaml:"images,omitempty"`
	Features    []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// MatchIntent is the structured search criteria for a match run. A nil field
// imposes no restriction on that dimension.
type MatchIntent struct {
	Budget       *float64 `json:"budget,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
}

// Empty reports whether the intent carries no active constraint at all.
func (i MatchIntent) Empty() bool {
	return i.Budget == nil && i.Location == nil && i.Bedrooms == nil && i.PropertyType == nil
}
