package models

// Category is one of the four activity buckets
type Category string

const (
	Building  Category = "Building"
	Studying  Category = "Studying"
	Applying  Category = "Applying"
	Knowledge Category = "Knowledge"
)

// Categories returns all categories in priority order. Tie-breaks in
// aggregation (top category, most improved) follow this order, so it must
// stay stable.
func Categories() []Category {
	return []Category{Building, Studying, Applying, Knowledge}
}

// Color returns the hex color used for this category in the dashboard
func (c Category) Color() string {
	switch c {
	case Building:
		return "#4CAF50"
	case Studying:
		return "#2196F3"
	case Applying:
		return "#FF9800"
	case Knowledge:
		return "#9C27B0"
	}
	return "#757575"
}

// Valid reports whether c is one of the four known categories
func (c Category) Valid() bool {
	switch c {
	case Building, Studying, Applying, Knowledge:
		return true
	}
	return false
}
