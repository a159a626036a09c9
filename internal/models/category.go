package models

// Category is one of the four fixed Kakeibo spending classifications.
type Category string

const (
	CategoryNeeds      Category = "needs"
	CategoryWants      Category = "wants"
	CategoryCulture    Category = "culture"
	CategoryUnexpected Category = "unexpected"
)

// Categories lists every category in the fixed order used for display and tie-breaks.
var Categories = []Category{CategoryNeeds, CategoryWants, CategoryCulture, CategoryUnexpected}

var categoryLabels = map[Category]string{
	CategoryNeeds:      "Needs (Necessities)",
	CategoryWants:      "Wants (Enjoyment)",
	CategoryCulture:    "Culture (Self-improvement)",
	CategoryUnexpected: "Unexpected (Emergencies)",
}

var categoryHints = map[Category]string{
	CategoryNeeds:      "Essential spending: rent, groceries, utilities, transport",
	CategoryWants:      "Non-essential purchases: dining out, entertainment, shopping",
	CategoryCulture:    "Personal growth: books, education, fitness, health",
	CategoryUnexpected: "Unforeseen costs: repairs, medical expenses, emergencies",
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label, e.g. "Needs (Necessities)".
func (c Category) Label() string {
	return categoryLabels[c]
}

// Hint returns the budgeting hint shown next to the allocation field.
func (c Category) Hint() string {
	return categoryHints[c]
}

// ParseCategory converts s into a Category, reporting whether it is valid.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}
