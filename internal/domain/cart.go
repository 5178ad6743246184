package domain

import (
	"strings"
	"time"
)

// CartLine is one slot in a user's cart. Identity within a cart is the
// (ProductID, SelectedSize) pair; the empty size is its own equivalence
// class and never merges with a named size. Price is the value asserted
// by the client when the line was first added and survives later merges.
type CartLine struct {
	ProductID    string    `json:"productId"`
	Quantity     int       `json:"quantity"`
	SelectedSize string    `json:"selectedSize,omitempty"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// CartItem is a cart line with its product reference expanded. Product is
// nil when the referenced product has been deleted from the catalog.
type CartItem struct {
	CartLine
	Product *Product `json:"product,omitempty"`
}

// NormalizeSize maps the absent-size variants ("", whitespace) onto the
// empty string so they compare as one equivalence class.
func NormalizeSize(size string) string {
	return strings.TrimSpace(size)
}

// Matches reports whether the line occupies the (productID, size) slot.
func (l CartLine) Matches(productID, size string) bool {
	return l.ProductID == productID && NormalizeSize(l.SelectedSize) == NormalizeSize(size)
}

// MergeLine folds add into lines: an existing line with the same
// (productId, selectedSize) key gets its quantity incremented and keeps
// its original price snapshot; otherwise add is appended.
func MergeLine(lines []CartLine, add CartLine) []CartLine {
	for i := range lines {
		if lines[i].Matches(add.ProductID, add.SelectedSize) {
			lines[i].Quantity += add.Quantity
			return lines
		}
	}
	add.SelectedSize = NormalizeSize(add.SelectedSize)
	return append(lines, add)
}

// SetLineQuantity replaces the quantity of the matching line. It reports
// false when no line matches; it never creates one.
func SetLineQuantity(lines []CartLine, productID, size string, quantity int) bool {
	for i := range lines {
		if lines[i].Matches(productID, size) {
			lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveLine filters out the matching line and reports whether anything
// was removed.
func RemoveLine(lines []CartLine, productID, size string) ([]CartLine, bool) {
	out := lines[:0]
	removed := false
	for _, l := range lines {
		if l.Matches(productID, size) {
			removed = true
			continue
		}
		out = append(out, l)
	}
	return out, removed
}
