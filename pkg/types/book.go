package types

import "fmt"

// Book is a single catalog record. Books are immutable once created; the
// catalog assigns ID at insert time and never reuses it.
type Book struct {
	ID            string `json:"id"`             // Decimal id assigned by the backing store.
	Title         string `json:"title"`          // Free text; not validated.
	Author        string `json:"author"`         // Free text; not validated.
	YearPublished int    `json:"year_published"` // Unconstrained; negative and future years are kept.
}

// String formats the book for one-line display.
func (b Book) String() string {
	return fmt.Sprintf("%s: %s by %s (%d)", b.ID, b.Title, b.Author, b.YearPublished)
}
