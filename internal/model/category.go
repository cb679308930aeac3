package model

// StatusPublished is the settings-sheet status that makes a category visible.
// Matched exactly, without trimming or case folding.
const StatusPublished = "公開"

// Category is one row of the settings sheet. Pointer fields are nil when the
// cell is absent from the row.
type Category struct {
	CategoryID   *string `json:"categoryId,omitempty" yaml:"categoryId,omitempty"`
	CategoryName *string `json:"categoryName,omitempty" yaml:"categoryName,omitempty"`
	DisplayName  *string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	// SheetName is the tab holding this category's questions.
	SheetName *string `json:"sheetName,omitempty" yaml:"sheetName,omitempty"`
	// Order is a sort hint for consumers; 0 when the cell is absent or not numeric.
	Order  int     `json:"order" yaml:"order"`
	Status *string `json:"status,omitempty" yaml:"status,omitempty"`
}

// Published reports whether the category status is exactly StatusPublished.
func (c Category) Published() bool {
	return c.Status != nil && *c.Status == StatusPublished
}
