package model

// Category is a user-owned label in the "categories" collection. Notes
// reference a category by name, not by id, so deleting a category leaves
// notes that mention its name untouched.
type Category struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}
