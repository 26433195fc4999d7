package model

import "testing"

func TestDisplayCategory(t *testing.T) {
	n := Note{Title: "Groceries", Content: "Milk"}
	if got := n.DisplayCategory(); got != "Uncategorized" {
		t.Fatalf("expected Uncategorized, got %q", got)
	}

	n.Category = "Home"
	if got := n.DisplayCategory(); got != "Home" {
		t.Fatalf("expected Home, got %q", got)
	}
}
