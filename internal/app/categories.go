package app

import (
	"context"
	"strings"

	"github.com/ivanoskov/notes_app/internal/auth"
	"github.com/ivanoskov/notes_app/internal/model"
	"github.com/ivanoskov/notes_app/internal/repository"
)

// CategoryManager creates and deletes categories. Categories are
// immutable after creation; deleting one does not touch notes that still
// carry its name.
type CategoryManager struct {
	provider auth.Provider
	repo     repository.Repository
	notifier Notifier
	confirm  Confirmer
}

func NewCategoryManager(provider auth.Provider, repo repository.Repository, notifier Notifier, confirm Confirmer) *CategoryManager {
	return &CategoryManager{
		provider: provider,
		repo:     repo,
		notifier: notifier,
		confirm:  confirm,
	}
}

// Create inserts a category with the trimmed name and the freshly
// resolved owner identity. The caller re-fetches the category list on
// success.
func (m *CategoryManager) Create(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		verr := &ValidationError{Msg: "Category name is required"}
		m.notifier.Error(verr.Msg)
		return verr
	}

	user, err := m.provider.User(ctx)
	if err != nil || user == nil {
		m.notifier.Error("Not signed in")
		if err == nil {
			err = ErrNotSignedIn
		}
		return err
	}

	category := &model.Category{Name: name, UserID: user.ID}
	if err := m.repo.CreateCategory(ctx, category); err != nil {
		m.notifier.Error("Failed to create category: " + err.Error())
		return err
	}
	m.notifier.Success("Category created")
	return nil
}

// Delete asks for confirmation first; a declined confirmation performs
// no remote call. Notes referencing the deleted name are left alone.
func (m *CategoryManager) Delete(ctx context.Context, id string) error {
	if !m.confirm.Confirm("Are you sure you want to delete this category?") {
		return nil
	}

	if err := m.repo.DeleteCategory(ctx, id); err != nil {
		m.notifier.Error("Failed to delete category")
		return err
	}
	m.notifier.Success("Category deleted")
	return nil
}
