package menu

import (
	"context"
	"errors"
)

// ErrMenuNotFound covers both a missing menu and a menu owned by someone
// else. Callers must not be able to tell the two apart.
var ErrMenuNotFound = errors.New("Menu not found or access denied")

// Repository defines all database operations for menus.
type Repository interface {

	// -------------------------------
	// Menus
	// -------------------------------

	CreateMenu(ctx context.Context, m *Menu) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Menu, error)

	// GetOwnedMenu returns ErrMenuNotFound when the menu does not exist
	// OR when ownerID is not its owner.
	GetOwnedMenu(ctx context.Context, menuID, ownerID string) (*Menu, error)

	// -------------------------------
	// Content
	// -------------------------------

	CreateCategory(ctx context.Context, cat *Category) error
	CreateItem(ctx context.Context, item *MenuItem) error

	// ListCategoriesWithItems loads the full content tree, menu order.
	ListCategoriesWithItems(ctx context.Context, menuID string) ([]Category, error)

	// ReplaceContent swaps the whole category/item tree in one
	// transaction. Used by the extraction worker when a digitized menu
	// photo is imported.
	ReplaceContent(ctx context.Context, menuID string, categories []Category) error

	// -------------------------------
	// Translations
	// -------------------------------

	HasLanguage(ctx context.Context, menuID, languageCode string) (bool, error)

	// SaveTranslations inserts the language registration row together
	// with every category and item translation in ONE transaction, so a
	// failure cannot leave a language registered without content.
	SaveTranslations(
		ctx context.Context,
		lang MenuLanguage,
		categories []CategoryTranslation,
		items []ItemTranslation,
	) error
}
