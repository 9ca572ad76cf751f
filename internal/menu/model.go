package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

type Menu struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	DefaultLanguage string    `json:"default_language"`
	CreatedAt       time.Time `json:"created_at"`
}

type Category struct {
	ID          string     `json:"id"`
	MenuID      string     `json:"menu_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Position    int        `json:"position"`
	Items       []MenuItem `json:"items,omitempty"`
}

type MenuItem struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Allergens    []string        `json:"allergens"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsVegan      bool            `json:"is_vegan"`
	IsGlutenFree bool            `json:"is_gluten_free"`
	Position     int             `json:"position"`
}

// MenuLanguage marks a language as available for a menu.
// Uniqueness on (menu_id, language_code) is enforced by the store.
type MenuLanguage struct {
	MenuID          string `json:"menu_id"`
	LanguageCode    string `json:"language_code"`
	IsDefault       bool   `json:"is_default"`
	TranslatedTitle string `json:"translated_title"`
}

type CategoryTranslation struct {
	CategoryID   string `json:"category_id"`
	LanguageCode string `json:"language_code"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

type ItemTranslation struct {
	ItemID       string `json:"item_id"`
	LanguageCode string `json:"language_code"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}
