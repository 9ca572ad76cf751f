package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// MENUS
// --------------------------------------------------

func (r *PostgresRepository) CreateMenu(ctx context.Context, m *Menu) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.DefaultLanguage == "" {
		m.DefaultLanguage = "en"
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO menus (id, owner_id, name, default_language)
		VALUES ($1, $2, $3, $4)
	`, m.ID, m.OwnerID, m.Name, m.DefaultLanguage)
	return err
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Menu, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, default_language, created_at
		FROM menus
		WHERE owner_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*Menu
	for rows.Next() {
		m := &Menu{}
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Name, &m.DefaultLanguage, &m.CreatedAt); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

func (r *PostgresRepository) GetOwnedMenu(ctx context.Context, menuID, ownerID string) (*Menu, error) {
	m := &Menu{}
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, default_language, created_at
		FROM menus
		WHERE id = $1 AND owner_id = $2
	`, menuID, ownerID).Scan(&m.ID, &m.OwnerID, &m.Name, &m.DefaultLanguage, &m.CreatedAt)

	if err != nil {
		// Missing and not-owned collapse into the same answer.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return m, nil
}

// --------------------------------------------------
// CONTENT
// --------------------------------------------------

func (r *PostgresRepository) CreateCategory(ctx context.Context, cat *Category) error {
	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, menu_id, name, description, position)
		VALUES ($1, $2, $3, $4, $5)
	`, cat.ID, cat.MenuID, cat.Name, cat.Description, cat.Position)
	return err
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Allergens == nil {
		item.Allergens = []string{}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (
			id, category_id, name, description, price,
			allergens, is_vegetarian, is_vegan, is_gluten_free, position
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, item.ID, item.CategoryID, item.Name, item.Description, item.Price,
		item.Allergens, item.IsVegetarian, item.IsVegan, item.IsGlutenFree, item.Position)
	return err
}

func (r *PostgresRepository) ListCategoriesWithItems(ctx context.Context, menuID string) ([]Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, menu_id, name, description, position
		FROM categories
		WHERE menu_id = $1
		ORDER BY position, created_at
	`, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	index := make(map[string]int)

	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.MenuID, &cat.Name, &cat.Description, &cat.Position); err != nil {
			return nil, err
		}
		cat.Items = []MenuItem{}
		index[cat.ID] = len(categories)
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return categories, nil
	}

	itemRows, err := r.db.Query(ctx, `
		SELECT i.id, i.category_id, i.name, i.description, i.price,
		       i.allergens, i.is_vegetarian, i.is_vegan, i.is_gluten_free, i.position
		FROM menu_items i
		JOIN categories c ON c.id = i.category_id
		WHERE c.menu_id = $1
		ORDER BY i.position, i.created_at
	`, menuID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item MenuItem
		if err := itemRows.Scan(
			&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.Price,
			&item.Allergens, &item.IsVegetarian, &item.IsVegan, &item.IsGlutenFree, &item.Position,
		); err != nil {
			return nil, err
		}
		if i, ok := index[item.CategoryID]; ok {
			categories[i].Items = append(categories[i].Items, item)
		}
	}
	return categories, itemRows.Err()
}

func (r *PostgresRepository) ReplaceContent(ctx context.Context, menuID string, categories []Category) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Cascades to menu_items and translations.
	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE menu_id = $1`, menuID); err != nil {
		return err
	}

	for ci, cat := range categories {
		catID := uuid.New().String()

		if _, err := tx.Exec(ctx, `
			INSERT INTO categories (id, menu_id, name, description, position)
			VALUES ($1, $2, $3, $4, $5)
		`, catID, menuID, cat.Name, cat.Description, ci); err != nil {
			return err
		}

		for ii, item := range cat.Items {
			allergens := item.Allergens
			if allergens == nil {
				allergens = []string{}
			}

			if _, err := tx.Exec(ctx, `
				INSERT INTO menu_items (
					id, category_id, name, description, price,
					allergens, is_vegetarian, is_vegan, is_gluten_free, position
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			`, uuid.New().String(), catID, item.Name, item.Description, item.Price,
				allergens, item.IsVegetarian, item.IsVegan, item.IsGlutenFree, ii); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// TRANSLATIONS
// --------------------------------------------------

func (r *PostgresRepository) HasLanguage(ctx context.Context, menuID, languageCode string) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `
		SELECT 1 FROM menu_languages
		WHERE menu_id = $1 AND language_code = $2
	`, menuID, languageCode).Scan(&one)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) SaveTranslations(
	ctx context.Context,
	lang MenuLanguage,
	categories []CategoryTranslation,
	items []ItemTranslation,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO menu_languages (menu_id, language_code, is_default, translated_title)
		VALUES ($1, $2, $3, $4)
	`, lang.MenuID, lang.LanguageCode, lang.IsDefault, lang.TranslatedTitle); err != nil {
		return err
	}

	for _, ct := range categories {
		if _, err := tx.Exec(ctx, `
			INSERT INTO category_translations (category_id, language_code, name, description)
			VALUES ($1, $2, $3, $4)
		`, ct.CategoryID, ct.LanguageCode, ct.Name, ct.Description); err != nil {
			return err
		}
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO item_translations (item_id, language_code, name, description)
			VALUES ($1, $2, $3, $4)
		`, it.ItemID, it.LanguageCode, it.Name, it.Description); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
