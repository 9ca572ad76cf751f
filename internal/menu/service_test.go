package menu

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------------------------------------
// Mock repository
// --------------------------------------------------

type mockRepository struct {
	menus      map[string]*Menu
	categories []*Category
	items      []*MenuItem
}

func newMockRepository() *mockRepository {
	return &mockRepository{menus: make(map[string]*Menu)}
}

func (m *mockRepository) CreateMenu(ctx context.Context, me *Menu) error {
	if me.ID == "" {
		me.ID = "menu-1"
	}
	m.menus[me.ID] = me
	return nil
}

func (m *mockRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Menu, error) {
	var out []*Menu
	for _, me := range m.menus {
		if me.OwnerID == ownerID {
			out = append(out, me)
		}
	}
	return out, nil
}

func (m *mockRepository) GetOwnedMenu(ctx context.Context, menuID, ownerID string) (*Menu, error) {
	me, ok := m.menus[menuID]
	if !ok || me.OwnerID != ownerID {
		return nil, ErrMenuNotFound
	}
	return me, nil
}

func (m *mockRepository) CreateCategory(ctx context.Context, cat *Category) error {
	m.categories = append(m.categories, cat)
	return nil
}

func (m *mockRepository) CreateItem(ctx context.Context, item *MenuItem) error {
	m.items = append(m.items, item)
	return nil
}

func (m *mockRepository) ListCategoriesWithItems(ctx context.Context, menuID string) ([]Category, error) {
	return nil, nil
}

func (m *mockRepository) ReplaceContent(ctx context.Context, menuID string, categories []Category) error {
	return nil
}

func (m *mockRepository) HasLanguage(ctx context.Context, menuID, languageCode string) (bool, error) {
	return false, nil
}

func (m *mockRepository) SaveTranslations(
	ctx context.Context,
	lang MenuLanguage,
	categories []CategoryTranslation,
	items []ItemTranslation,
) error {
	return nil
}

// --------------------------------------------------
// Fake storage
// --------------------------------------------------

type fakeStorage struct {
	keys []string
}

func (f *fakeStorage) Upload(ctx context.Context, key string, file multipart.File) (string, error) {
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func seeded() (*mockRepository, *Service, *fakeStorage) {
	repo := newMockRepository()
	repo.menus["m1"] = &Menu{ID: "m1", OwnerID: "owner-1", Name: "Trattoria Roma"}
	storage := &fakeStorage{}
	return repo, NewService(repo, storage), storage
}

func TestCreateMenuRequiresName(t *testing.T) {
	_, svc, _ := seeded()

	_, err := svc.CreateMenu(context.Background(), "owner-1", "", "en")
	require.Error(t, err)

	m, err := svc.CreateMenu(context.Background(), "owner-1", "Pizzeria Bella", "it")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", m.OwnerID)
}

func TestAddCategoryEnforcesOwnership(t *testing.T) {
	repo, svc, _ := seeded()

	err := svc.AddCategory(context.Background(), "intruder", &Category{MenuID: "m1", Name: "Pizzas"})
	assert.ErrorIs(t, err, ErrMenuNotFound)
	assert.Empty(t, repo.categories)

	err = svc.AddCategory(context.Background(), "owner-1", &Category{MenuID: "m1", Name: "Pizzas"})
	require.NoError(t, err)
	require.Len(t, repo.categories, 1)
}

func TestAddItemEnforcesOwnership(t *testing.T) {
	repo, svc, _ := seeded()

	err := svc.AddItem(context.Background(), "intruder", "m1", &MenuItem{CategoryID: "c1", Name: "Margherita"})
	assert.ErrorIs(t, err, ErrMenuNotFound)
	assert.Empty(t, repo.items)
}

func TestUploadPhotoValidatesExtension(t *testing.T) {
	_, svc, storage := seeded()

	_, err := svc.UploadPhoto(context.Background(), "owner-1", "m1", nil, "menu.pdf")
	require.Error(t, err)
	assert.Empty(t, storage.keys)

	url, err := svc.UploadPhoto(context.Background(), "owner-1", "m1", nil, "menu.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/menus/m1/"))
	require.Len(t, storage.keys, 1)
	assert.True(t, strings.HasSuffix(storage.keys[0], ".jpg"))
}

func TestUploadPhotoChecksOwnershipFirst(t *testing.T) {
	_, svc, storage := seeded()

	_, err := svc.UploadPhoto(context.Background(), "intruder", "m1", nil, "menu.jpg")
	assert.ErrorIs(t, err, ErrMenuNotFound)
	assert.Empty(t, storage.keys)
}

func TestValidatePhotoExtension(t *testing.T) {
	assert.NoError(t, ValidatePhotoExtension("a.jpg"))
	assert.NoError(t, ValidatePhotoExtension("a.webp"))
	assert.Error(t, ValidatePhotoExtension("a.pdf"))
	assert.Error(t, ValidatePhotoExtension("noext"))
}
