package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Menus
// --------------------------------------------------

func (s *Service) CreateMenu(
	ctx context.Context,
	ownerID, name, defaultLanguage string,
) (*Menu, error) {

	if name == "" {
		return nil, errors.New("menu name is required")
	}

	m := &Menu{
		OwnerID:         ownerID,
		Name:            name,
		DefaultLanguage: defaultLanguage,
	}
	if err := s.repo.CreateMenu(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMyMenus(ctx context.Context, ownerID string) ([]*Menu, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetMenuDetail returns the menu with its full category/item tree.
func (s *Service) GetMenuDetail(
	ctx context.Context,
	menuID, ownerID string,
) (*Menu, []Category, error) {

	m, err := s.repo.GetOwnedMenu(ctx, menuID, ownerID)
	if err != nil {
		return nil, nil, err
	}

	categories, err := s.repo.ListCategoriesWithItems(ctx, menuID)
	if err != nil {
		return nil, nil, err
	}
	return m, categories, nil
}

// --------------------------------------------------
// Content
// --------------------------------------------------

func (s *Service) AddCategory(
	ctx context.Context,
	ownerID string,
	cat *Category,
) error {

	if cat.Name == "" {
		return errors.New("category name is required")
	}

	if _, err := s.repo.GetOwnedMenu(ctx, cat.MenuID, ownerID); err != nil {
		return err
	}
	return s.repo.CreateCategory(ctx, cat)
}

func (s *Service) AddItem(
	ctx context.Context,
	ownerID, menuID string,
	item *MenuItem,
) error {

	if item.Name == "" {
		return errors.New("item name is required")
	}

	if _, err := s.repo.GetOwnedMenu(ctx, menuID, ownerID); err != nil {
		return err
	}
	return s.repo.CreateItem(ctx, item)
}

// ImportParsed installs a digitized category/item tree, replacing whatever
// the menu held before. Called by the extraction worker.
func (s *Service) ImportParsed(
	ctx context.Context,
	menuID string,
	categories []Category,
) error {
	return s.repo.ReplaceContent(ctx, menuID, categories)
}

// --------------------------------------------------
// Photos
// --------------------------------------------------

// UploadPhoto stores a menu photo and returns its public URL, which feeds
// the extraction endpoints.
func (s *Service) UploadPhoto(
	ctx context.Context,
	ownerID, menuID string,
	file multipart.File,
	filename string,
) (string, error) {

	if _, err := s.repo.GetOwnedMenu(ctx, menuID, ownerID); err != nil {
		return "", err
	}

	if err := ValidatePhotoExtension(filename); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("menus/%s/%s%s", menuID, uuid.New().String(), ext)

	return s.storage.Upload(ctx, key, file)
}
