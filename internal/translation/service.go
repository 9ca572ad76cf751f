package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apex/log"

	"github.com/SecteurA/CloudMenu3-sub001/internal/llm"
	"github.com/SecteurA/CloudMenu3-sub001/internal/menu"
)

type Service struct {
	client llm.Client
	menus  menu.Repository
}

func NewService(client llm.Client, menus menu.Repository) *Service {
	return &Service{client: client, menus: menus}
}

// Result reports what a translation run produced.
type Result struct {
	AlreadyExists   bool
	MenuTitle       string
	CategoriesCount int
	ItemsCount      int
}

// Translate localizes a menu's full text content into targetLanguage and
// persists it atomically: the language registration row and every
// translated name/description commit in one transaction.
func (s *Service) Translate(
	ctx context.Context,
	ownerID, menuID, targetLanguage, languageName string,
) (*Result, error) {

	if menuID == "" || targetLanguage == "" {
		return nil, errors.New("menuId and targetLanguage are required")
	}
	if languageName == "" {
		languageName = targetLanguage
	}

	m, err := s.menus.GetOwnedMenu(ctx, menuID, ownerID)
	if err != nil {
		return nil, err
	}

	exists, err := s.menus.HasLanguage(ctx, menuID, targetLanguage)
	if err != nil {
		return nil, err
	}
	if exists {
		// Idempotent no-op: nothing else runs, no model call.
		return &Result{AlreadyExists: true}, nil
	}

	title, err := s.translateTitle(ctx, m.Name, languageName)
	if err != nil {
		return nil, err
	}

	categories, err := s.menus.ListCategoriesWithItems(ctx, menuID)
	if err != nil {
		return nil, err
	}

	catTranslations, itemTranslations, err := s.translateContent(ctx, categories, targetLanguage, languageName)
	if err != nil {
		return nil, err
	}

	lang := menu.MenuLanguage{
		MenuID:          menuID,
		LanguageCode:    targetLanguage,
		IsDefault:       false,
		TranslatedTitle: title,
	}

	if err := s.menus.SaveTranslations(ctx, lang, catTranslations, itemTranslations); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"menu_id":    menuID,
		"language":   targetLanguage,
		"categories": len(catTranslations),
		"items":      len(itemTranslations),
	}).Info("menu translated")

	return &Result{
		MenuTitle:       title,
		CategoriesCount: len(catTranslations),
		ItemsCount:      len(itemTranslations),
	}, nil
}

func (s *Service) translateTitle(ctx context.Context, title, languageName string) (string, error) {
	reply, err := s.client.Complete(ctx, llm.BuildTitleTranslationPrompt(title, languageName))
	if err != nil {
		return "", fmt.Errorf("translate title: %w", err)
	}
	return llm.StripQuotes(reply), nil
}

// translateContent batches every category and item into one model call.
func (s *Service) translateContent(
	ctx context.Context,
	categories []menu.Category,
	targetLanguage, languageName string,
) ([]menu.CategoryTranslation, []menu.ItemTranslation, error) {

	var units []llm.TranslationUnit
	for _, cat := range categories {
		units = append(units, llm.TranslationUnit{
			Type:        "category",
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
		})
		for _, item := range cat.Items {
			units = append(units, llm.TranslationUnit{
				Type:        "item",
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
			})
		}
	}

	// A menu with no content still registers the language.
	if len(units) == 0 {
		return nil, nil, nil
	}

	unitsJSON, err := json.Marshal(units)
	if err != nil {
		return nil, nil, err
	}

	reply, err := s.client.Complete(ctx, llm.BuildBatchTranslationPrompt(string(unitsJSON), languageName))
	if err != nil {
		return nil, nil, fmt.Errorf("translate content: %w", err)
	}

	var translated []llm.TranslationUnit
	if err := json.Unmarshal([]byte(llm.ExtractFenced(reply)), &translated); err != nil {
		return nil, nil, fmt.Errorf("could not parse translation output: %w", err)
	}

	var cats []menu.CategoryTranslation
	var items []menu.ItemTranslation

	for _, u := range translated {
		switch u.Type {
		case "category":
			cats = append(cats, menu.CategoryTranslation{
				CategoryID:   u.ID,
				LanguageCode: targetLanguage,
				Name:         u.Name,
				Description:  u.Description,
			})
		case "item":
			items = append(items, menu.ItemTranslation{
				ItemID:       u.ID,
				LanguageCode: targetLanguage,
				Name:         u.Name,
				Description:  u.Description,
			})
		}
	}

	return cats, items, nil
}
