package extraction

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/apex/log"

	"github.com/SecteurA/CloudMenu3-sub001/internal/llm"
	"github.com/SecteurA/CloudMenu3-sub001/internal/menu"
)

type Service struct {
	client llm.Client
	retry  llm.RetryPolicy
	menus  menu.Repository
	jobs   *Repository
}

func NewService(client llm.Client, menus menu.Repository, jobs *Repository) *Service {
	return &Service{
		client: client,
		retry:  llm.DefaultRetry,
		menus:  menus,
		jobs:   jobs,
	}
}

// Extract digitizes the menu photo at imageURL into a category/item
// document. Pure pipeline: nothing is persisted.
func (s *Service) Extract(ctx context.Context, imageURL, menuID string) (*ParsedMenu, error) {
	if imageURL == "" || menuID == "" {
		return nil, ErrMissingInput
	}

	data, mediaType, err := fetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(data)

	log.WithFields(log.Fields{
		"menu_id":    menuID,
		"bytes":      len(data),
		"media_type": mediaType,
	}).Info("submitting menu photo for extraction")

	reply, err := s.retry.Do(ctx, func(ctx context.Context) (string, error) {
		return s.client.CompleteVision(ctx, llm.BuildMenuExtractionPrompt(), mediaType, encoded)
	})
	if err != nil {
		return nil, err
	}

	jsonText := llm.ExtractJSONObject(reply)
	if jsonText == "" {
		return nil, &ParseError{Raw: reply, Err: errNoJSONObject}
	}

	doc := &ParsedMenu{}
	if err := json.Unmarshal([]byte(jsonText), doc); err != nil {
		return nil, &ParseError{Raw: reply, Err: err}
	}

	if err := doc.Validate(); err != nil {
		return nil, &ParseError{Raw: reply, Err: err}
	}

	log.WithFields(log.Fields{
		"menu_id":    menuID,
		"categories": len(doc.Categories),
	}).Info("menu extracted")

	return doc, nil
}

// Enqueue registers a digitization job for the worker after verifying the
// caller owns the menu.
func (s *Service) Enqueue(ctx context.Context, ownerID, menuID, imageURL string) (int, error) {
	if imageURL == "" || menuID == "" {
		return 0, ErrMissingInput
	}

	if _, err := s.menus.GetOwnedMenu(ctx, menuID, ownerID); err != nil {
		return 0, err
	}

	return s.jobs.Enqueue(ctx, menuID, imageURL)
}
