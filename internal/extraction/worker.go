package extraction

import (
	"context"

	"github.com/apex/log"
	"github.com/shopspring/decimal"

	"github.com/SecteurA/CloudMenu3-sub001/internal/menu"
)

// ProcessOne claims the next digitization job and runs it end to end.
// A job failure is recorded on the job row and does not stop the worker.
func (s *Service) ProcessOne(ctx context.Context) error {
	job, err := s.jobs.ClaimPending(ctx)
	if err != nil {
		return err
	}
	if job == nil {
		// No pending jobs.
		return nil
	}

	logger := log.WithFields(log.Fields{
		"job_id":  job.ID,
		"menu_id": job.MenuID,
	})
	logger.Info("processing extraction job")

	doc, err := s.Extract(ctx, job.ImageURL, job.MenuID)
	if err != nil {
		logger.WithError(err).Warn("extraction failed")
		_ = s.jobs.MarkFailed(ctx, job.ID, err.Error())
		return nil
	}

	if err := s.menus.ReplaceContent(ctx, job.MenuID, toMenuCategories(doc)); err != nil {
		logger.WithError(err).Warn("import failed")
		_ = s.jobs.MarkFailed(ctx, job.ID, err.Error())
		return nil
	}

	logger.WithField("categories", len(doc.Categories)).Info("extraction job done")
	return s.jobs.MarkDone(ctx, job.ID)
}

func toMenuCategories(doc *ParsedMenu) []menu.Category {
	categories := make([]menu.Category, 0, len(doc.Categories))

	for _, pc := range doc.Categories {
		cat := menu.Category{
			Name:        pc.Name,
			Description: pc.Description,
			Items:       make([]menu.MenuItem, 0, len(pc.Items)),
		}
		for _, pi := range pc.Items {
			cat.Items = append(cat.Items, menu.MenuItem{
				Name:         pi.Name,
				Description:  pi.Description,
				Price:        decimal.NewFromFloat(pi.Price),
				Allergens:    pi.Allergens,
				IsVegetarian: pi.IsVegetarian,
				IsVegan:      pi.IsVegan,
				IsGlutenFree: pi.IsGlutenFree,
			})
		}
		categories = append(categories, cat)
	}
	return categories
}
