package link

import (
	"context"

	"github.com/DDeenis/url-shortener-frontend/internal/store"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Add saves a link and keeps only the most recent links of its visitor.
func (r *Repository) Add(ctx context.Context, link *store.ShortLink, keep int) error {
	return r.store.WithRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(link).Error; err != nil {
			return errors.WithStack(err)
		}

		if keep <= 0 {
			return nil
		}

		var stale []uint
		err := db.Model(&store.ShortLink{}).
			Where("visitor = ?", link.Visitor).
			Order("created_at DESC, id DESC").
			Offset(keep).
			Pluck("id", &stale).Error
		if err != nil {
			return errors.WithStack(err)
		}

		if len(stale) == 0 {
			return nil
		}

		if err := db.Unscoped().Delete(&store.ShortLink{}, stale).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

// ListRecent retrieves the most recent links of a visitor
func (r *Repository) ListRecent(ctx context.Context, visitor string, limit int) ([]*store.ShortLink, error) {
	var links []*store.ShortLink
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Where("visitor = ?", visitor).Order("created_at DESC, id DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		if err := query.Find(&links).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Count returns the number of links kept for a visitor
func (r *Repository) Count(ctx context.Context, visitor string) (int64, error) {
	var count int64
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&store.ShortLink{}).Where("visitor = ?", visitor).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
