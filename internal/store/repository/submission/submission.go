package submission

import (
	"context"
	"time"

	"github.com/DDeenis/url-shortener-frontend/internal/store"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrReplayed = errors.New("submission token already consumed")

// Consume marks the token as used. It returns ErrReplayed if the token was
// consumed before.
func (r *Repository) Consume(ctx context.Context, token, form, visitor string) error {
	return r.store.WithRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		submission := &store.Submission{
			Token:      token,
			Form:       form,
			Visitor:    visitor,
			ConsumedAt: time.Now(),
		}

		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(submission)
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(ErrReplayed)
		}

		return nil
	})
}

// Release forgets a consumed token so the same form can be submitted again,
// ie after a validation failure.
func (r *Repository) Release(ctx context.Context, token string) error {
	return r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Delete(&store.Submission{}, "token = ?", token).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
}

// Purge deletes the tokens consumed before the given time and returns the
// number of deleted rows.
func (r *Repository) Purge(ctx context.Context, before time.Time) (int64, error) {
	var deleted int64
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Where("consumed_at < ?", before).Delete(&store.Submission{})
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
