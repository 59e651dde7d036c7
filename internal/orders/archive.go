package orders

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/netyark/storefront-backend/pkg/db/models"
)

// Archive persists every submitted order locally so the storefront can
// show order history even for orders that only exist client-side.
type Archive struct {
	db *gorm.DB
}

// NewArchive builds the archive over the given connection.
func NewArchive(db *gorm.DB) (*Archive, error) {
	if db == nil {
		return nil, fmt.Errorf("archive db required")
	}
	return &Archive{db: db}, nil
}

// Record appends one archived order.
func (a *Archive) Record(ctx context.Context, entry *models.ArchivedOrder) error {
	if err := a.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("record order: %w", err)
	}
	return nil
}

// ListBySession returns the session's orders, newest first.
func (a *Archive) ListBySession(ctx context.Context, sessionID string) ([]models.ArchivedOrder, error) {
	var entries []models.ArchivedOrder
	err := a.db.WithContext(ctx).
		Where("cart_session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list orders by session: %w", err)
	}
	return entries, nil
}

// ListByUser returns an authenticated user's orders, newest first.
func (a *Archive) ListByUser(ctx context.Context, userID string) ([]models.ArchivedOrder, error) {
	var entries []models.ArchivedOrder
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	return entries, nil
}
