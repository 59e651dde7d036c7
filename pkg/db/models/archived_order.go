package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/netyark/storefront-backend/pkg/enums"
	"github.com/netyark/storefront-backend/pkg/types"
)

// ArchivedOrder records every submitted order locally, whether the
// upstream confirmed it or the storefront synthesized it after a
// submission failure.
type ArchivedOrder struct {
	ID             uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	RemoteID       *string            `gorm:"column:remote_id"`
	CartSessionID  string             `gorm:"column:cart_session_id;not null;index"`
	UserID         *string            `gorm:"column:user_id;index"`
	Outcome        enums.OrderOutcome `gorm:"column:outcome;not null"`
	Status         enums.OrderStatus  `gorm:"column:status;not null"`
	TotalAmount    string             `gorm:"column:total_amount;not null"`
	TrackingNumber *string            `gorm:"column:tracking_number"`
	Payload        types.JSONMap      `gorm:"column:payload;serializer:json"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
}
