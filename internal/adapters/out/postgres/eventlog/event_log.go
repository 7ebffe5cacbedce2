// Package eventlog persists dispatch events. The log is append-only: every
// accepted send across all pipeline runs leaves one row, which backs the
// dispatch-log query.
package eventlog

import (
	"context"
	"time"

	"salesreport/internal/core/domain/model/report"
	"salesreport/internal/pkg/errs"

	"gorm.io/gorm"
)

// DispatchEventDTO represents one recorded send.
type DispatchEventDTO struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	RecipientName    string    `gorm:"column:recipient_name"`
	RecipientAddress string    `gorm:"column:recipient_address"`
	SentAt           time.Time `gorm:"column:sent_at;index"`
}

// TableName specifies the database table name for dispatch events.
func (DispatchEventDTO) TableName() string {
	return "dispatch_events"
}

// GormDispatchEventLog implements DispatchEventLog using GORM.
type GormDispatchEventLog struct {
	db *gorm.DB
}

// NewGormDispatchEventLog creates a new GORM dispatch event log.
func NewGormDispatchEventLog(db *gorm.DB) *GormDispatchEventLog {
	return &GormDispatchEventLog{db: db}
}

// Append records one dispatch event.
func (l *GormDispatchEventLog) Append(ctx context.Context, event report.DispatchEvent) error {
	dto := DispatchEventDTO{
		RecipientName:    event.RecipientName,
		RecipientAddress: event.RecipientAddress,
		SentAt:           event.SentAt,
	}

	if err := l.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewDataSourceErrorWithCause("append dispatch event", err)
	}

	return nil
}
