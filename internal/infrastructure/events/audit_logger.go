package events

import (
	"context"
	"time"

	"winnet_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AuditEvent is one row of the cascade audit trail.
type AuditEvent struct {
	ID         uint            `gorm:"primaryKey"`
	EventType  string          `gorm:"size:64;index;not null"`
	QuoteID    string          `gorm:"size:64;index"`
	SaleID     string          `gorm:"size:64;index"`
	EntryID    string          `gorm:"size:64"`
	UserID     string          `gorm:"size:64"`
	ClientName string          `gorm:"size:200"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2)"`
	Note       string          `gorm:"type:text"`
	OccurredAt time.Time       `gorm:"index;not null"`
	CreatedAt  time.Time
}

// ConnectAuditDB opens the audit database and migrates its single table.
func ConnectAuditDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&AuditEvent{}); err != nil {
		return nil, err
	}
	return db, nil
}

// AuditLogger appends every domain event to the audit table.
type AuditLogger struct {
	db *gorm.DB
}

func NewAuditLogger(db *gorm.DB) *AuditLogger {
	return &AuditLogger{db: db}
}

func (a *AuditLogger) Name() string { return "audit" }

func (a *AuditLogger) Handle(ctx context.Context, ev entities.DomainEvent) error {
	row := toAuditEvent(ev)
	return a.db.WithContext(ctx).Create(&row).Error
}

func toAuditEvent(ev entities.DomainEvent) AuditEvent {
	return AuditEvent{
		EventType:  string(ev.Type),
		QuoteID:    ev.QuoteID,
		SaleID:     ev.SaleID,
		EntryID:    ev.EntryID,
		UserID:     ev.UserID,
		ClientName: ev.ClientName,
		Amount:     ev.Amount,
		Note:       ev.Note,
		OccurredAt: ev.OccurredAt.UTC(),
	}
}
