package interfaces

import (
	"context"
	"errors"
	"time"
	"winnet_crm/internal/domain/entities"
)

// ErrWriteConflict is returned when a guarded write loses a race: the quote
// version moved, or a derived record already exists.
var ErrWriteConflict = errors.New("write conflict")

// ApprovalCommit is everything the approval cascade writes at once.
type ApprovalCommit struct {
	QuoteID         string
	ExpectedVersion int64
	ApprovedAt      time.Time
	Sale            entities.Sale
	Entry           entities.FinancialEntry
}

// PaymentCommit confirms a payment and the sale's pending inflow entries.
// IsNew selects insert (no existing row) over status update.
type PaymentCommit struct {
	Payment     entities.Payment
	IsNew       bool
	EntryIDs    []string
	ConfirmedAt time.Time
}

// ICascadeStore writes multi-record cascades in a single transaction.
// Either every record is written or none is. CommitRepair skips nil records.
type ICascadeStore interface {
	CommitApproval(ctx context.Context, c ApprovalCommit) error
	CommitRepair(ctx context.Context, sale *entities.Sale, entry *entities.FinancialEntry) error
	CommitPayment(ctx context.Context, c PaymentCommit) error
	CommitSaleCancellation(ctx context.Context, saleID string, entryIDs []string) error
	CommitInstallments(ctx context.Context, payments []entities.Payment) error
}
