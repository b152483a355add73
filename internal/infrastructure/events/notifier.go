package events

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationWriter turns cascade events into user notifications.
type NotificationWriter struct {
	repo interfaces.INotificationRepository
	now  func() time.Time
}

func NewNotificationWriter(repo interfaces.INotificationRepository) *NotificationWriter {
	return &NotificationWriter{repo: repo, now: time.Now}
}

func (w *NotificationWriter) Name() string { return "notifier" }

func (w *NotificationWriter) Handle(ctx context.Context, ev entities.DomainEvent) error {
	msg, ok := Message(ev)
	if !ok {
		return nil
	}
	if strings.TrimSpace(ev.UserID) == "" {
		log.Printf("[events][notifier] no recipient type=%s quote_id=%s", ev.Type, ev.QuoteID)
		return nil
	}
	_, err := w.repo.Create(ctx, entities.Notification{
		ID:        uuid.NewString(),
		UserID:    ev.UserID,
		Message:   msg,
		CreatedAt: w.now().UTC(),
	})
	return err
}

// Message renders the notification text for ev. Events nobody is notified
// about return false.
func Message(ev entities.DomainEvent) (string, bool) {
	switch ev.Type {
	case entities.EventQuoteApproved:
		return fmt.Sprintf("Quote approved, sale %s created automatically", entities.ShortRef(ev.SaleID)), true
	case entities.EventQuoteRejected:
		client := ev.ClientName
		if client == "" {
			client = "unidentified"
		}
		return fmt.Sprintf("Quote rejected! Client: %s", client), true
	case entities.EventSaleCreated:
		return fmt.Sprintf("New pending sale: %s", FormatBRL(ev.Amount)), true
	case entities.EventPaymentConfirmed:
		return fmt.Sprintf("Payment confirmed: %s", FormatBRL(ev.Amount)), true
	case entities.EventFollowUpScheduled:
		return fmt.Sprintf("Follow-up scheduled for %s", ev.Note), true
	}
	return "", false
}

// FormatBRL prints an amount as "R$ 1,234.56".
func FormatBRL(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("R$ %s%s.%s", sign, b.String(), frac)
}
