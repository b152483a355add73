package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"winnet_crm/internal/domain/entities"
	mock_interfaces "winnet_crm/internal/usecase/interfaces/mocks"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type recordingSubscriber struct {
	name  string
	mu    sync.Mutex
	seen  []entities.EventType
	err   error
	panic bool
}

func (s *recordingSubscriber) Name() string { return s.name }

func (s *recordingSubscriber) Handle(_ context.Context, ev entities.DomainEvent) error {
	if s.panic {
		panic("boom")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, ev.Type)
	return s.err
}

func (s *recordingSubscriber) events() []entities.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.EventType(nil), s.seen...)
}

func TestBus_DeliversInOrderToEverySubscriber(t *testing.T) {
	failing := &recordingSubscriber{name: "failing", err: errors.New("down")}
	panicking := &recordingSubscriber{name: "panicking", panic: true}
	ok := &recordingSubscriber{name: "ok"}
	bus := NewBus(10, failing, panicking, ok)
	bus.Start(context.Background())

	bus.Publish(entities.DomainEvent{Type: entities.EventQuoteApproved})
	bus.Publish(entities.DomainEvent{Type: entities.EventSaleCreated})
	bus.Close()

	got := ok.events()
	if len(got) != 2 || got[0] != entities.EventQuoteApproved || got[1] != entities.EventSaleCreated {
		t.Fatalf("unexpected delivery: %v", got)
	}
	if len(failing.events()) != 2 {
		t.Fatalf("failing subscriber should still see every event")
	}
}

func TestBus_DropsWhenFull(t *testing.T) {
	sub := &recordingSubscriber{name: "sub"}
	bus := NewBus(1, sub)

	bus.Publish(entities.DomainEvent{Type: entities.EventQuoteApproved})
	bus.Publish(entities.DomainEvent{Type: entities.EventSaleCreated})
	bus.Start(context.Background())
	bus.Close()

	if got := sub.events(); len(got) != 1 || got[0] != entities.EventQuoteApproved {
		t.Fatalf("expected only the first event, got %v", got)
	}

	bus.Publish(entities.DomainEvent{Type: entities.EventSaleConfirmed})
	bus.Close()
}

func TestMessage(t *testing.T) {
	saleID := "00000000-0000-0000-0000-00000000abcd"
	cases := []struct {
		ev   entities.DomainEvent
		want string
	}{
		{entities.DomainEvent{Type: entities.EventQuoteApproved, SaleID: saleID}, "Quote approved, sale " + entities.ShortRef(saleID) + " created automatically"},
		{entities.DomainEvent{Type: entities.EventQuoteRejected, ClientName: "Acme"}, "Quote rejected! Client: Acme"},
		{entities.DomainEvent{Type: entities.EventSaleCreated, Amount: decimal.RequireFromString("1234.5")}, "New pending sale: R$ 1,234.50"},
		{entities.DomainEvent{Type: entities.EventPaymentConfirmed, Amount: decimal.RequireFromString("225")}, "Payment confirmed: R$ 225.00"},
		{entities.DomainEvent{Type: entities.EventFollowUpScheduled, Note: "2026-05-20: call back"}, "Follow-up scheduled for 2026-05-20: call back"},
	}
	for _, tc := range cases {
		got, ok := Message(tc.ev)
		if !ok || got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.ev.Type, tc.want, got)
		}
	}

	if _, ok := Message(entities.DomainEvent{Type: entities.EventCascadeReconciled}); ok {
		t.Fatalf("reconciliation is not a user notification")
	}
}

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":           "R$ 0.00",
		"999.999":     "R$ 1,000.00",
		"1234567.891": "R$ 1,234,567.89",
		"-50":         "R$ -50.00",
	}
	for in, want := range cases {
		if got := FormatBRL(decimal.RequireFromString(in)); got != want {
			t.Fatalf("%s: expected %q, got %q", in, want, got)
		}
	}
}

func TestNotificationWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	w := NewNotificationWriter(repo)
	at := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return at }

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entities.Notification) (entities.Notification, error) {
			if n.UserID != "u-1" || n.Read || n.Message != "Payment confirmed: R$ 10.00" || !n.CreatedAt.Equal(at) {
				t.Fatalf("unexpected notification: %+v", n)
			}
			return n, nil
		},
	)
	ev := entities.DomainEvent{Type: entities.EventPaymentConfirmed, UserID: "u-1", Amount: decimal.NewFromInt(10)}
	if err := w.Handle(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// no recipient, no write
	ev.UserID = ""
	if err := w.Handle(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type fakeRedis struct {
	channel string
	payload []byte
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.payload = message.([]byte)
	return redis.NewIntResult(1, nil)
}

func TestRedisPublisher(t *testing.T) {
	fake := &fakeRedis{}
	p := NewRedisPublisher(fake)

	ev := entities.DomainEvent{Type: entities.EventSaleCreated, SaleID: "s-1", Amount: decimal.RequireFromString("225")}
	if err := p.Handle(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.channel != "winnet:events" {
		t.Fatalf("unexpected channel %q", fake.channel)
	}
	var got entities.DomainEvent
	if err := json.Unmarshal(fake.payload, &got); err != nil {
		t.Fatalf("payload should be json: %v", err)
	}
	if got.Type != ev.Type || got.SaleID != "s-1" || !got.Amount.Equal(ev.Amount) {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	if _, err := NewRedisClient("not-a-url"); err == nil {
		t.Fatalf("expected parse error")
	}
}

// unreachablePool fails the test if gorm ever tries to talk to a database.
type unreachablePool struct{ t *testing.T }

func (p unreachablePool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	p.t.Fatalf("unexpected prepare")
	return nil, errors.New("unreachable")
}

func (p unreachablePool) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	p.t.Fatalf("unexpected exec")
	return nil, errors.New("unreachable")
}

func (p unreachablePool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	p.t.Fatalf("unexpected query")
	return nil, errors.New("unreachable")
}

func (p unreachablePool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	p.t.Fatalf("unexpected query row")
	return nil
}

func TestAuditLogger_BuildsInsert(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: unreachablePool{t: t}}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ev := entities.DomainEvent{
		Type:       entities.EventQuoteApproved,
		QuoteID:    "q-1",
		SaleID:     "s-1",
		Amount:     decimal.RequireFromString("225"),
		OccurredAt: time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC),
	}
	row := toAuditEvent(ev)
	if row.EventType != "quote.approved" || row.QuoteID != "q-1" || !row.Amount.Equal(ev.Amount) {
		t.Fatalf("unexpected row: %+v", row)
	}

	insert := db.ToSQL(func(tx *gorm.DB) *gorm.DB { return tx.Create(&row) })
	if !strings.Contains(insert, `INSERT INTO "audit_events"`) || !strings.Contains(insert, "'quote.approved'") {
		t.Fatalf("unexpected sql: %s", insert)
	}
}
