package repository

import (
	"context"
	"errors"
	"testing"

	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var testTables = CascadeTables{Quotes: "quotes", Sales: "sales", FinancialEntries: "entries", Payments: "payments"}

func approvalCommit() interfaces.ApprovalCommit {
	return interfaces.ApprovalCommit{
		QuoteID:         "q-1",
		ExpectedVersion: 3,
		ApprovedAt:      testNow,
		Sale: entities.Sale{
			ID: entities.SaleIDForQuote("q-1"), QuoteID: "q-1", Total: dec("225"),
			Status: entities.SaleStatusPending, SaleDate: testNow, CreatedAt: testNow,
		},
		Entry: entities.FinancialEntry{
			ID: entities.InflowEntryIDForQuote("q-1"), SaleID: entities.SaleIDForQuote("q-1"),
			Type: entities.EntryTypeInflow, Amount: dec("225"), Status: entities.EntryStatusPending, EntryDate: testNow,
		},
	}
}

func TestCascadeStore_CommitApproval(t *testing.T) {
	ddb := newFakeDynamo()
	store := NewCascadeDynamoStore(ddb, testTables)

	if err := store.CommitApproval(context.Background(), approvalCommit()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ddb.transacts) != 1 {
		t.Fatalf("expected one transaction, got %d", len(ddb.transacts))
	}
	items := ddb.transacts[0].TransactItems
	if len(items) != 3 {
		t.Fatalf("expected quote, sale and entry writes, got %d", len(items))
	}

	quote := items[0].Update
	if quote == nil || aws.ToString(quote.TableName) != "quotes" {
		t.Fatalf("first write must update the quote: %+v", items[0])
	}
	if attrN(t, quote.ExpressionAttributeValues[":expected"]) != "3" || attrS(t, quote.ExpressionAttributeValues[":status"]) != "approved" {
		t.Fatalf("unexpected quote guard: %+v", quote.ExpressionAttributeValues)
	}
	for i, table := range []string{"sales", "entries"} {
		put := items[i+1].Put
		if put == nil || aws.ToString(put.TableName) != table || aws.ToString(put.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("write %d must be a guarded put on %s: %+v", i+1, table, items[i+1])
		}
	}
}

func TestCascadeStore_ConflictMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "condition failed",
			err: &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")},
			}},
			want: interfaces.ErrWriteConflict,
		},
		{
			name: "concurrent transaction",
			err:  &types.TransactionConflictException{},
			want: interfaces.ErrWriteConflict,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ddb := newFakeDynamo()
			ddb.transactErr = tc.err
			err := NewCascadeDynamoStore(ddb, testTables).CommitApproval(context.Background(), approvalCommit())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("other failures pass through", func(t *testing.T) {
		ddb := newFakeDynamo()
		boom := errors.New("throttled")
		ddb.transactErr = boom
		err := NewCascadeDynamoStore(ddb, testTables).CommitApproval(context.Background(), approvalCommit())
		if !errors.Is(err, boom) {
			t.Fatalf("expected raw error, got %v", err)
		}
	})
}

func TestCascadeStore_CommitRepair(t *testing.T) {
	ddb := newFakeDynamo()
	store := NewCascadeDynamoStore(ddb, testTables)

	if err := store.CommitRepair(context.Background(), nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ddb.transacts) != 0 {
		t.Fatalf("nothing to repair must not write")
	}

	c := approvalCommit()
	if err := store.CommitRepair(context.Background(), nil, &c.Entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := ddb.transacts[0].TransactItems
	if len(items) != 1 || aws.ToString(items[0].Put.TableName) != "entries" {
		t.Fatalf("expected a single entry put, got %+v", items)
	}
}

func TestCascadeStore_CommitPayment(t *testing.T) {
	ddb := newFakeDynamo()
	store := NewCascadeDynamoStore(ddb, testTables)

	err := store.CommitPayment(context.Background(), interfaces.PaymentCommit{
		Payment:     entities.Payment{ID: "p-2", SaleID: "s-1", AmountPaid: dec("112.50"), Status: entities.PaymentStatusConfirmed},
		IsNew:       false,
		EntryIDs:    []string{"e-1"},
		ConfirmedAt: testNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := ddb.transacts[0].TransactItems
	if len(items) != 2 {
		t.Fatalf("expected payment and entry writes, got %d", len(items))
	}
	if cond := aws.ToString(items[0].Put.ConditionExpression); cond != "attribute_exists(#id) AND #status <> :confirmed" {
		t.Fatalf("existing payment must not be confirmed twice: %s", cond)
	}
	entry := items[1].Update
	if aws.ToString(entry.ConditionExpression) != "#status = :pending" || attrS(t, entry.ExpressionAttributeValues[":status"]) != "confirmed" {
		t.Fatalf("unexpected entry update: %+v", entry)
	}
	if attrS(t, entry.ExpressionAttributeValues[":entry_date"]) != formatTime(testNow) {
		t.Fatalf("confirmation must stamp the entry date")
	}
}

func TestCascadeStore_CommitSaleCancellation(t *testing.T) {
	ddb := newFakeDynamo()
	store := NewCascadeDynamoStore(ddb, testTables)

	if err := store.CommitSaleCancellation(context.Background(), "s-1", []string{"e-1", "e-2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := ddb.transacts[0].TransactItems
	if len(items) != 3 || attrS(t, items[0].Update.ExpressionAttributeValues[":status"]) != "cancelled" {
		t.Fatalf("unexpected cancellation: %+v", items)
	}
	if _, ok := items[1].Update.ExpressionAttributeValues[":entry_date"]; ok {
		t.Fatalf("cancellation must keep the entry date")
	}
}

func TestCascadeStore_CommitInstallmentsLimit(t *testing.T) {
	ddb := newFakeDynamo()
	store := NewCascadeDynamoStore(ddb, testTables)
	payments := make([]entities.Payment, maxTransactItems+1)
	for i := range payments {
		payments[i] = entities.Payment{ID: string(rune('a' + i%26))}
	}

	if err := store.CommitInstallments(context.Background(), payments); err == nil {
		t.Fatalf("expected limit error")
	}
	if len(ddb.transacts) != 0 {
		t.Fatalf("oversized cascade must not be sent")
	}
}
