package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB limit per TransactWriteItems call.
const maxTransactItems = 100

// CascadeTables names the tables a cascade may touch.
type CascadeTables struct {
	Quotes           string
	Sales            string
	FinancialEntries string
	Payments         string
}

// CascadeDynamoStore writes multi-record cascades with TransactWriteItems.
//
// Derived records are put with attribute_not_exists on their deterministic ids
// and quote status changes are guarded by the quote version, so a cascade that
// lost a race fails as a whole with ErrWriteConflict.
type CascadeDynamoStore struct {
	ddb    DynamoAPI
	tables CascadeTables
}

var _ interfaces.ICascadeStore = (*CascadeDynamoStore)(nil)

func NewCascadeDynamoStore(ddb DynamoAPI, tables CascadeTables) *CascadeDynamoStore {
	return &CascadeDynamoStore{ddb: ddb, tables: tables}
}

func (s *CascadeDynamoStore) CommitApproval(ctx context.Context, c interfaces.ApprovalCommit) error {
	salePut, err := putIfAbsent(s.tables.Sales, toSaleItem(c.Sale))
	if err != nil {
		return err
	}
	entryPut, err := putIfAbsent(s.tables.FinancialEntries, toFinancialEntryItem(c.Entry))
	if err != nil {
		return err
	}
	quoteUpdate := types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(s.tables.Quotes),
			Key:                 idKey(c.QuoteID),
			ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected AND #status <> :status"),
			UpdateExpression:    aws.String("SET #status = :status, #version = :next, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#version":    "version",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status":     stringValue(string(entities.QuoteStatusApproved)),
				":expected":   numberValue(c.ExpectedVersion),
				":next":       numberValue(c.ExpectedVersion + 1),
				":updated_at": stringValue(formatTime(c.ApprovedAt)),
			},
		},
	}
	return s.transact(ctx, "approval", []types.TransactWriteItem{quoteUpdate, salePut, entryPut})
}

func (s *CascadeDynamoStore) CommitRepair(ctx context.Context, sale *entities.Sale, entry *entities.FinancialEntry) error {
	var items []types.TransactWriteItem
	if sale != nil {
		put, err := putIfAbsent(s.tables.Sales, toSaleItem(*sale))
		if err != nil {
			return err
		}
		items = append(items, put)
	}
	if entry != nil {
		put, err := putIfAbsent(s.tables.FinancialEntries, toFinancialEntryItem(*entry))
		if err != nil {
			return err
		}
		items = append(items, put)
	}
	if len(items) == 0 {
		return nil
	}
	return s.transact(ctx, "repair", items)
}

// CommitPayment inserts or confirms the payment and confirms the listed
// entries. Entries already moved off pending make the whole write fail.
func (s *CascadeDynamoStore) CommitPayment(ctx context.Context, c interfaces.PaymentCommit) error {
	av, err := attributevalue.MarshalMap(toPaymentItem(c.Payment))
	if err != nil {
		return err
	}
	put := &types.Put{
		TableName: aws.String(s.tables.Payments),
		Item:      av,
	}
	if c.IsNew {
		put.ConditionExpression = aws.String("attribute_not_exists(#id)")
		put.ExpressionAttributeNames = map[string]string{"#id": "id"}
	} else {
		put.ConditionExpression = aws.String("attribute_exists(#id) AND #status <> :confirmed")
		put.ExpressionAttributeNames = map[string]string{"#id": "id", "#status": "status"}
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":confirmed": stringValue(string(entities.PaymentStatusConfirmed)),
		}
	}

	items := []types.TransactWriteItem{{Put: put}}
	for _, id := range c.EntryIDs {
		items = append(items, s.entryStatusUpdate(id, entities.EntryStatusConfirmed, c.ConfirmedAt))
	}
	return s.transact(ctx, "payment", items)
}

func (s *CascadeDynamoStore) CommitSaleCancellation(ctx context.Context, saleID string, entryIDs []string) error {
	items := []types.TransactWriteItem{{
		Update: &types.Update{
			TableName:           aws.String(s.tables.Sales),
			Key:                 idKey(saleID),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": stringValue(string(entities.SaleStatusCancelled)),
			},
		},
	}}
	for _, id := range entryIDs {
		items = append(items, s.entryStatusUpdate(id, entities.EntryStatusCancelled, time.Time{}))
	}
	return s.transact(ctx, "cancellation", items)
}

func (s *CascadeDynamoStore) CommitInstallments(ctx context.Context, payments []entities.Payment) error {
	items := make([]types.TransactWriteItem, 0, len(payments))
	for _, p := range payments {
		put, err := putIfAbsent(s.tables.Payments, toPaymentItem(p))
		if err != nil {
			return err
		}
		items = append(items, put)
	}
	return s.transact(ctx, "installments", items)
}

// entryStatusUpdate moves a pending entry to status. A non-zero at also
// stamps the entry date.
func (s *CascadeDynamoStore) entryStatusUpdate(id string, status entities.EntryStatus, at time.Time) types.TransactWriteItem {
	expr := "SET #status = :status"
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":status":  stringValue(string(status)),
		":pending": stringValue(string(entities.EntryStatusPending)),
	}
	if !at.IsZero() {
		expr += ", #entry_date = :entry_date"
		names["#entry_date"] = "entry_date"
		values[":entry_date"] = stringValue(formatTime(at))
	}
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(s.tables.FinancialEntries),
			Key:                       idKey(id),
			ConditionExpression:       aws.String("#status = :pending"),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		},
	}
}

func (s *CascadeDynamoStore) transact(ctx context.Context, op string, items []types.TransactWriteItem) error {
	if len(items) > maxTransactItems {
		return fmt.Errorf("%s cascade has %d writes, limit is %d", op, len(items), maxTransactItems)
	}
	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionConflict(err) {
			log.Printf("[cascade][store] %s conflict items=%d err=%v", op, len(items), err)
			return interfaces.ErrWriteConflict
		}
		log.Printf("[cascade][store] %s failed items=%d err=%v", op, len(items), err)
		return err
	}
	return nil
}

func putIfAbsent(table string, item any) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}, nil
}
