package repository

import (
	"context"
	"time"

	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const entriesSaleIDIndex = "sale_id-index"

type financialEntryItem struct {
	ID          string `dynamodbav:"id"`
	SaleID      string `dynamodbav:"sale_id,omitempty"`
	Type        string `dynamodbav:"type"`
	Amount      string `dynamodbav:"amount"`
	Description string `dynamodbav:"description,omitempty"`
	Category    string `dynamodbav:"category"`
	Status      string `dynamodbav:"status"`
	EntryDate   string `dynamodbav:"entry_date"`
	CreatedBy   string `dynamodbav:"created_by"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// FinancialEntryDynamoRepository persists ledger lines in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sale_id-index (PK: sale_id); manual outflows carry no sale_id and
//     stay out of the index
type FinancialEntryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFinancialEntryRepository = (*FinancialEntryDynamoRepository)(nil)

func NewFinancialEntryDynamoRepository(ddb DynamoAPI, tableName string) *FinancialEntryDynamoRepository {
	return &FinancialEntryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FinancialEntryDynamoRepository) Create(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toFinancialEntryItem(e)); err != nil {
		return entities.FinancialEntry{}, err
	}
	return e, nil
}

func (r *FinancialEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinancialEntry, error) {
	var it financialEntryItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.FinancialEntry{}, err
	}
	return fromFinancialEntryItem(it), nil
}

func (r *FinancialEntryDynamoRepository) List(ctx context.Context) ([]entities.FinancialEntry, error) {
	items, err := scanAll[financialEntryItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromFinancialEntryItems(items), nil
}

func (r *FinancialEntryDynamoRepository) ListBySaleID(ctx context.Context, saleID string) ([]entities.FinancialEntry, error) {
	items, err := queryAll[financialEntryItem](ctx, r.ddb, indexQuery(r.tableName, entriesSaleIDIndex, "sale_id", saleID))
	if err != nil {
		return nil, err
	}
	return fromFinancialEntryItems(items), nil
}

// ListBetween returns entries dated in [from, to).
func (r *FinancialEntryDynamoRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entities.FinancialEntry, error) {
	items, err := scanAll[financialEntryItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#entry_date >= :from AND #entry_date < :to"),
		ExpressionAttributeNames: map[string]string{
			"#entry_date": "entry_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": stringValue(formatTime(from)),
			":to":   stringValue(formatTime(to)),
		},
	})
	if err != nil {
		return nil, err
	}
	return fromFinancialEntryItems(items), nil
}

func toFinancialEntryItem(e entities.FinancialEntry) financialEntryItem {
	return financialEntryItem{
		ID:          e.ID,
		SaleID:      e.SaleID,
		Type:        string(e.Type),
		Amount:      formatDecimal(e.Amount),
		Description: e.Description,
		Category:    e.Category,
		Status:      string(e.Status),
		EntryDate:   formatTime(e.EntryDate),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func fromFinancialEntryItem(it financialEntryItem) entities.FinancialEntry {
	return entities.FinancialEntry{
		ID:          it.ID,
		SaleID:      it.SaleID,
		Type:        entities.EntryType(it.Type),
		Amount:      parseDecimal(it.Amount),
		Description: it.Description,
		Category:    it.Category,
		Status:      entities.EntryStatus(it.Status),
		EntryDate:   parseTime(it.EntryDate),
		CreatedBy:   it.CreatedBy,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

func fromFinancialEntryItems(items []financialEntryItem) []entities.FinancialEntry {
	out := make([]entities.FinancialEntry, 0, len(items))
	for _, it := range items {
		out = append(out, fromFinancialEntryItem(it))
	}
	return out
}
