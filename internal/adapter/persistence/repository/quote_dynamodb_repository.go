package repository

import (
	"context"
	"strconv"
	"time"

	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quotesClientIDIndex = "client_id-index"

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Unit        string `dynamodbav:"unit,omitempty"`
	Code        string `dynamodbav:"code,omitempty"`
	Total       string `dynamodbav:"total"`
}

type quoteItem struct {
	ID              string         `dynamodbav:"id"`
	Number          string         `dynamodbav:"number"`
	ClientID        string         `dynamodbav:"client_id"`
	Status          string         `dynamodbav:"status"`
	Subtotal        string         `dynamodbav:"subtotal"`
	DiscountPercent string         `dynamodbav:"discount_percent"`
	Total           string         `dynamodbav:"total"`
	DueDate         string         `dynamodbav:"due_date,omitempty"`
	LineItems       []lineItemItem `dynamodbav:"line_items"`
	PaymentMethod   string         `dynamodbav:"payment_method,omitempty"`
	Notes           string         `dynamodbav:"notes,omitempty"`
	NextContact     string         `dynamodbav:"next_contact,omitempty"`
	CreatedBy       string         `dynamodbav:"created_by"`
	Version         int64          `dynamodbav:"version"`
	CreatedAt       string         `dynamodbav:"created_at"`
	UpdatedAt       string         `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists quotes in DynamoDB with their line items
// embedded, so a quote and its lines are always written together.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuoteItem(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *QuoteDynamoRepository) ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": stringValue(string(status)),
		},
	})
}

func (r *QuoteDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error) {
	items, err := queryAll[quoteItem](ctx, r.ddb, indexQuery(r.tableName, quotesClientIDIndex, "client_id", clientID))
	if err != nil {
		return nil, err
	}
	return fromQuoteItems(items), nil
}

func (r *QuoteDynamoRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]entities.Quote, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#created_at >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":since": stringValue(formatTime(since)),
		},
	})
}

// UpdateStatus applies only when the stored version still equals
// expectedVersion. A lost race is ErrWriteConflict; a missing id a zero Quote.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, expectedVersion int64) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at, #version = :next"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
			"#version":    "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     stringValue(string(status)),
			":updated_at": stringValue(formatTime(time.Now())),
			":expected":   numberValue(expectedVersion),
			":next":       numberValue(expectedVersion + 1),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.Quote{}, err
		}
		current, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return entities.Quote{}, getErr
		}
		if current.ID == "" {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, interfaces.ErrWriteConflict
	}
	return decodeQuoteAttributes(out.Attributes)
}

// UpdateFollowUp leaves updated_at alone: it marks the last stage change and
// drives days in stage on the board.
func (r *QuoteDynamoRepository) UpdateFollowUp(ctx context.Context, id string, notes string, nextContact time.Time) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #notes = :notes, #next_contact = :next_contact"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#notes":        "notes",
			"#next_contact": "next_contact",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":notes":        stringValue(notes),
			":next_contact": stringValue(formatTime(nextContact)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return decodeQuoteAttributes(out.Attributes)
}

func (r *QuoteDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Quote, error) {
	items, err := scanAll[quoteItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	return fromQuoteItems(items), nil
}

func decodeQuoteAttributes(attrs map[string]types.AttributeValue) (entities.Quote, error) {
	if len(attrs) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func numberValue(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]lineItemItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		lines = append(lines, lineItemItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    formatDecimal(li.Quantity),
			UnitPrice:   formatDecimal(li.UnitPrice),
			Unit:        li.Unit,
			Code:        li.Code,
			Total:       formatDecimal(li.Total),
		})
	}
	return quoteItem{
		ID:              q.ID,
		Number:          q.Number,
		ClientID:        q.ClientID,
		Status:          string(q.Status),
		Subtotal:        formatDecimal(q.Subtotal),
		DiscountPercent: formatDecimal(q.DiscountPercent),
		Total:           formatDecimal(q.Total),
		DueDate:         formatTime(q.DueDate),
		LineItems:       lines,
		PaymentMethod:   q.PaymentMethod,
		Notes:           q.Notes,
		NextContact:     formatOptionalTime(q.NextContact),
		CreatedBy:       q.CreatedBy,
		Version:         q.Version,
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	lines := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lines = append(lines, entities.LineItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    parseDecimal(li.Quantity),
			UnitPrice:   parseDecimal(li.UnitPrice),
			Unit:        li.Unit,
			Code:        li.Code,
			Total:       parseDecimal(li.Total),
		})
	}
	return entities.Quote{
		ID:              it.ID,
		Number:          it.Number,
		ClientID:        it.ClientID,
		Status:          entities.QuoteStatus(it.Status),
		Subtotal:        parseDecimal(it.Subtotal),
		DiscountPercent: parseDecimal(it.DiscountPercent),
		Total:           parseDecimal(it.Total),
		DueDate:         parseTime(it.DueDate),
		LineItems:       lines,
		PaymentMethod:   it.PaymentMethod,
		Notes:           it.Notes,
		NextContact:     parseOptionalTime(it.NextContact),
		CreatedBy:       it.CreatedBy,
		Version:         it.Version,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func fromQuoteItems(items []quoteItem) []entities.Quote {
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	return out
}
