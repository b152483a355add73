package repository

import (
	"context"
	"time"

	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type saleItem struct {
	ID            string `dynamodbav:"id"`
	QuoteID       string `dynamodbav:"quote_id"`
	SaleDate      string `dynamodbav:"sale_date"`
	Total         string `dynamodbav:"total"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Status        string `dynamodbav:"status"`
	CreatedBy     string `dynamodbav:"created_by"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// SaleDynamoRepository reads and updates sales. Sales are only ever created
// through the cascade store.
//
// Table requirements:
//   - PK: id (string), derived from the quote id
type SaleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb DynamoAPI, tableName string) *SaleDynamoRepository {
	return &SaleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	var it saleItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) List(ctx context.Context) ([]entities.Sale, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *SaleDynamoRepository) ListSince(ctx context.Context, since time.Time) ([]entities.Sale, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#sale_date >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#sale_date": "sale_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":since": stringValue(formatTime(since)),
		},
	})
}

func (r *SaleDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SaleStatus) (entities.Sale, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": stringValue(string(status)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Sale{}, nil
		}
		return entities.Sale{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Sale{}, nil
	}
	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Sale, error) {
	items, err := scanAll[saleItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Sale, 0, len(items))
	for _, it := range items {
		out = append(out, fromSaleItem(it))
	}
	return out, nil
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		ID:            s.ID,
		QuoteID:       s.QuoteID,
		SaleDate:      formatTime(s.SaleDate),
		Total:         formatDecimal(s.Total),
		PaymentMethod: s.PaymentMethod,
		Status:        string(s.Status),
		CreatedBy:     s.CreatedBy,
		CreatedAt:     formatTime(s.CreatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	return entities.Sale{
		ID:            it.ID,
		QuoteID:       it.QuoteID,
		SaleDate:      parseTime(it.SaleDate),
		Total:         parseDecimal(it.Total),
		PaymentMethod: it.PaymentMethod,
		Status:        entities.SaleStatus(it.Status),
		CreatedBy:     it.CreatedBy,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
