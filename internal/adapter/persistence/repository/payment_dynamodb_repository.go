package repository

import (
	"context"

	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const paymentsSaleIDIndex = "sale_id-index"

type paymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	SaleID             string                 `dynamodbav:"sale_id"`
	AmountPaid         string                 `dynamodbav:"amount_paid"`
	PaymentDate        string                 `dynamodbav:"payment_date,omitempty"`
	Method             string                 `dynamodbav:"method"`
	InstallmentNum     int                    `dynamodbav:"installment_num"`
	InstallmentTotal   int                    `dynamodbav:"installment_total"`
	Status             string                 `dynamodbav:"status"`
	ProviderPaymentID  string                 `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
	CreatedAt          string                 `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sale_id-index (PK: sale_id)
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p)); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var it paymentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	items, err := scanAll[paymentItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromPaymentItems(items), nil
}

func (r *PaymentDynamoRepository) ListBySaleID(ctx context.Context, saleID string) ([]entities.Payment, error) {
	items, err := queryAll[paymentItem](ctx, r.ddb, indexQuery(r.tableName, paymentsSaleIDIndex, "sale_id", saleID))
	if err != nil {
		return nil, err
	}
	return fromPaymentItems(items), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		SaleID:             p.SaleID,
		AmountPaid:         formatDecimal(p.AmountPaid),
		PaymentDate:        formatTime(p.PaymentDate),
		Method:             p.Method,
		InstallmentNum:     p.InstallmentNum,
		InstallmentTotal:   p.InstallmentTotal,
		Status:             string(p.Status),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		CreatedAt:          formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                it.ID,
		SaleID:            it.SaleID,
		AmountPaid:        parseDecimal(it.AmountPaid),
		PaymentDate:       parseTime(it.PaymentDate),
		Method:            it.Method,
		InstallmentNum:    it.InstallmentNum,
		InstallmentTotal:  it.InstallmentTotal,
		Status:            entities.PaymentStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderPayload:   it.ProviderPayload,
		CreatedAt:         parseTime(it.CreatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}

func fromPaymentItems(items []paymentItem) []entities.Payment {
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentItem(it))
	}
	return out
}
