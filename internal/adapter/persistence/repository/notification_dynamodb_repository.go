package repository

import (
	"context"

	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const notificationsUserIDIndex = "user_id-index"

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Message   string `dynamodbav:"message"`
	Read      bool   `dynamodbav:"read"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists notifications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type NotificationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoAPI, tableName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toNotificationItem(n)); err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error) {
	items, err := queryAll[notificationItem](ctx, r.ddb, indexQuery(r.tableName, notificationsUserIDIndex, "user_id", userID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Notification, 0, len(items))
	for _, it := range items {
		out = append(out, fromNotificationItem(it))
	}
	return out, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #read = :read"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#read": "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:        it.ID,
		UserID:    it.UserID,
		Message:   it.Message,
		Read:      it.Read,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
