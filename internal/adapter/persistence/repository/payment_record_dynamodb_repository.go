package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsEmailIndex       = "email-index"
)

type paymentRecordItem struct {
	ChargeID     string `dynamodbav:"charge_id"`
	EnrollmentID string `dynamodbav:"enrollment_id"`
	Email        string `dynamodbav:"email"`
	Amount       string `dynamodbav:"amount"`
	BillingType  string `dynamodbav:"billing_type"`
	Status       string `dynamodbav:"status"`
	DueDate      string `dynamodbav:"due_date,omitempty"`
	InvoiceURL   string `dynamodbav:"invoice_url,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: charge_id (string) — the gateway id, so webhook lookups hit the PK
//   - GSI: email-index (PK: email)

type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#charge_id)"),
		ExpressionAttributeNames: map[string]string{
			"#charge_id": "charge_id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) GetByChargeID(ctx context.Context, chargeID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"charge_id": &types.AttributeValueMemberS{Value: chargeID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentRecordItem(it))
	}
	return items, nil
}

func (r *PaymentRecordDynamoRepository) UpdateStatusByChargeID(ctx context.Context, chargeID string, status entities.PaymentRecordStatus) (entities.PaymentRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"charge_id": &types.AttributeValueMemberS{Value: chargeID},
		},
		ConditionExpression: aws.String("attribute_exists(#charge_id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#charge_id":  "charge_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentRecord{}, nil
		}
		return entities.PaymentRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentRecord{}, nil
	}
	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) DeleteByEmail(ctx context.Context, email string) (int, error) {
	records, err := r.ListByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, rec := range records {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"charge_id": &types.AttributeValueMemberS{Value: rec.ChargeID},
			},
		})
		if err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ChargeID:     p.ChargeID,
		EnrollmentID: p.EnrollmentID,
		Email:        p.Email,
		Amount:       floatToString(p.Amount),
		BillingType:  p.BillingType,
		Status:       string(p.Status),
		DueDate:      p.DueDate,
		InvoiceURL:   p.InvoiceURL,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.PaymentRecord{
		ChargeID:     it.ChargeID,
		EnrollmentID: it.EnrollmentID,
		Email:        it.Email,
		Amount:       amount,
		BillingType:  it.BillingType,
		Status:       entities.PaymentRecordStatus(it.Status),
		DueDate:      it.DueDate,
		InvoiceURL:   it.InvoiceURL,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
