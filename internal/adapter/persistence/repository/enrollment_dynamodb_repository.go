package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEnrollmentsTableName = "enrollments"
	enrollmentsEmailIndex       = "email-index"
	enrollmentsChargeIDIndex    = "charge_id-index"
)

type enrollmentItem struct {
	ID                 string  `dynamodbav:"id"`
	FullName           string  `dynamodbav:"full_name"`
	NameKey            string  `dynamodbav:"name_key"`
	Email              string  `dynamodbav:"email"`
	Phone              string  `dynamodbav:"phone"`
	PhoneDigits        string  `dynamodbav:"phone_digits"`
	PhoneKey           string  `dynamodbav:"phone_key,omitempty"`
	TaxID              string  `dynamodbav:"tax_id"`
	Plate              string  `dynamodbav:"plate,omitempty"`
	License            string  `dynamodbav:"license,omitempty"`
	City               string  `dynamodbav:"city,omitempty"`
	Status             string  `dynamodbav:"status"`
	CourseAccess       string  `dynamodbav:"course_access"`
	PasswordHash       string  `dynamodbav:"password_hash"`
	ChargeID           string  `dynamodbav:"charge_id,omitempty"`
	CustomerID         string  `dynamodbav:"customer_id,omitempty"`
	PaymentAmount      float64 `dynamodbav:"payment_amount,omitempty"`
	BillingType        string  `dynamodbav:"billing_type,omitempty"`
	PaymentConfirmedAt string  `dynamodbav:"payment_confirmed_at,omitempty"`
	ConsentAccepted    bool    `dynamodbav:"consent_accepted"`
	ConsentAt          string  `dynamodbav:"consent_at"`
	CreatedAt          string  `dynamodbav:"created_at"`
}

// EnrollmentDynamoRepository persists Enrollment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//   - GSI: charge_id-index (PK: charge_id)
//
// Uniqueness is enforced with marker items sharing the table: one item with
// id "uniq#<field>#<value>" per unique field, written transactionally with
// the enrollment. Fields are stored in their canonical form (email lowercase,
// tax id digits-only, plate/license uppercase, name key collapsed lowercase)
// so case-insensitive matching reduces to exact equality.

type EnrollmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEnrollmentRepository = (*EnrollmentDynamoRepository)(nil)

func NewEnrollmentDynamoRepository(ddb *dynamodb.Client) *EnrollmentDynamoRepository {
	return &EnrollmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENROLLMENTS_TABLE", defaultEnrollmentsTableName),
	}
}

// uniqueFields maps conflict field names to the canonical value a marker item
// is written for. Empty values get no marker. Phone markers use the
// country-prefix-stripped key so +55 and national forms of one number collide.
func uniqueFields(e entities.Enrollment) map[string]string {
	return map[string]string{
		"email":   e.Email,
		"cpf":     e.TaxID,
		"phone":   phoneKey(e.PhoneDigits),
		"plate":   e.Plate,
		"license": e.License,
		"name":    e.NameKey,
	}
}

// phoneKey normalizes cleaned phone digits to their national form. Brazilian
// numbers carry 10 or 11 national digits; anything longer starting with 55 is
// treated as country-prefixed and stripped.
func phoneKey(digits string) string {
	if len(digits) > 11 && strings.HasPrefix(digits, "55") {
		return digits[2:]
	}
	return digits
}

// Stable marker order so transaction cancellation reasons can be mapped back
// to field names.
var uniqueFieldOrder = []string{"email", "cpf", "phone", "plate", "license", "name"}

func uniqueMarkerID(field, value string) string {
	return fmt.Sprintf("uniq#%s#%s", field, value)
}

func (r *EnrollmentDynamoRepository) Create(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error) {
	av, err := attributevalue.MarshalMap(toEnrollmentItem(e))
	if err != nil {
		return entities.Enrollment{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}

	fields := uniqueFields(e)
	markerFields := make([]string, 0, len(uniqueFieldOrder))
	for _, field := range uniqueFieldOrder {
		value := fields[field]
		if value == "" {
			continue
		}
		markerFields = append(markerFields, field)
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item: map[string]types.AttributeValue{
					"id":       &types.AttributeValueMemberS{Value: uniqueMarkerID(field, value)},
					"owner_id": &types.AttributeValueMemberS{Value: e.ID},
				},
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if collided := collidedFields(tce, markerFields); len(collided) > 0 {
				return entities.Enrollment{}, &interfaces.UniqueConstraintError{Fields: collided}
			}
		}
		return entities.Enrollment{}, err
	}
	return e, nil
}

// collidedFields translates per-item cancellation reasons back into conflict
// field names. Reason index 0 is the enrollment item itself; markers follow
// in markerFields order.
func collidedFields(tce *types.TransactionCanceledException, markerFields []string) []string {
	var collided []string
	for i, reason := range tce.CancellationReasons {
		if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		if i == 0 || i > len(markerFields) {
			continue
		}
		collided = append(collided, markerFields[i-1])
	}
	return collided
}

func (r *EnrollmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Enrollment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Enrollment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Enrollment{}, nil
	}

	var it enrollmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Enrollment{}, err
	}
	return fromEnrollmentItem(it), nil
}

func (r *EnrollmentDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Enrollment, error) {
	return r.queryOne(ctx, enrollmentsEmailIndex, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (r *EnrollmentDynamoRepository) GetByChargeID(ctx context.Context, chargeID string) (entities.Enrollment, error) {
	return r.queryOne(ctx, enrollmentsChargeIDIndex, "charge_id", chargeID)
}

func (r *EnrollmentDynamoRepository) queryOne(ctx context.Context, index, key, value string) (entities.Enrollment, error) {
	if value == "" {
		return entities.Enrollment{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Enrollment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Enrollment{}, nil
	}

	var it enrollmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Enrollment{}, err
	}
	return fromEnrollmentItem(it), nil
}

func (r *EnrollmentDynamoRepository) List(ctx context.Context) ([]entities.Enrollment, error) {
	var items []entities.Enrollment
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName: aws.String(r.tableName),
			// Marker items have no full_name attribute.
			FilterExpression:         aws.String("attribute_exists(#fn)"),
			ExpressionAttributeNames: map[string]string{"#fn": "full_name"},
			ExclusiveStartKey:        startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it enrollmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEnrollmentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

// duplicateScanFilter builds the OR filter matching any probe field. Phone
// matches on stored-contains-submitted plus equality on the normalized
// phone_key, so a stored national number is still found when the registrant
// submits the +55-prefixed form (a Dynamo filter cannot express "submitted
// contains stored"); contains on the key covers rows written before phone_key
// existed. An empty expression means the probe carried no fields.
func duplicateScanFilter(probe interfaces.DuplicateProbe) (string, map[string]string, map[string]types.AttributeValue) {
	var clauses []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	addEq := func(attr, placeholder, value string) {
		if value == "" {
			return
		}
		names["#"+placeholder] = attr
		values[":"+placeholder] = &types.AttributeValueMemberS{Value: value}
		clauses = append(clauses, fmt.Sprintf("#%s = :%s", placeholder, placeholder))
	}

	addEq("email", "email", probe.Email)
	addEq("tax_id", "tax_id", probe.TaxID)
	addEq("plate", "plate", probe.Plate)
	addEq("license", "license", probe.License)
	addEq("name_key", "name_key", probe.NameKey)
	if probe.PhoneDigits != "" {
		names["#phone_digits"] = "phone_digits"
		names["#phone_key"] = "phone_key"
		values[":phone_digits"] = &types.AttributeValueMemberS{Value: probe.PhoneDigits}
		values[":phone_key"] = &types.AttributeValueMemberS{Value: phoneKey(probe.PhoneDigits)}
		clauses = append(clauses,
			"contains(#phone_digits, :phone_digits)",
			"#phone_digits = :phone_digits",
			"#phone_key = :phone_key",
			"contains(#phone_digits, :phone_key)",
		)
	}

	return strings.Join(clauses, " OR "), names, values
}

// FindPotentialDuplicates scans for records colliding with any probe field;
// the usecase re-checks phone containment in both directions on the
// candidates before reporting a conflict.
func (r *EnrollmentDynamoRepository) FindPotentialDuplicates(ctx context.Context, probe interfaces.DuplicateProbe) ([]entities.Enrollment, error) {
	filter, names, values := duplicateScanFilter(probe)
	if filter == "" {
		return nil, nil
	}

	var candidates []entities.Enrollment
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it enrollmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			candidates = append(candidates, fromEnrollmentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return candidates, nil
}

func (r *EnrollmentDynamoRepository) SetChargeLink(ctx context.Context, id, chargeID, customerID string) (entities.Enrollment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #charge_id = :charge_id, #customer_id = :customer_id"
		vals := map[string]types.AttributeValue{
			":charge_id":   &types.AttributeValueMemberS{Value: chargeID},
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		}
		names := map[string]string{
			"#charge_id":   "charge_id",
			"#customer_id": "customer_id",
		}
		return expr, vals, names
	})
}

func (r *EnrollmentDynamoRepository) SetPaymentConfirmed(ctx context.Context, id string, conf interfaces.PaymentConfirmation) (entities.Enrollment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #course_access = :course_access, #charge_id = :charge_id, " +
			"#payment_amount = :payment_amount, #billing_type = :billing_type, #payment_confirmed_at = :payment_confirmed_at"
		vals := map[string]types.AttributeValue{
			":status":               &types.AttributeValueMemberS{Value: string(entities.EnrollmentStatusPaid)},
			":course_access":        &types.AttributeValueMemberS{Value: string(entities.CourseAccessGranted)},
			":charge_id":            &types.AttributeValueMemberS{Value: conf.ChargeID},
			":payment_amount":       &types.AttributeValueMemberN{Value: floatToString(conf.Amount)},
			":billing_type":         &types.AttributeValueMemberS{Value: conf.BillingType},
			":payment_confirmed_at": &types.AttributeValueMemberS{Value: conf.ConfirmedAt.UTC().Format(time.RFC3339Nano)},
		}
		names := map[string]string{
			"#status":               "status",
			"#course_access":        "course_access",
			"#charge_id":            "charge_id",
			"#payment_amount":       "payment_amount",
			"#billing_type":         "billing_type",
			"#payment_confirmed_at": "payment_confirmed_at",
		}
		if conf.CustomerID != "" {
			expr += ", #customer_id = :customer_id"
			vals[":customer_id"] = &types.AttributeValueMemberS{Value: conf.CustomerID}
			names["#customer_id"] = "customer_id"
		}
		return expr, vals, names
	})
}

func (r *EnrollmentDynamoRepository) SetStatus(ctx context.Context, id string, status entities.EnrollmentStatus, access entities.CourseAccess) (entities.Enrollment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #course_access = :course_access"
		vals := map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(status)},
			":course_access": &types.AttributeValueMemberS{Value: string(access)},
		}
		names := map[string]string{
			"#status":        "status",
			"#course_access": "course_access",
		}
		return expr, vals, names
	})
}

func (r *EnrollmentDynamoRepository) SetPasswordHash(ctx context.Context, id, hash string) (entities.Enrollment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #password_hash = :password_hash"
		vals := map[string]types.AttributeValue{
			":password_hash": &types.AttributeValueMemberS{Value: hash},
		}
		names := map[string]string{
			"#password_hash": "password_hash",
		}
		return expr, vals, names
	})
}

func (r *EnrollmentDynamoRepository) Delete(ctx context.Context, id string) error {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.ID == "" {
		return nil
	}

	// Markers go in the same transaction so a freed field is immediately
	// reusable by a new registration.
	writes := []types.TransactWriteItem{{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		},
	}}
	fields := uniqueFields(e)
	for _, field := range uniqueFieldOrder {
		value := fields[field]
		if value == "" {
			continue
		}
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: uniqueMarkerID(field, value)},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	return err
}

func (r *EnrollmentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Enrollment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Enrollment{}, nil
		}
		return entities.Enrollment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Enrollment{}, nil
	}
	var it enrollmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Enrollment{}, err
	}
	return fromEnrollmentItem(it), nil
}

func toEnrollmentItem(e entities.Enrollment) enrollmentItem {
	it := enrollmentItem{
		ID:              e.ID,
		FullName:        e.FullName,
		NameKey:         e.NameKey,
		Email:           e.Email,
		Phone:           e.Phone,
		PhoneDigits:     e.PhoneDigits,
		PhoneKey:        phoneKey(e.PhoneDigits),
		TaxID:           e.TaxID,
		Plate:           e.Plate,
		License:         e.License,
		City:            e.City,
		Status:          string(e.Status),
		CourseAccess:    string(e.CourseAccess),
		PasswordHash:    e.PasswordHash,
		ChargeID:        e.ChargeID,
		CustomerID:      e.CustomerID,
		PaymentAmount:   e.PaymentAmount,
		BillingType:     e.BillingType,
		ConsentAccepted: e.ConsentAccepted,
		ConsentAt:       e.ConsentAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.PaymentConfirmedAt != nil {
		it.PaymentConfirmedAt = e.PaymentConfirmedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromEnrollmentItem(it enrollmentItem) entities.Enrollment {
	consentAt, _ := time.Parse(time.RFC3339Nano, it.ConsentAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	e := entities.Enrollment{
		ID:              it.ID,
		FullName:        it.FullName,
		NameKey:         it.NameKey,
		Email:           it.Email,
		Phone:           it.Phone,
		PhoneDigits:     it.PhoneDigits,
		TaxID:           it.TaxID,
		Plate:           it.Plate,
		License:         it.License,
		City:            it.City,
		Status:          entities.EnrollmentStatus(it.Status),
		CourseAccess:    entities.CourseAccess(it.CourseAccess),
		PasswordHash:    it.PasswordHash,
		ChargeID:        it.ChargeID,
		CustomerID:      it.CustomerID,
		PaymentAmount:   it.PaymentAmount,
		BillingType:     it.BillingType,
		ConsentAccepted: it.ConsentAccepted,
		ConsentAt:       consentAt,
		CreatedAt:       createdAt,
	}
	if it.PaymentConfirmedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaymentConfirmedAt); err == nil {
			e.PaymentConfirmedAt = &t
		}
	}
	return e
}
