package repository

import (
	"context"
	"sort"
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDepositsTableName = "estimate_deposits"

type estimateDepositItem struct {
	ID           string `dynamodbav:"id"`
	ProjectID    string `dynamodbav:"project_id"`
	CustomerID   string `dynamodbav:"customer_id"`
	ContractorID string `dynamodbav:"contractor_id"`
	AmountCents  int64  `dynamodbav:"amount_cents"`
	Status       string `dynamodbav:"status"`
	PaymentID    string `dynamodbav:"payment_id,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// EstimateDepositDynamoRepository persists EstimateDeposit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type EstimateDepositDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEstimateDepositRepository = (*EstimateDepositDynamoRepository)(nil)

func NewEstimateDepositDynamoRepository(ddb dynamoAPI, tableName string) *EstimateDepositDynamoRepository {
	return &EstimateDepositDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultDepositsTableName),
	}
}

func (r *EstimateDepositDynamoRepository) Create(ctx context.Context, d entities.EstimateDeposit) (entities.EstimateDeposit, error) {
	av, err := attributevalue.MarshalMap(toEstimateDepositItem(d))
	if err != nil {
		return entities.EstimateDeposit{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EstimateDeposit{}, conditionErr(err)
	}
	return d, nil
}

func (r *EstimateDepositDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateDeposit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateDeposit{}, nil
	}

	var it estimateDepositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateDeposit{}, err
	}
	return fromEstimateDepositItem(it), nil
}

func (r *EstimateDepositDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.EstimateDeposit, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	deposits := make([]entities.EstimateDeposit, 0, len(raw))
	for _, item := range raw {
		var it estimateDepositItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		deposits = append(deposits, fromEstimateDepositItem(it))
	}
	sort.SliceStable(deposits, func(i, j int) bool { return deposits[i].CreatedAt.Before(deposits[j].CreatedAt) })
	return deposits, nil
}

// UpdateStatus moves a deposit from expected to next. paymentID is only written when set.
func (r *EstimateDepositDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.DepositStatus, paymentID string) (entities.EstimateDeposit, error) {
	return r.update(ctx, id, expected, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(next)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if paymentID != "" {
			expr += ", #payment_id = :payment_id"
			vals[":payment_id"] = &types.AttributeValueMemberS{Value: paymentID}
			names["#payment_id"] = "payment_id"
		}
		return expr, vals, names
	})
}

func (r *EstimateDepositDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.DepositStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.EstimateDeposit, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)
	values[":expected"] = &types.AttributeValueMemberS{Value: string(expected)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.EstimateDeposit{}, conditionErr(err)
	}
	if len(out.Attributes) == 0 {
		return entities.EstimateDeposit{}, nil
	}
	var it estimateDepositItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EstimateDeposit{}, err
	}
	return fromEstimateDepositItem(it), nil
}

// Claim reserves the deposit for a capture charge while it is still in expected.
func (r *EstimateDepositDynamoRepository) Claim(ctx context.Context, id string, expected entities.DepositStatus, token string, now, until time.Time) error {
	return claimItem(ctx, r.ddb, r.tableName, id, "status", string(expected), token, now, until)
}

func (r *EstimateDepositDynamoRepository) ReleaseClaim(ctx context.Context, id, token string) error {
	return releaseClaim(ctx, r.ddb, r.tableName, id, token)
}

func toEstimateDepositItem(d entities.EstimateDeposit) estimateDepositItem {
	return estimateDepositItem{
		ID:           d.ID,
		ProjectID:    d.ProjectID,
		CustomerID:   d.CustomerID,
		ContractorID: d.ContractorID,
		AmountCents:  d.AmountCents,
		Status:       string(d.Status),
		PaymentID:    d.PaymentID,
		CreatedAt:    formatTime(d.CreatedAt),
		UpdatedAt:    formatTime(d.UpdatedAt),
	}
}

func fromEstimateDepositItem(it estimateDepositItem) entities.EstimateDeposit {
	return entities.EstimateDeposit{
		ID:           it.ID,
		ProjectID:    it.ProjectID,
		CustomerID:   it.CustomerID,
		ContractorID: it.ContractorID,
		AmountCents:  it.AmountCents,
		Status:       entities.DepositStatus(it.Status),
		PaymentID:    it.PaymentID,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
