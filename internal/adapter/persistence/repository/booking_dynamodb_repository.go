package repository

import (
	"context"
	"sort"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBookingsTableName = "booking_requests"

type bookingItem struct {
	ID                string `dynamodbav:"id"`
	ProjectID         string `dynamodbav:"project_id"`
	EstimateDepositID string `dynamodbav:"estimate_deposit_id"`
	StartAt           string `dynamodbav:"start_at"`
	EndAt             string `dynamodbav:"end_at"`
	Note              string `dynamodbav:"note,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// BookingDynamoRepository persists BookingRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type BookingDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb dynamoAPI, tableName string) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.BookingRequest{}, err
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
		return entities.BookingRequest{}, conditionErr(err)
	}
	return b, nil
}

// ListByProjectID returns bookings ordered by appointment start.
func (r *BookingDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.BookingRequest, error) {
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

	items := make([]entities.BookingRequest, 0, len(raw))
	for _, item := range raw {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].StartAt.Before(items[j].StartAt) })
	return items, nil
}

func toBookingItem(b entities.BookingRequest) bookingItem {
	return bookingItem{
		ID:                b.ID,
		ProjectID:         b.ProjectID,
		EstimateDepositID: b.EstimateDepositID,
		StartAt:           formatTime(b.StartAt),
		EndAt:             formatTime(b.EndAt),
		Note:              b.Note,
		CreatedAt:         formatTime(b.CreatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.BookingRequest {
	return entities.BookingRequest{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		EstimateDepositID: it.EstimateDepositID,
		StartAt:           parseTime(it.StartAt),
		EndAt:             parseTime(it.EndAt),
		Note:              it.Note,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
