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

const (
	defaultQuotesTableName = "quotes"
	// DynamoDB caps a transaction at 100 actions.
	maxTransactItems = 100
)

type quoteItem struct {
	ID           string `dynamodbav:"id"`
	ProjectID    string `dynamodbav:"project_id"`
	ContractorID string `dynamodbav:"contractor_id"`
	PriceCents   int64  `dynamodbav:"price_cents"`
	Message      string `dynamodbav:"message,omitempty"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type QuoteDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb dynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, conditionErr(err)
	}
	return q, nil
}

// ListByProjectID returns the project's quotes, oldest first.
func (r *QuoteDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Quote, error) {
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

	quotes := make([]entities.Quote, 0, len(raw))
	for _, item := range raw {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].CreatedAt.Before(quotes[j].CreatedAt) })
	return quotes, nil
}

// UpdateStatuses writes the status of every quote in transactions of up to 100 items.
func (r *QuoteDynamoRepository) UpdateStatuses(ctx context.Context, quotes []entities.Quote) error {
	now := formatTime(time.Now())
	for start := 0; start < len(quotes); start += maxTransactItems {
		end := start + maxTransactItems
		if end > len(quotes) {
			end = len(quotes)
		}

		items := make([]types.TransactWriteItem, 0, end-start)
		for _, q := range quotes[start:end] {
			items = append(items, types.TransactWriteItem{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: q.ID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":status":     &types.AttributeValueMemberS{Value: string(q.Status)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			})
		}

		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
			return conditionErr(err)
		}
	}
	return nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:           q.ID,
		ProjectID:    q.ProjectID,
		ContractorID: q.ContractorID,
		PriceCents:   q.PriceCents,
		Message:      q.Message,
		Status:       string(q.Status),
		CreatedAt:    formatTime(q.CreatedAt),
		UpdatedAt:    formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:           it.ID,
		ProjectID:    it.ProjectID,
		ContractorID: it.ContractorID,
		PriceCents:   it.PriceCents,
		Message:      it.Message,
		Status:       entities.QuoteStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
