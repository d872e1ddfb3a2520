package repository

import (
	"context"
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID               string `dynamodbav:"id"`
	CustomerID       string `dynamodbav:"customer_id"`
	ContractorID     string `dynamodbav:"contractor_id,omitempty"`
	Category         string `dynamodbav:"category"`
	Title            string `dynamodbav:"title"`
	Description      string `dynamodbav:"description,omitempty"`
	EscrowState      string `dynamodbav:"escrow_state"`
	HeldAmountCents  *int64 `dynamodbav:"held_amount_cents,omitempty"`
	SelectedQuoteID  string `dynamodbav:"selected_quote_id,omitempty"`
	FundingPaymentID string `dynamodbav:"funding_payment_id,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Updates replace the whole item, conditioned on the escrow_state the caller read.
// Replacing the item also drops any funding claim.
type ProjectDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb dynamoAPI, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, conditionErr(err)
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project, expected entities.EscrowState) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #escrow_state = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#escrow_state": "escrow_state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if err != nil {
		return entities.Project{}, conditionErr(err)
	}
	return p, nil
}

// Claim reserves the project for a funding charge while it is still in expected.
func (r *ProjectDynamoRepository) Claim(ctx context.Context, id string, expected entities.EscrowState, token string, now, until time.Time) error {
	return claimItem(ctx, r.ddb, r.tableName, id, "escrow_state", string(expected), token, now, until)
}

func (r *ProjectDynamoRepository) ReleaseClaim(ctx context.Context, id, token string) error {
	return releaseClaim(ctx, r.ddb, r.tableName, id, token)
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:               p.ID,
		CustomerID:       p.CustomerID,
		ContractorID:     p.ContractorID,
		Category:         p.Category,
		Title:            p.Title,
		Description:      p.Description,
		EscrowState:      string(p.EscrowState),
		HeldAmountCents:  p.HeldAmountCents,
		SelectedQuoteID:  p.SelectedQuoteID,
		FundingPaymentID: p.FundingPaymentID,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		ContractorID:     it.ContractorID,
		Category:         it.Category,
		Title:            it.Title,
		Description:      it.Description,
		EscrowState:      entities.EscrowState(it.EscrowState),
		HeldAmountCents:  it.HeldAmountCents,
		SelectedQuoteID:  it.SelectedQuoteID,
		FundingPaymentID: it.FundingPaymentID,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
