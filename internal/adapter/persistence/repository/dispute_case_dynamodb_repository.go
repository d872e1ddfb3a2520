package repository

import (
	"context"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCasesTableName = "dispute_cases"

type disputeOutcomeItem struct {
	OutcomeType              string `dynamodbav:"outcome_type"`
	HeldAmountCents          int64  `dynamodbav:"held_amount_cents"`
	ReleaseToContractorCents int64  `dynamodbav:"release_to_contractor_cents"`
	RefundToCustomerCents    int64  `dynamodbav:"refund_to_customer_cents"`
	DocReference             string `dynamodbav:"doc_reference"`
}

type disputeCaseItem struct {
	ID               string              `dynamodbav:"id"`
	ProjectID        string              `dynamodbav:"project_id"`
	CustomerID       string              `dynamodbav:"customer_id"`
	ContractorID     string              `dynamodbav:"contractor_id"`
	Status           string              `dynamodbav:"status"`
	Reason           string              `dynamodbav:"reason"`
	// Cases written by the back office may carry fractional or negative amounts.
	HeldAmountCents  float64             `dynamodbav:"held_amount_cents"`
	ResolutionDocURL string              `dynamodbav:"resolution_doc_url,omitempty"`
	ResolutionAction string              `dynamodbav:"resolution_action,omitempty"`
	Outcome          *disputeOutcomeItem `dynamodbav:"outcome,omitempty"`
	ResolvedBy       string              `dynamodbav:"resolved_by,omitempty"`
	Version          int64               `dynamodbav:"version"`
	CreatedAt        string              `dynamodbav:"created_at"`
	UpdatedAt        string              `dynamodbav:"updated_at"`
}

// DisputeCaseDynamoRepository persists DisputeCase entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Every update bumps version and is conditioned on the version the caller read.
type DisputeCaseDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDisputeCaseRepository = (*DisputeCaseDynamoRepository)(nil)

func NewDisputeCaseDynamoRepository(ddb dynamoAPI, tableName string) *DisputeCaseDynamoRepository {
	return &DisputeCaseDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCasesTableName),
	}
}

func (r *DisputeCaseDynamoRepository) Create(ctx context.Context, c entities.DisputeCase) (entities.DisputeCase, error) {
	if c.Version == 0 {
		c.Version = 1
	}
	av, err := attributevalue.MarshalMap(toDisputeCaseItem(c))
	if err != nil {
		return entities.DisputeCase{}, err
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
		return entities.DisputeCase{}, conditionErr(err)
	}
	return c, nil
}

func (r *DisputeCaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.DisputeCase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DisputeCase{}, err
	}
	if len(out.Item) == 0 {
		return entities.DisputeCase{}, nil
	}

	var it disputeCaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DisputeCase{}, err
	}
	return fromDisputeCaseItem(it), nil
}

// List scans every case. The admin console works on the full set to build its summary.
func (r *DisputeCaseDynamoRepository) List(ctx context.Context) ([]entities.DisputeCase, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	cases := make([]entities.DisputeCase, 0, len(raw))
	for _, item := range raw {
		var it disputeCaseItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		cases = append(cases, fromDisputeCaseItem(it))
	}
	return cases, nil
}

func (r *DisputeCaseDynamoRepository) Update(ctx context.Context, c entities.DisputeCase, expectedVersion int64) (entities.DisputeCase, error) {
	c.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toDisputeCaseItem(c))
	if err != nil {
		return entities.DisputeCase{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: formatInt(expectedVersion)},
		},
	})
	if err != nil {
		return entities.DisputeCase{}, conditionErr(err)
	}
	return c, nil
}

func toDisputeCaseItem(c entities.DisputeCase) disputeCaseItem {
	it := disputeCaseItem{
		ID:               c.ID,
		ProjectID:        c.ProjectID,
		CustomerID:       c.CustomerID,
		ContractorID:     c.ContractorID,
		Status:           string(c.Status),
		Reason:           c.Reason,
		HeldAmountCents:  float64(c.HeldAmountCents),
		ResolutionDocURL: c.ResolutionDocURL,
		ResolutionAction: string(c.ResolutionAction),
		ResolvedBy:       c.ResolvedBy,
		Version:          c.Version,
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
	if c.Outcome != nil {
		it.Outcome = &disputeOutcomeItem{
			OutcomeType:              string(c.Outcome.OutcomeType),
			HeldAmountCents:          c.Outcome.HeldAmountCents,
			ReleaseToContractorCents: c.Outcome.ReleaseToContractorCents,
			RefundToCustomerCents:    c.Outcome.RefundToCustomerCents,
			DocReference:             c.Outcome.DocReference,
		}
	}
	return it
}

func fromDisputeCaseItem(it disputeCaseItem) entities.DisputeCase {
	c := entities.DisputeCase{
		ID:               it.ID,
		ProjectID:        it.ProjectID,
		CustomerID:       it.CustomerID,
		ContractorID:     it.ContractorID,
		Status:           entities.CaseStatus(it.Status),
		Reason:           it.Reason,
		HeldAmountCents:  escrow.NormalizeHeldAmount(it.HeldAmountCents),
		ResolutionDocURL: it.ResolutionDocURL,
		ResolutionAction: entities.DisputeAction(it.ResolutionAction),
		ResolvedBy:       it.ResolvedBy,
		Version:          it.Version,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
	if it.Outcome != nil {
		c.Outcome = &entities.DisputeOutcome{
			OutcomeType:              entities.OutcomeType(it.Outcome.OutcomeType),
			HeldAmountCents:          it.Outcome.HeldAmountCents,
			ReleaseToContractorCents: it.Outcome.ReleaseToContractorCents,
			RefundToCustomerCents:    it.Outcome.RefundToCustomerCents,
			DocReference:             it.Outcome.DocReference,
		}
	}
	return c
}
