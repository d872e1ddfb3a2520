package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records requests and replays canned responses.
type fakeDynamo struct {
	puts     []*dynamodb.PutItemInput
	updates  []*dynamodb.UpdateItemInput
	queries  []*dynamodb.QueryInput
	transact []*dynamodb.TransactWriteItemsInput

	item       map[string]types.AttributeValue
	pages      [][]map[string]types.AttributeValue
	attributes map[string]types.AttributeValue
	err        error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.item}, f.err
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.attributes}, nil
}

func (f *fakeDynamo) nextPage() ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	if len(f.pages) == 0 {
		return nil, nil
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	var last map[string]types.AttributeValue
	if len(f.pages) > 0 {
		last = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "cursor"}}
	}
	return page, last
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	items, last := f.nextPage()
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: last}, f.err
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	items, last := f.nextPage()
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: last}, f.err
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transact = append(f.transact, in)
	return &dynamodb.TransactWriteItemsOutput{}, f.err
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestProjectDynamoRepository(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	held := int64(120000)
	p := entities.Project{
		ID: "p-1", CustomerID: "c-1", ContractorID: "k-1", Category: "plumbing", Title: "Fix sink",
		EscrowState: entities.EscrowStateFundedHeld, HeldAmountCents: &held, SelectedQuoteID: "q-1",
		CreatedAt: now, UpdatedAt: now,
	}

	t.Run("update is conditioned on the expected state", func(t *testing.T) {
		f := &fakeDynamo{}
		repo := NewProjectDynamoRepository(f, "")
		if _, err := repo.Update(context.Background(), p, entities.EscrowStateAgreementAccepted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := f.puts[0]
		if aws.ToString(in.TableName) != defaultProjectsTableName {
			t.Fatalf("unexpected table: %s", aws.ToString(in.TableName))
		}
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #escrow_state = :expected" {
			t.Fatalf("unexpected condition: %s", aws.ToString(in.ConditionExpression))
		}
		if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS).Value; v != "AGREEMENT_ACCEPTED" {
			t.Fatalf("unexpected expected state: %s", v)
		}
	})

	t.Run("lost race maps to condition failed", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{Message: aws.String("nope")}}
		repo := NewProjectDynamoRepository(f, "projects-test")
		_, err := repo.Update(context.Background(), p, entities.EscrowStateAgreementAccepted)
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})

	t.Run("round trip keeps held amount", func(t *testing.T) {
		f := &fakeDynamo{item: mustMarshal(t, toProjectItem(p))}
		got, err := NewProjectDynamoRepository(f, "").GetByID(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Held() != 120000 || got.EscrowState != entities.EscrowStateFundedHeld || !got.CreatedAt.Equal(now) {
			t.Fatalf("unexpected project: %+v", got)
		}
	})

	t.Run("draft has no held amount", func(t *testing.T) {
		draft := p
		draft.HeldAmountCents = nil
		item := mustMarshal(t, toProjectItem(draft))
		if _, ok := item["held_amount_cents"]; ok {
			t.Fatalf("held_amount_cents must be omitted before funding")
		}
	})

	t.Run("missing item is a zero project", func(t *testing.T) {
		got, err := NewProjectDynamoRepository(&fakeDynamo{}, "").GetByID(context.Background(), "p-9")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero project, got %+v err=%v", got, err)
		}
	})
}

func TestQuoteDynamoRepository(t *testing.T) {
	t.Run("list follows pagination", func(t *testing.T) {
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
		f := &fakeDynamo{pages: [][]map[string]types.AttributeValue{
			{mustMarshal(t, toQuoteItem(entities.Quote{ID: "q-2", ProjectID: "p-1", CreatedAt: base.Add(time.Minute)}))},
			{mustMarshal(t, toQuoteItem(entities.Quote{ID: "q-1", ProjectID: "p-1", CreatedAt: base}))},
		}}
		quotes, err := NewQuoteDynamoRepository(f, "").ListByProjectID(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 2 || quotes[0].ID != "q-1" {
			t.Fatalf("unexpected quotes: %+v", quotes)
		}
		if len(f.queries) != 2 || f.queries[1].ExclusiveStartKey == nil {
			t.Fatalf("expected a second paginated query")
		}
		if aws.ToString(f.queries[0].IndexName) != projectIDIndex {
			t.Fatalf("expected project index")
		}
	})

	t.Run("status updates are chunked into transactions", func(t *testing.T) {
		f := &fakeDynamo{}
		quotes := make([]entities.Quote, 150)
		for i := range quotes {
			quotes[i] = entities.Quote{ID: formatInt(int64(i)), Status: entities.QuoteStatusRejected}
		}
		if err := NewQuoteDynamoRepository(f, "").UpdateStatuses(context.Background(), quotes); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.transact) != 2 || len(f.transact[0].TransactItems) != 100 || len(f.transact[1].TransactItems) != 50 {
			t.Fatalf("unexpected transactions: %d", len(f.transact))
		}
	})
}

func TestEstimateDepositDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("conditioned on expected status and writes payment id", func(t *testing.T) {
		f := &fakeDynamo{attributes: mustMarshal(t, toEstimateDepositItem(entities.EstimateDeposit{ID: "d-1", Status: entities.DepositStatusCaptured, PaymentID: "pay-1"}))}
		got, err := NewEstimateDepositDynamoRepository(f, "").UpdateStatus(context.Background(), "d-1", entities.DepositStatusCreated, entities.DepositStatusCaptured, "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.DepositStatusCaptured || got.PaymentID != "pay-1" {
			t.Fatalf("unexpected deposit: %+v", got)
		}
		in := f.updates[0]
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #status = :expected" {
			t.Fatalf("unexpected condition: %s", aws.ToString(in.ConditionExpression))
		}
		if aws.ToString(in.UpdateExpression) != "SET #status = :status, #updated_at = :updated_at, #payment_id = :payment_id" {
			t.Fatalf("unexpected update: %s", aws.ToString(in.UpdateExpression))
		}
	})

	t.Run("double capture loses the condition", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		_, err := NewEstimateDepositDynamoRepository(f, "").UpdateStatus(context.Background(), "d-1", entities.DepositStatusCreated, entities.DepositStatusCaptured, "pay-2")
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})
}

func TestDisputeCaseDynamoRepository(t *testing.T) {
	t.Run("update bumps version under condition", func(t *testing.T) {
		f := &fakeDynamo{}
		c := entities.DisputeCase{ID: "case-1", Status: entities.CaseStatusResolutionSubmitted, Version: 3,
			Outcome: &entities.DisputeOutcome{OutcomeType: entities.OutcomeReleasePartial, HeldAmountCents: 10, ReleaseToContractorCents: 5, RefundToCustomerCents: 5}}
		got, err := NewDisputeCaseDynamoRepository(f, "").Update(context.Background(), c, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 4 {
			t.Fatalf("expected version 4, got %d", got.Version)
		}
		if v := f.puts[0].ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "3" {
			t.Fatalf("unexpected expected version: %s", v)
		}
	})

	t.Run("outcome survives a round trip", func(t *testing.T) {
		c := entities.DisputeCase{ID: "case-1", Version: 2, ResolutionAction: entities.DisputeActionSplit,
			Outcome: &entities.DisputeOutcome{OutcomeType: entities.OutcomeReleasePartial, HeldAmountCents: 11, ReleaseToContractorCents: 5, RefundToCustomerCents: 6, DocReference: "doc"}}
		f := &fakeDynamo{pages: [][]map[string]types.AttributeValue{{mustMarshal(t, toDisputeCaseItem(c))}}}
		cases, err := NewDisputeCaseDynamoRepository(f, "").List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 1 || cases[0].Outcome == nil || *cases[0].Outcome != *c.Outcome {
			t.Fatalf("unexpected cases: %+v", cases)
		}
	})

	t.Run("cancelled transaction maps to condition failed", func(t *testing.T) {
		err := conditionErr(&types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}}})
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})
}

func TestClaim(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("project claim is conditioned on state and an expired lease", func(t *testing.T) {
		f := &fakeDynamo{}
		err := NewProjectDynamoRepository(f, "").Claim(context.Background(), "p-1", entities.EscrowStateAgreementAccepted, "tok-1", now, now.Add(2*time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := f.updates[0]
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #state = :expected AND (attribute_not_exists(#claim_until) OR #claim_until < :now)" {
			t.Fatalf("unexpected condition: %s", aws.ToString(in.ConditionExpression))
		}
		if in.ExpressionAttributeNames["#state"] != "escrow_state" {
			t.Fatalf("unexpected state attribute: %s", in.ExpressionAttributeNames["#state"])
		}
		if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS).Value; v != string(entities.EscrowStateAgreementAccepted) {
			t.Fatalf("unexpected expected state: %s", v)
		}
		if v := in.ExpressionAttributeValues[":until"].(*types.AttributeValueMemberN).Value; v != formatInt(now.Add(2*time.Minute).UnixMilli()) {
			t.Fatalf("unexpected lease: %s", v)
		}
	})

	t.Run("held deposit claim maps to condition failed", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		err := NewEstimateDepositDynamoRepository(f, "").Claim(context.Background(), "d-1", entities.DepositStatusCreated, "tok-2", now, now.Add(time.Minute))
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
		if f.updates[0].ExpressionAttributeNames["#state"] != "status" {
			t.Fatalf("unexpected state attribute: %s", f.updates[0].ExpressionAttributeNames["#state"])
		}
	})

	t.Run("release ignores a claim taken over by someone else", func(t *testing.T) {
		f := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		if err := NewEstimateDepositDynamoRepository(f, "").ReleaseClaim(context.Background(), "d-1", "tok-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(f.updates[0].UpdateExpression) != "REMOVE #claim_token, #claim_until" {
			t.Fatalf("unexpected update: %s", aws.ToString(f.updates[0].UpdateExpression))
		}
	})

	t.Run("release surfaces other failures", func(t *testing.T) {
		f := &fakeDynamo{err: errors.New("throttled")}
		if err := NewProjectDynamoRepository(f, "").ReleaseClaim(context.Background(), "p-1", "tok-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestDisputeCaseDynamoRepository_HeldAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"1234.7", 1234},
		{"-5", 0},
		{"120000", 120000},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			f := &fakeDynamo{item: map[string]types.AttributeValue{
				"id":                &types.AttributeValueMemberS{Value: "case-1"},
				"project_id":        &types.AttributeValueMemberS{Value: "p-1"},
				"held_amount_cents": &types.AttributeValueMemberN{Value: tc.raw},
				"version":           &types.AttributeValueMemberN{Value: "1"},
			}}
			got, err := NewDisputeCaseDynamoRepository(f, "").GetByID(context.Background(), "case-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.HeldAmountCents != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got.HeldAmountCents)
			}
		})
	}
}
