package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"contractor_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

const projectIDIndex = "project_id-index"

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

// conditionErr translates a lost conditional write into interfaces.ErrConditionFailed.
func conditionErr(err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConditionFailed
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			if r.Code != nil && *r.Code == "ConditionalCheckFailed" {
				return interfaces.ErrConditionFailed
			}
		}
	}
	return err
}

// claimItem stamps a time-limited claim on an item that is still in the expected state.
// It fails with interfaces.ErrConditionFailed while an unexpired claim exists or the state
// moved on. Claim times are epoch milliseconds so the condition compares numbers.
func claimItem(ctx context.Context, ddb dynamoAPI, table, id, stateAttr, expected, token string, now, until time.Time) error {
	_, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #state = :expected AND (attribute_not_exists(#claim_until) OR #claim_until < :now)"),
		UpdateExpression:    aws.String("SET #claim_token = :token, #claim_until = :until"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#state":       stateAttr,
			"#claim_token": "claim_token",
			"#claim_until": "claim_until",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: expected},
			":now":      &types.AttributeValueMemberN{Value: formatInt(now.UnixMilli())},
			":token":    &types.AttributeValueMemberS{Value: token},
			":until":    &types.AttributeValueMemberN{Value: formatInt(until.UnixMilli())},
		},
	})
	if err != nil {
		return conditionErr(err)
	}
	return nil
}

// releaseClaim drops a claim held under token. A claim that already expired and was
// taken over, or was cleared by a later write, is left alone.
func releaseClaim(ctx context.Context, ddb dynamoAPI, table, id, token string) error {
	_, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#claim_token = :token"),
		UpdateExpression:    aws.String("REMOVE #claim_token, #claim_until"),
		ExpressionAttributeNames: map[string]string{
			"#claim_token": "claim_token",
			"#claim_until": "claim_until",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
	})
	if err != nil {
		if errors.Is(conditionErr(err), interfaces.ErrConditionFailed) {
			return nil
		}
		return err
	}
	return nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// queryAll follows LastEvaluatedKey until the query is exhausted.
func queryAll(ctx context.Context, ddb dynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func scanAll(ctx context.Context, ddb dynamoAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
