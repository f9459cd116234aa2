package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"jobquest/internal/model"
)

// DynamoAPI is the subset of the DynamoDB client the repository uses
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type dynamoAssessmentRepo struct {
	client DynamoAPI
	table  string
}

// NewDynamoAssessmentRepo creates a DynamoDB-backed assessment repository keyed by "id"
func NewDynamoAssessmentRepo(client DynamoAPI, table string) AssessmentRepo {
	return &dynamoAssessmentRepo{client: client, table: table}
}

func (r *dynamoAssessmentRepo) Create(ctx context.Context, a *model.Assessment) (string, error) {
	stamp(a)
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return "", fmt.Errorf("marshal assessment: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return "", fmt.Errorf("put assessment: %w", err)
	}
	return a.ID, nil
}

func (r *dynamoAssessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var a model.Assessment
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, fmt.Errorf("unmarshal assessment: %w", err)
	}
	return &a, nil
}

// List scans the table and orders in memory. The table has no sort key on created_at.
func (r *dynamoAssessmentRepo) List(ctx context.Context, limit int) ([]*model.Assessment, error) {
	var out []*model.Assessment
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan assessments: %w", err)
		}
		var batch []*model.Assessment
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal assessments: %w", err)
		}
		out = append(out, batch...)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if n := ClampLimit(limit); len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Migrate creates the table if it does not exist yet
func (r *dynamoAssessmentRepo) Migrate(ctx context.Context) error {
	_, err := r.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create table %s: %w", r.table, err)
	}
	return nil
}
