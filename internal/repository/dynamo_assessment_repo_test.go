package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo is an in-memory table keyed by the "id" attribute
type fakeDynamo struct {
	mu      sync.Mutex
	items   map[string]map[string]types.AttributeValue
	tables  map[string]bool
	failPut error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		items:  map[string]map[string]types.AttributeValue{},
		tables: map[string]bool{},
	}
}

func keyOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPut != nil {
		return nil, f.failPut
	}
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &dynamodb.ScanOutput{}
	for _, item := range f.items {
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	if f.tables[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("table exists")}
	}
	f.tables[name] = true
	return &dynamodb.CreateTableOutput{}, nil
}

func TestDynamoRepoRoundTrip(t *testing.T) {
	assertRoundTrip(t, NewDynamoAssessmentRepo(newFakeDynamo(), "Assessments"))
}

func TestDynamoRepoList(t *testing.T) {
	repo := NewDynamoAssessmentRepo(newFakeDynamo(), "Assessments")
	ctx := context.Background()

	first := sampleAssessment()
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)
	second := sampleAssessment()
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].CreatedAt.Before(first.CreatedAt))
}

func TestDynamoRepoPutFailure(t *testing.T) {
	fake := newFakeDynamo()
	fake.failPut = errors.New("connection refused")
	repo := NewDynamoAssessmentRepo(fake, "Assessments")

	_, err := repo.Create(context.Background(), sampleAssessment())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDynamoRepoMigrateIsIdempotent(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoAssessmentRepo(fake, "Assessments")

	m, ok := repo.(Migrator)
	require.True(t, ok)
	require.NoError(t, m.Migrate(context.Background()))
	require.NoError(t, m.Migrate(context.Background()))
	assert.True(t, fake.tables["Assessments"])
}
