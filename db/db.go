package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caltim3/Beboptionary/constants"
	"github.com/caltim3/Beboptionary/model"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

var ErrLickNotFound = errors.New("lick not found")

type lickItem struct {
	PK          string             `dynamodbav:"PK"`
	Progression string             `dynamodbav:"Progression"`
	Weights     model.StyleWeights `dynamodbav:"Weights"`
	Tempo       int                `dynamodbav:"Tempo"`
	Seed        int64              `dynamodbav:"Seed"`
	Score       string             `dynamodbav:"Score"`
	TotalBeats  float64            `dynamodbav:"TotalBeats"`
	Notes       []model.NoteResult `dynamodbav:"Notes"`
	CreatedAt   string             `dynamodbav:"CreatedAt"`
}

// Archive keeps generated licks in a DynamoDB table keyed by lick id.
type Archive struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

// NewArchive connects to the table named by LICK_TABLE at DYNAMODB_ENDPOINT.
func NewArchive() (*Archive, error) {
	endpoint := constants.GetDynamoEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetRegion()),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewArchiveWithClient(dynamodb.New(session), constants.GetLickTable()), nil
}

func NewArchiveWithClient(client dynamodbiface.DynamoDBAPI, table string) *Archive {
	return &Archive{client: client, table: table}
}

// SaveLick stores res and returns its id, minting one when res has none.
func (a *Archive) SaveLick(ctx context.Context, res model.GenerateResponse) (string, error) {
	if res.Id == "" {
		res.Id = uuid.NewString()
	}
	item, err := dynamodbattribute.MarshalMap(lickItem{
		PK:          res.Id,
		Progression: res.Progression,
		Weights:     res.Weights,
		Tempo:       res.Tempo,
		Seed:        res.Seed,
		Score:       res.Score,
		TotalBeats:  res.TotalBeats,
		Notes:       res.Notes,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal lick %v: %w", res.Id, err)
	}

	_, err = a.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(a.table),
		Item:      item,
	})
	if err != nil {
		return "", fmt.Errorf("error from DynamoDB: %w", err)
	}
	return res.Id, nil
}

func (a *Archive) GetLick(ctx context.Context, id string) (model.GenerateResponse, error) {
	var res model.GenerateResponse
	out, err := a.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(a.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return res, fmt.Errorf("error from DynamoDB: %w", err)
	}
	if len(out.Item) == 0 {
		return res, fmt.Errorf("%w: %v", ErrLickNotFound, id)
	}

	var item lickItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return res, fmt.Errorf("could not unmarshal lick %v: %w", id, err)
	}
	return model.GenerateResponse{
		Id:          item.PK,
		Progression: item.Progression,
		Weights:     item.Weights,
		Tempo:       item.Tempo,
		Seed:        item.Seed,
		Score:       item.Score,
		TotalBeats:  item.TotalBeats,
		Notes:       item.Notes,
	}, nil
}
