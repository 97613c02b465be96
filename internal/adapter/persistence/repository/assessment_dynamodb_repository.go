package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAssessmentsTableName = "assessments"

type assessmentItem struct {
	ID               string                     `dynamodbav:"id"`
	Building         entities.BuildingDetails   `dynamodbav:"building"`
	Location         entities.Location          `dynamodbav:"location"`
	Environmental    entities.EnvironmentalData `dynamodbav:"environmental"`
	Prediction       *entities.Prediction       `dynamodbav:"prediction,omitempty"`
	Results          *entities.Results          `dynamodbav:"results,omitempty"`
	Status           string                     `dynamodbav:"status"`
	Error            *assessmentErrorItem       `dynamodbav:"error,omitempty"`
	ProcessingTimeMs int64                      `dynamodbav:"processing_time_ms,omitempty"`
	CreatedAt        string                     `dynamodbav:"created_at"`
	UpdatedAt        string                     `dynamodbav:"updated_at"`
}

type assessmentErrorItem struct {
	Message   string `dynamodbav:"message"`
	Code      string `dynamodbav:"code"`
	Timestamp string `dynamodbav:"timestamp"`
}

// AssessmentDynamoRepository persists Assessment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Terminal transitions (completed/failed) are conditional on the stored
// status still being "processing". A lost race or a missing record surfaces
// as a zero-value entity, never as an overwrite of a terminal record.
type AssessmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssessmentRepository = (*AssessmentDynamoRepository)(nil)

func NewAssessmentDynamoRepository(ddb *dynamodb.Client) *AssessmentDynamoRepository {
	return &AssessmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSESSMENTS_TABLE", defaultAssessmentsTableName),
	}
}

func (r *AssessmentDynamoRepository) Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	av, err := attributevalue.MarshalMap(toAssessmentItem(a))
	if err != nil {
		return entities.Assessment{}, err
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
		return entities.Assessment{}, err
	}
	return a, nil
}

func (r *AssessmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assessment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assessment{}, nil
	}

	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func (r *AssessmentDynamoRepository) MarkCompleted(ctx context.Context, id string, results entities.Results, prediction entities.Prediction, processingTimeMs int64) (entities.Assessment, error) {
	resultsAV, err := attributevalue.Marshal(&results)
	if err != nil {
		return entities.Assessment{}, err
	}
	predictionAV, err := attributevalue.Marshal(&prediction)
	if err != nil {
		return entities.Assessment{}, err
	}

	return r.terminalUpdate(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #results = :results, #prediction = :prediction, #processing_time_ms = :processing_time_ms, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":             &types.AttributeValueMemberS{Value: string(entities.AssessmentStatusCompleted)},
			":results":            resultsAV,
			":prediction":         predictionAV,
			":processing_time_ms": &types.AttributeValueMemberN{Value: int64ToString(processingTimeMs)},
			":updated_at":         &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":             "status",
			"#results":            "results",
			"#prediction":         "prediction",
			"#processing_time_ms": "processing_time_ms",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

func (r *AssessmentDynamoRepository) MarkFailed(ctx context.Context, id string, aerr entities.AssessmentError, prediction *entities.Prediction, processingTimeMs int64) (entities.Assessment, error) {
	errAV, err := attributevalue.Marshal(&assessmentErrorItem{
		Message:   aerr.Message,
		Code:      aerr.Code,
		Timestamp: aerr.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Assessment{}, err
	}

	var predictionAV types.AttributeValue
	if prediction != nil {
		predictionAV, err = attributevalue.Marshal(prediction)
		if err != nil {
			return entities.Assessment{}, err
		}
	}

	return r.terminalUpdate(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #error = :error, #processing_time_ms = :processing_time_ms, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":             &types.AttributeValueMemberS{Value: string(entities.AssessmentStatusFailed)},
			":error":              errAV,
			":processing_time_ms": &types.AttributeValueMemberN{Value: int64ToString(processingTimeMs)},
			":updated_at":         &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":             "status",
			"#error":              "error",
			"#processing_time_ms": "processing_time_ms",
			"#updated_at":         "updated_at",
		}
		if predictionAV != nil {
			expr += ", #prediction = :prediction"
			vals[":prediction"] = predictionAV
			names["#prediction"] = "prediction"
		}
		return expr, vals, names
	})
}

// terminalUpdate applies a terminal-status write guarded by the record still
// being in "processing". A failed condition (missing record or a terminal
// status already written) yields a zero-value entity.
func (r *AssessmentDynamoRepository) terminalUpdate(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Assessment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	values[":processing"] = &types.AttributeValueMemberS{Value: string(entities.AssessmentStatusProcessing)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :processing"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Assessment{}, nil
		}
		return entities.Assessment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Assessment{}, nil
	}

	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func toAssessmentItem(a entities.Assessment) assessmentItem {
	it := assessmentItem{
		ID:               a.ID,
		Building:         a.Building,
		Location:         a.Location,
		Environmental:    a.Environmental,
		Prediction:       a.Prediction,
		Results:          a.Results,
		Status:           string(a.Status),
		ProcessingTimeMs: a.ProcessingTimeMs,
		CreatedAt:        a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if a.Error != nil {
		it.Error = &assessmentErrorItem{
			Message:   a.Error.Message,
			Code:      a.Error.Code,
			Timestamp: a.Error.Timestamp.UTC().Format(time.RFC3339Nano),
		}
	}
	return it
}

func fromAssessmentItem(it assessmentItem) entities.Assessment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	a := entities.Assessment{
		ID:               it.ID,
		Building:         it.Building,
		Location:         it.Location,
		Environmental:    it.Environmental,
		Prediction:       it.Prediction,
		Results:          it.Results,
		Status:           entities.AssessmentStatus(it.Status),
		ProcessingTimeMs: it.ProcessingTimeMs,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.Error != nil {
		ts, _ := time.Parse(time.RFC3339Nano, it.Error.Timestamp)
		a.Error = &entities.AssessmentError{
			Message:   it.Error.Message,
			Code:      it.Error.Code,
			Timestamp: ts,
		}
	}
	return a
}
