package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go.mongodb.org/mongo-driver/mongo"
)

// EvaluationRepo handles the persistence of scored attempts.
type EvaluationRepo struct {
	collection *mongo.Collection
}

// NewEvaluationRepo creates a new EvaluationRepo with the given MongoDB client, database name, and collection name.
func NewEvaluationRepo(client *mongo.Client, dbName, collectionName string) *EvaluationRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &EvaluationRepo{
		collection: collection,
	}
}

// Save stores an evaluation record.
func (r *EvaluationRepo) Save(ctx context.Context, e *dmn.Evaluation) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, e); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByMazeID lists the evaluations recorded against a maze, newest first.
func (r *EvaluationRepo) ByMazeID(ctx context.Context, mazeID uuid.UUID) ([]*dmn.Evaluation, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"mazeId": mazeID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var evaluations []*dmn.Evaluation
	if err := cursor.All(ctx, &evaluations); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return evaluations, nil
}
