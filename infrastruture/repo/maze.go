// Package repo implements the persistence interfaces of service/i on
// MongoDB collections.
package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrMazeNotFound is returned when no maze exists with the requested ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo handles the persistence of frozen maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save stores a frozen maze record. Mazes are immutable, so Save only ever
// inserts.
func (r *MazeRepo) Save(ctx context.Context, m *dmn.Maze) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, m); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a maze by its ID.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var m dmn.Maze
	if err := r.collection.FindOne(ctx, filter).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &m, nil
}
