package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"microbot/internal/core/model"
)

type RobotRepository interface {
	Create(robot *model.Robot) error
	Update(robot *model.Robot) error
	Delete(id string) error
	FindByID(id string) (*model.Robot, error)
	FindAll() ([]*model.Robot, error)
}

type MongoRobotRepository struct {
	collection *mongo.Collection
}

func NewMongoRobotRepository(db *mongo.Database) *MongoRobotRepository {
	return &MongoRobotRepository{
		collection: db.Collection("robots"),
	}
}

func (r *MongoRobotRepository) Create(robot *model.Robot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, robot)
	return err
}

func (r *MongoRobotRepository) Update(robot *model.Robot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": robot.ID}, robot)
	return err
}

func (r *MongoRobotRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (r *MongoRobotRepository) FindByID(id string) (*model.Robot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var robot model.Robot
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&robot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &robot, err
}

func (r *MongoRobotRepository) FindAll() ([]*model.Robot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var robots []*model.Robot
	if err = cursor.All(ctx, &robots); err != nil {
		return nil, err
	}
	return robots, nil
}
