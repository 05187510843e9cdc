package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"microbot/internal/core/model"
)

type TelemetryRepository interface {
	Create(record *model.TelemetryRecord) error
	FindByRobotID(robotID string) ([]*model.TelemetryRecord, error)
	FindByMissionID(missionID string) ([]*model.TelemetryRecord, error)
	FindLatestByRobotID(robotID string) (*model.TelemetryRecord, error)
	SaveSummary(summary *model.TelemetrySummary) error
	FindSummaryByMissionID(missionID string) (*model.TelemetrySummary, error)
}

type MongoTelemetryRepository struct {
	records   *mongo.Collection
	summaries *mongo.Collection
}

func NewMongoTelemetryRepository(db *mongo.Database) *MongoTelemetryRepository {
	return &MongoTelemetryRepository{
		records:   db.Collection("telemetry"),
		summaries: db.Collection("mission_summaries"),
	}
}

func (r *MongoTelemetryRepository) Create(record *model.TelemetryRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.records.InsertOne(ctx, record)
	return err
}

func (r *MongoTelemetryRepository) FindByRobotID(robotID string) ([]*model.TelemetryRecord, error) {
	return r.findRecords(bson.M{"robotId": robotID})
}

func (r *MongoTelemetryRepository) FindByMissionID(missionID string) ([]*model.TelemetryRecord, error) {
	return r.findRecords(bson.M{"missionId": missionID})
}

func (r *MongoTelemetryRepository) findRecords(filter bson.M) ([]*model.TelemetryRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "seq", Value: 1}})
	cursor, err := r.records.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.TelemetryRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MongoTelemetryRepository) FindLatestByRobotID(robotID string) (*model.TelemetryRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "seq", Value: -1}})
	var record model.TelemetryRecord
	err := r.records.FindOne(ctx, bson.M{"robotId": robotID}, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &record, err
}

func (r *MongoTelemetryRepository) SaveSummary(summary *model.TelemetrySummary) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.summaries.InsertOne(ctx, summary)
	return err
}

func (r *MongoTelemetryRepository) FindSummaryByMissionID(missionID string) (*model.TelemetrySummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	var summary model.TelemetrySummary
	err := r.summaries.FindOne(ctx, bson.M{"missionId": missionID}, opts).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &summary, err
}
