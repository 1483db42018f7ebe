/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */


package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/wso2/gdpr-notice-generator/internal/progress/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

const mongoOperationTimeout = 5 * time.Second

// MongoProgressStore keeps one document per partition, keyed by the partition name.
type MongoProgressStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// ConnectMongoProgressStore connects and pings the configured MongoDB deployment.
func ConnectMongoProgressStore(ctx context.Context, uri, database, collection string) (*MongoProgressStore, error) {

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := mongoClient.Ping(connectCtx, nil); err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, err
	}
	return NewMongoProgressStore(mongoClient, mongoClient.Database(database).Collection(collection)), nil
}

func NewMongoProgressStore(mongoClient *mongo.Client, collection *mongo.Collection) *MongoProgressStore {
	return &MongoProgressStore{client: mongoClient, collection: collection}
}

func (s *MongoProgressStore) Driver() string {
	return constants.DriverMongoDB
}

func (s *MongoProgressStore) Get(ctx context.Context, partitionKey string) (*model.ProgressRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOperationTimeout)
	defer cancel()

	var record model.ProgressRecord
	err := s.collection.FindOne(ctx, bson.M{"_id": partitionKey}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MongoProgressStore) Upsert(ctx context.Context, record model.ProgressRecord) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOperationTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"last_updated": record.LastUpdated.UTC(), "state": record.State}}
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": record.PartitionKey}, update, options.Update().SetUpsert(true))
	return err
}

func (s *MongoProgressStore) List(ctx context.Context) ([]model.PartitionSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOperationTimeout)
	defer cancel()

	findOptions := options.Find().
		SetProjection(bson.M{"last_updated": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.ProgressRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	summaries := make([]model.PartitionSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, model.PartitionSummary{PartitionKey: record.PartitionKey, LastUpdated: record.LastUpdated.UTC()})
	}
	return summaries, nil
}

func (s *MongoProgressStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoProgressStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
