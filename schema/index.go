package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexReportCollection())
	panicIfError(m.IndexFarmerCollection())
}

func (m *MongoDBIndexer) IndexReportCollection() error {
	// covers the heatmap grouping key
	if err := m.createIndex(ReportCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "latitude", Value: 1},
			{Key: "longitude", Value: 1},
			{Key: "disease_name", Value: 1},
			{Key: "severity", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ReportCollection, mongo.IndexModel{
		Keys: bson.M{
			"timestamp": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexFarmerCollection() error {
	if err := m.createIndex(FarmerCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "latitude", Value: 1},
			{Key: "longitude", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(FarmerCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetSparse(true),
	})
}
