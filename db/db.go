package db

import (
	"context"
	"log"

	"craftnest/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection     *mongo.Collection
	ProductCollection  *mongo.Collection
	WorkshopCollection *mongo.Collection
	OrderCollection    *mongo.Collection
	PostsCollection    *mongo.Collection
	Client             *mongo.Client
)

// Init connects to MongoDB and binds the package-level collections.
func Init(cfg *config.App) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	Client = client

	database := client.Database(cfg.MongoDB)
	UserCollection = database.Collection("users")
	ProductCollection = database.Collection("products")
	WorkshopCollection = database.Collection("workshops")
	OrderCollection = database.Collection("orders")
	PostsCollection = database.Collection("posts")
}

// WithTransaction runs fn inside a MongoDB transaction so multi-document
// writes either all land or none do.
func WithTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (any, error)) (any, error) {
	session, err := Client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}
