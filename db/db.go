package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductsCollection *mongo.Collection
	OrdersCollection   *mongo.Collection
	CountersCollection *mongo.Collection
	Client             *mongo.Client
)

// mongoConfig resolves the connection settings from the environment.
func mongoConfig() (uri, dbName string) {
	uri = os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName = os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "antojosdb"
	}
	return uri, dbName
}

// Initialize MongoDB connection. The .env file is loaded here because this
// init runs before main.
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri, dbName := mongoConfig()

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ProductsCollection = Client.Database(dbName).Collection("products")
	OrdersCollection = Client.Database(dbName).Collection("orders")
	CountersCollection = Client.Database(dbName).Collection("counters")
}
