package products

import (
	"context"

	"antojos/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextProductID reserves the next numeric product id from the counters
// collection. The atomic $inc replaces the old max-id+1 scan, which raced
// under concurrent creates.
func nextProductID(ctx context.Context) (int, error) {
	filter := bson.M{"_id": "products"}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	if err := db.CountersCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
