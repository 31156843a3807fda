package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"antojos/db"
	"antojos/models"
	"antojos/rdx"
	"antojos/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var seedFilePath = "data/products.json"

// SeedProducts bulk-loads the initial catalog from the seed file. It is a
// no-op when the collection already has products.
func SeedProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	existing, err := db.ProductsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("SeedProducts count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error seeding database")
		return
	}
	if existing > 0 {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"message": "Database already has products",
			"count":   existing,
		})
		return
	}

	raw, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Println("SeedProducts read error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error seeding database")
		return
	}

	var seed []models.Product
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Println("SeedProducts unmarshal error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error seeding database")
		return
	}

	docs := make([]interface{}, 0, len(seed))
	maxID := 0
	for i := range seed {
		normalizePrices(&seed[i])
		if seed[i].ID > maxID {
			maxID = seed[i].ID
		}
		docs = append(docs, seed[i])
	}

	if _, err := db.ProductsCollection.InsertMany(ctx, docs); err != nil {
		log.Println("SeedProducts InsertMany error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error seeding database")
		return
	}

	// Keep the id sequence ahead of the seeded ids.
	if _, err := db.CountersCollection.UpdateOne(ctx,
		bson.M{"_id": "products"},
		bson.M{"$max": bson.M{"seq": maxID}},
		options.Update().SetUpsert(true),
	); err != nil {
		log.Println("SeedProducts counter sync error:", err)
	}

	rdx.InvalidateProducts()

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Database seeded successfully",
		"count":   len(seed),
	})
}
