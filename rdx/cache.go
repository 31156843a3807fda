package rdx

import (
	"encoding/json"
	"log"
	"time"

	"antojos/models"
)

// The product list is cached wholesale and invalidated on every product
// mutation, so clients always re-read fresh data right after a write
// (pull-on-mutation refresh policy).
const productListKey = "products:all"

const productListTTL = 5 * time.Minute

// CachedProducts returns the cached full product list, or ok=false when
// the cache is cold or unreadable.
func CachedProducts() ([]models.Product, bool) {
	raw, err := RdxGet(productListKey)
	if err != nil || raw == "" {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Printf("product cache unmarshal failed: %v", err)
		return nil, false
	}
	return products, true
}

// CacheProducts stores the full product list. Failures are logged only;
// the cache is an optimization, never the source of truth.
func CacheProducts(products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		log.Printf("product cache marshal failed: %v", err)
		return
	}
	if err := SetWithExpiry(productListKey, string(data), productListTTL); err != nil {
		log.Printf("product cache set failed: %v", err)
	}
}

// InvalidateProducts drops the cached list after a create/update/delete.
func InvalidateProducts() {
	if err := RdxDel(productListKey); err != nil {
		log.Printf("product cache invalidation failed: %v", err)
	}
}
