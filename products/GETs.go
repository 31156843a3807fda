package products

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"antojos/catalog"
	"antojos/db"
	"antojos/models"
	"antojos/rdx"
	"antojos/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fetchAllProducts returns the full catalog, serving from the Redis cache
// when warm.
func fetchAllProducts(ctx context.Context) ([]models.Product, error) {
	if cached, ok := rdx.CachedProducts(); ok {
		return cached, nil
	}

	cursor, err := db.ProductsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	rdx.CacheProducts(products)
	return products, nil
}

// GetProducts lists the catalog. Optional query params: search (two-phase
// match), category (diacritic-insensitive equality, applied after search),
// sort (discount | price | name), page (1-based, 20 per page). Without
// page the full filtered list is returned, ordered ascending by id unless
// a search or sort reranked it.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, err := fetchAllProducts(ctx)
	if err != nil {
		log.Println("GetProducts fetch error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}

	q := r.URL.Query()

	if search := q.Get("search"); search != "" {
		products = catalog.Search(products, search)
	}
	products = catalog.FilterCategory(products, q.Get("category"))
	if mode := q.Get("sort"); mode != "" {
		products = catalog.SortProducts(products, mode)
	}
	if products == nil {
		products = []models.Product{}
	}

	if pageParam := q.Get("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid page number")
			return
		}
		pageItems := catalog.Paginate(products, page)
		if pageItems == nil {
			pageItems = []models.Product{}
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"products":   pageItems,
			"page":       page,
			"totalPages": catalog.TotalPages(products),
			"total":      len(products),
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct fetches a single product by numeric id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var product models.Product
	err = db.ProductsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetProduct FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// SearchProducts serves /api/products/search?query= . A missing query
// returns an empty list, not an error.
func SearchProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := r.URL.Query().Get("query")
	if query == "" {
		utils.RespondWithJSON(w, http.StatusOK, []models.Product{})
		return
	}

	products, err := fetchAllProducts(ctx)
	if err != nil {
		log.Println("SearchProducts fetch error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error searching products")
		return
	}

	results := catalog.Search(products, query)
	if results == nil {
		results = []models.Product{}
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

// GetProductsByCategory serves /api/category/:category .
func GetProductsByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, err := fetchAllProducts(ctx)
	if err != nil {
		log.Println("GetProductsByCategory fetch error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching category products")
		return
	}

	results := catalog.FilterCategory(products, ps.ByName("category"))
	if results == nil {
		results = []models.Product{}
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

// GetCategories returns the distinct category names.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	values, err := db.ProductsCollection.Distinct(ctx, "categoria", bson.M{})
	if err != nil {
		log.Println("GetCategories Distinct error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching categories")
		return
	}

	categories := []string{}
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}
