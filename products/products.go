package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"antojos/db"
	"antojos/models"
	"antojos/mq"
	"antojos/rdx"
	"antojos/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// normalizePrices applies the price defaulting rule: a missing final price
// falls back to the original, a missing original to the final.
func normalizePrices(p *models.Product) {
	if p.PrecioFinal <= 0 {
		p.PrecioFinal = p.PrecioOriginal
	}
	if p.PrecioOriginal <= 0 {
		p.PrecioOriginal = p.PrecioFinal
	}
}

func cleanVariants(v *models.ProductVariants) *models.ProductVariants {
	if v == nil || v.Tipo == "" {
		return nil
	}
	var opciones []string
	for _, op := range v.Opciones {
		if op != "" {
			opciones = append(opciones, op)
		}
	}
	if len(opciones) == 0 {
		return nil
	}
	return &models.ProductVariants{Tipo: v.Tipo, Opciones: opciones}
}

func validEtiqueta(e *string) bool {
	if e == nil || *e == "" {
		return true
	}
	return utils.Contains(models.EtiquetaOptions, *e)
}

// CreateProduct inserts a new catalog entry with a sequence-assigned id.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input data")
		return
	}

	if product.Nombre == "" || product.Categoria == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Nombre y categoría son obligatorios")
		return
	}
	if product.Stock < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Stock must be a non-negative integer")
		return
	}
	if !validEtiqueta(product.Etiqueta) {
		utils.RespondWithError(w, http.StatusBadRequest, "Etiqueta no válida")
		return
	}

	normalizePrices(&product)
	product.Variantes = cleanVariants(product.Variantes)
	if product.Imagenes == nil {
		product.Imagenes = []string{}
	}

	id, err := nextProductID(ctx)
	if err != nil {
		log.Println("CreateProduct sequence error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating product")
		return
	}
	product.ID = id

	if _, err := db.ProductsCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating product")
		return
	}

	rdx.InvalidateProducts()
	go mq.Emit("product-created", mq.Event{EntityType: "product", EntityId: strconv.Itoa(id), Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// EditProduct overwrites the editable fields of a product.
func EditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if product.Nombre == "" || product.Categoria == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Nombre y categoría son obligatorios")
		return
	}
	if product.Stock < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Stock must be a non-negative integer")
		return
	}
	if !validEtiqueta(product.Etiqueta) {
		utils.RespondWithError(w, http.StatusBadRequest, "Etiqueta no válida")
		return
	}

	normalizePrices(&product)
	product.Variantes = cleanVariants(product.Variantes)

	updateFields := bson.M{
		"nombre":         product.Nombre,
		"categoria":      product.Categoria,
		"precioCompra":   product.PrecioCompra,
		"precioOriginal": product.PrecioOriginal,
		"precioFinal":    product.PrecioFinal,
		"descripcion":    product.Descripcion,
		"imagen":         product.Imagen,
		"etiqueta":       product.Etiqueta,
		"stock":          product.Stock,
		"variantes":      product.Variantes,
	}

	result, err := db.ProductsCollection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateFields})
	if err != nil {
		log.Println("EditProduct UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating product")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	rdx.InvalidateProducts()
	go mq.Emit("product-edited", mq.Event{EntityType: "product", EntityId: strconv.Itoa(id), Method: "PUT"})

	product.ID = id
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a product by id.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	result, err := db.ProductsCollection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	rdx.InvalidateProducts()
	go mq.Emit("product-deleted", mq.Event{EntityType: "product", EntityId: strconv.Itoa(id), Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true})
}
