package products

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"antojos/db"
	"antojos/rdx"
	"antojos/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var productUploadPath = "./static/productpic"

// UploadProductImage stores a product photo plus a 300px-wide thumbnail
// and records the filename on the product.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Error retrieving image file: "+err.Error())
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp":
	default:
		utils.RespondWithError(w, http.StatusUnsupportedMediaType,
			"Unsupported image type. Only JPG, PNG and WEBP are allowed.")
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to decode image")
		return
	}

	if err := os.MkdirAll(filepath.Join(productUploadPath, "thumb"), 0755); err != nil {
		log.Println("UploadProductImage mkdir error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving image")
		return
	}

	fileName := fmt.Sprintf("%d-%s.jpg", id, utils.GenerateRandomString(8))
	originalPath := filepath.Join(productUploadPath, fileName)
	thumbPath := filepath.Join(productUploadPath, "thumb", fileName)

	if err := imaging.Save(img, originalPath); err != nil {
		log.Println("UploadProductImage save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving image")
		return
	}
	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		log.Println("UploadProductImage thumbnail error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving thumbnail")
		return
	}

	imageURL := "/static/productpic/" + fileName
	result, err := db.ProductsCollection.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{
			"$set":  bson.M{"imagen": imageURL},
			"$push": bson.M{"imagenes": imageURL},
		},
	)
	if err != nil {
		log.Println("UploadProductImage UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating product image")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	rdx.InvalidateProducts()

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"imagen":  imageURL,
	})
}
