package orders

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"antojos/db"
	"antojos/models"
	"antojos/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PrintReceipt renders an order as a downloadable PDF with a QR code
// that resolves back to the order-tracking page.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var order models.Order
	err = db.OrdersCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Pedido no encontrado")
		return
	}
	if err != nil {
		log.Println("PrintReceipt FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al obtener pedido")
		return
	}

	qrPNG, err := qrcode.Encode("https://antojos.example.com/confirmation?orderNumber="+order.OrderNumber,
		qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252, translate the accented strings
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Comprobante de pedido")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Pedido: %s", order.OrderNumber))
	pdf.Ln(8)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Cliente: %s", order.Cliente.Nombre)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Fecha: %s", order.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Estado: %s", order.Estado))
	pdf.Ln(8)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Pago: %s", order.MetodoPago)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Productos")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Productos {
		line := fmt.Sprintf("%dx %s", item.Cantidad, item.Nombre)
		if item.Variante != "" {
			line += " (" + item.Variante + ")"
		}
		line += "  " + utils.FormatCOP(item.PrecioFinal*item.Cantidad)
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Subtotal: %s", utils.FormatCOP(order.TotalPrice)))
	pdf.Ln(8)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Envío: %s", utils.FormatCOP(order.Shipping))))
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s", utils.FormatCOP(order.Total)))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("PrintReceipt PDF error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=pedido-"+order.OrderNumber+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
