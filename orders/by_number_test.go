package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"antojos/models"

	"go.mongodb.org/mongo-driver/mongo"
)

func stubOrderLookup(t *testing.T, fn func(ctx context.Context, orderNumber string) (models.Order, error)) {
	t.Helper()
	orig := findOrderByNumber
	findOrderByNumber = fn
	t.Cleanup(func() { findOrderByNumber = orig })
}

func TestGetOrderByNumberMissingParam(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/by-number", nil)

	GetOrderByNumber(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetOrderByNumberNotFound(t *testing.T) {
	stubOrderLookup(t, func(ctx context.Context, orderNumber string) (models.Order, error) {
		return models.Order{}, mongo.ErrNoDocuments
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/by-number?orderNumber=ORD-1-xxxxx", nil)

	GetOrderByNumber(rec, req, nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

// A created order fetched back by its number must keep the totals the
// checkout computed, and come wrapped in the {success, order} envelope.
func TestGetOrderByNumberRoundTrip(t *testing.T) {
	input := createOrderInput{
		Cliente: models.ClientInfo{
			Nombre: "Ana", Direccion: "Calle 1", Telefono: "300", Correo: "ana@example.com",
		},
		Productos: []models.OrderItem{
			{ID: 1, Nombre: "Arequipe", PrecioFinal: 12000, Cantidad: 2},
		},
		MetodoPago: "Nequi",
	}
	created := buildOrder(input, time.Now())

	stubOrderLookup(t, func(ctx context.Context, orderNumber string) (models.Order, error) {
		if orderNumber != created.OrderNumber {
			t.Errorf("lookup got %q, want %q", orderNumber, created.OrderNumber)
		}
		return created, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/orders/by-number?orderNumber="+created.OrderNumber, nil)

	GetOrderByNumber(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Success bool         `json:"success"`
		Order   models.Order `json:"order"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Order.OrderNumber != created.OrderNumber {
		t.Errorf("orderNumber = %q, want %q", body.Order.OrderNumber, created.OrderNumber)
	}
	if body.Order.Total != created.Total {
		t.Errorf("total = %d, want %d", body.Order.Total, created.Total)
	}
	if body.Order.Total != body.Order.TotalPrice+body.Order.Shipping {
		t.Errorf("total %d should equal subtotal %d + shipping %d",
			body.Order.Total, body.Order.TotalPrice, body.Order.Shipping)
	}
}
