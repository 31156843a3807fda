package orders

import (
	"strings"
	"testing"
	"time"

	"antojos/models"
	"antojos/shipping"
)

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Now()
	n := newOrderNumber(now)

	if !strings.HasPrefix(n, "ORD-") {
		t.Fatalf("order number %q missing ORD- prefix", n)
	}
	parts := strings.Split(n, "-")
	if len(parts) != 3 {
		t.Fatalf("order number %q should have 3 segments", n)
	}
	if len(parts[2]) != 5 {
		t.Errorf("random suffix %q should be 5 characters", parts[2])
	}
}

func TestBuildOrderTotals(t *testing.T) {
	input := createOrderInput{
		Cliente: models.ClientInfo{
			Nombre:    "Ana",
			Direccion: "Calle 1",
			Telefono:  "3001234567",
			Correo:    "ana@example.com",
		},
		Productos: []models.OrderItem{
			{ID: 1, Nombre: "Arequipe", PrecioFinal: 12000, Cantidad: 2},
			{ID: 2, Nombre: "Obleas", PrecioFinal: 8000, Cantidad: 1},
		},
		MetodoPago: "Nequi",
	}

	order := buildOrder(input, time.Now())

	wantSubtotal := 12000*2 + 8000
	if order.TotalPrice != wantSubtotal {
		t.Errorf("TotalPrice = %d, want %d", order.TotalPrice, wantSubtotal)
	}
	if order.Shipping != shipping.Cost(wantSubtotal) {
		t.Errorf("Shipping = %d, want %d", order.Shipping, shipping.Cost(wantSubtotal))
	}
	if order.Total != order.TotalPrice+order.Shipping {
		t.Errorf("Total = %d, want subtotal %d + shipping %d", order.Total, order.TotalPrice, order.Shipping)
	}
	if order.Estado != models.StatusPendiente {
		t.Errorf("new order Estado = %q, want %q", order.Estado, models.StatusPendiente)
	}
}

func TestBuildOrderFreeShipping(t *testing.T) {
	input := createOrderInput{
		Productos: []models.OrderItem{
			{ID: 1, PrecioFinal: 60000, Cantidad: 2},
		},
	}
	order := buildOrder(input, time.Now())
	if order.Shipping != 0 {
		t.Errorf("Shipping = %d, want 0 above free-shipping threshold", order.Shipping)
	}
	if order.Total != 120000 {
		t.Errorf("Total = %d, want 120000", order.Total)
	}
}

func TestValidateInput(t *testing.T) {
	valid := createOrderInput{
		Cliente: models.ClientInfo{
			Nombre: "Ana", Direccion: "Calle 1", Telefono: "300", Correo: "a@b.co",
		},
		Productos:  []models.OrderItem{{ID: 1, PrecioFinal: 1000, Cantidad: 1}},
		MetodoPago: "Efectivo",
	}
	if msg := validateInput(valid); msg != "" {
		t.Fatalf("valid input rejected: %q", msg)
	}

	missingClient := valid
	missingClient.Cliente.Correo = ""
	if validateInput(missingClient) == "" {
		t.Error("input with missing client email should be rejected")
	}

	noItems := valid
	noItems.Productos = nil
	if validateInput(noItems) == "" {
		t.Error("input with no items should be rejected")
	}

	badQty := valid
	badQty.Productos = []models.OrderItem{{ID: 1, PrecioFinal: 1000, Cantidad: 0}}
	if validateInput(badQty) == "" {
		t.Error("input with zero quantity should be rejected")
	}

	noPayment := valid
	noPayment.MetodoPago = ""
	if validateInput(noPayment) == "" {
		t.Error("input without payment method should be rejected")
	}
}
