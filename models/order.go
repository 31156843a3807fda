package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusPendiente OrderStatus = "Pendiente"
	StatusEnProceso OrderStatus = "En proceso"
	StatusEnviado   OrderStatus = "Enviado"
	StatusEntregado OrderStatus = "Entregado"
	StatusCancelado OrderStatus = "Cancelado"
)

// ClientInfo is the customer snapshot copied onto the order at creation
// time. It is not a reference to any customer entity.
type ClientInfo struct {
	Nombre    string `json:"nombre" bson:"nombre"`
	Direccion string `json:"direccion" bson:"direccion"`
	Telefono  string `json:"telefono" bson:"telefono"`
	Correo    string `json:"correo" bson:"correo"`
}

// OrderItem is a point-in-time copy of a product line at checkout.
type OrderItem struct {
	ID             int    `json:"id" bson:"id"`
	Nombre         string `json:"nombre" bson:"nombre"`
	PrecioCompra   int    `json:"precioCompra" bson:"precioCompra"`
	PrecioOriginal int    `json:"precioOriginal" bson:"precioOriginal"`
	PrecioFinal    int    `json:"precioFinal" bson:"precioFinal"`
	Imagen         string `json:"imagen,omitempty" bson:"imagen,omitempty"`
	Cantidad       int    `json:"cantidad" bson:"cantidad"`
	Variante       string `json:"variante,omitempty" bson:"variante,omitempty"`
}

// Order is immutable after creation except for Estado.
type Order struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderNumber string             `json:"orderNumber" bson:"orderNumber"`
	Cliente     ClientInfo         `json:"cliente" bson:"cliente"`
	Productos   []OrderItem        `json:"productos" bson:"productos"`
	TotalPrice  int                `json:"totalPrice" bson:"totalPrice"`
	Shipping    int                `json:"shipping" bson:"shipping"`
	Total       int                `json:"total" bson:"total"`
	Estado      OrderStatus        `json:"estado" bson:"estado"`
	MetodoPago  string             `json:"metodoPago" bson:"metodoPago"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// OrderStats is the aggregation returned by the stats endpoint.
// Ingresos sums every non-cancelled order; IngresosEntregados only the
// delivered ones.
type OrderStats struct {
	Total              int `json:"total"`
	Pendientes         int `json:"pendientes"`
	EnProceso          int `json:"enProceso"`
	Enviados           int `json:"enviados"`
	Entregados         int `json:"entregados"`
	Cancelados         int `json:"cancelados"`
	Ingresos           int `json:"ingresos"`
	IngresosEntregados int `json:"ingresosEntregados"`
}
