package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"antojos/db"
	"antojos/mailer"
	"antojos/models"
	"antojos/mq"
	"antojos/shipping"
	"antojos/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type createOrderInput struct {
	Cliente    models.ClientInfo  `json:"cliente"`
	Productos  []models.OrderItem `json:"productos"`
	MetodoPago string             `json:"metodoPago"`
}

// newOrderNumber builds the human-facing identifier, timestamp plus a
// short random suffix. Practically unique, not guaranteed.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), utils.GenerateRandomString(5))
}

// buildOrder assembles a complete order from checkout input: the item
// subtotal is recomputed server-side and the shipping fee derives from
// that subtotal, so total always equals subtotal + shipping at creation.
func buildOrder(in createOrderInput, now time.Time) models.Order {
	subtotal := 0
	for _, item := range in.Productos {
		subtotal += item.PrecioFinal * item.Cantidad
	}
	fee := shipping.Cost(subtotal)

	return models.Order{
		OrderNumber: newOrderNumber(now),
		Cliente:     in.Cliente,
		Productos:   in.Productos,
		TotalPrice:  subtotal,
		Shipping:    fee,
		Total:       subtotal + fee,
		Estado:      models.StatusPendiente,
		MetodoPago:  in.MetodoPago,
		CreatedAt:   now,
	}
}

func validateInput(in createOrderInput) string {
	c := in.Cliente
	if c.Nombre == "" || c.Direccion == "" || c.Telefono == "" || c.Correo == "" {
		return "Datos del cliente incompletos"
	}
	if len(in.Productos) == 0 {
		return "El pedido no tiene productos"
	}
	for _, item := range in.Productos {
		if item.Cantidad <= 0 {
			return "Cantidad inválida"
		}
		if item.PrecioFinal < 0 {
			return "Precio inválido"
		}
	}
	if in.MetodoPago == "" {
		return "Método de pago requerido"
	}
	return ""
}

// CreateOrder persists a new order and fires the confirmation email in
// the background. Email failure is logged, never surfaced to the buyer.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input createOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order payload")
		return
	}
	if msg := validateInput(input); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	order := buildOrder(input, time.Now())

	result, err := db.OrdersCollection.InsertOne(ctx, order)
	if err != nil {
		log.Println("CreateOrder InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al agregar pedido")
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	go func(o models.Order) {
		if err := mailer.SendOrderConfirmation(o); err != nil {
			log.Printf("order %s confirmation email failed: %v", o.OrderNumber, err)
		}
	}(order)
	go mq.Emit("order-created", mq.Event{EntityType: "order", EntityId: order.OrderNumber, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders returns every order, newest first.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.OrdersCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetOrders Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al obtener pedidos")
		return
	}
	defer cursor.Close(ctx)

	var orderList []models.Order
	if err := cursor.All(ctx, &orderList); err != nil {
		log.Println("GetOrders cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al obtener pedidos")
		return
	}
	if orderList == nil {
		orderList = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, orderList)
}

// GetOrder fetches a single order by its database id.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
		log.Println("GetOrder FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al obtener pedido")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// findOrderByNumber is a variable so handler tests can stub the lookup.
var findOrderByNumber = func(ctx context.Context, orderNumber string) (models.Order, error) {
	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderNumber": orderNumber}).Decode(&order)
	return order, err
}

// GetOrderByNumber serves /api/orders/by-number?orderNumber= .
func GetOrderByNumber(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderNumber := r.URL.Query().Get("orderNumber")
	if orderNumber == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing orderNumber")
		return
	}

	order, err := findOrderByNumber(ctx, orderNumber)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		log.Println("GetOrderByNumber FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al obtener pedido")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true, "order": order})
}

// UpdateOrderStatus moves an order through the lifecycle. Invalid target
// states and disallowed transitions get 400; repeating the current state
// is accepted and leaves the order untouched.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var payload struct {
		Estado models.OrderStatus `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input data")
		return
	}
	if !ValidStatus(payload.Estado) {
		utils.RespondWithError(w, http.StatusBadRequest, "Estado desconocido")
		return
	}

	var order models.Order
	err = db.OrdersCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Pedido no encontrado")
		return
	}
	if err != nil {
		log.Println("UpdateOrderStatus FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al actualizar estado")
		return
	}

	if !CanTransition(order.Estado, payload.Estado) {
		utils.RespondWithError(w, http.StatusBadRequest,
			fmt.Sprintf("Transición no permitida de %s a %s", order.Estado, payload.Estado))
		return
	}

	if _, err := db.OrdersCollection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"estado": payload.Estado}},
	); err != nil {
		log.Println("UpdateOrderStatus UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al actualizar estado")
		return
	}

	go mq.Emit("order-status-updated", mq.Event{
		EntityType: "order",
		EntityId:   order.OrderNumber,
		Method:     "PUT",
		Detail:     string(payload.Estado),
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Estado actualizado"})
}
