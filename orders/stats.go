package orders

import (
	"context"
	"log"
	"net/http"
	"time"

	"antojos/db"
	"antojos/models"
	"antojos/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// ComputeStats aggregates an order list. Ingresos keeps the storefront's
// historical meaning (every non-cancelled order); IngresosEntregados is
// the stricter delivered-only figure.
func ComputeStats(orderList []models.Order) models.OrderStats {
	var stats models.OrderStats
	stats.Total = len(orderList)

	for _, o := range orderList {
		switch o.Estado {
		case models.StatusPendiente:
			stats.Pendientes++
		case models.StatusEnProceso:
			stats.EnProceso++
		case models.StatusEnviado:
			stats.Enviados++
		case models.StatusEntregado:
			stats.Entregados++
		case models.StatusCancelado:
			stats.Cancelados++
		}
		if o.Estado != models.StatusCancelado {
			stats.Ingresos += o.Total
		}
		if o.Estado == models.StatusEntregado {
			stats.IngresosEntregados += o.Total
		}
	}
	return stats
}

// GetOrderStats aggregates over the full order collection server-side, so
// the dashboard no longer depends on a possibly stale client list.
func GetOrderStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.OrdersCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("GetOrderStats Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}
	defer cursor.Close(ctx)

	var orderList []models.Order
	if err := cursor.All(ctx, &orderList); err != nil {
		log.Println("GetOrderStats cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, ComputeStats(orderList))
}
