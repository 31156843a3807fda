package orders

import "antojos/models"

// The order lifecycle moves forward only:
//
//	Pendiente -> En proceso -> Enviado -> Entregado
//
// Cancelado is reachable from any non-terminal state. Entregado and
// Cancelado are terminal. Setting the current status again is a no-op,
// kept valid so repeated updates stay idempotent.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPendiente: {models.StatusEnProceso, models.StatusCancelado},
	models.StatusEnProceso: {models.StatusEnviado, models.StatusCancelado},
	models.StatusEnviado:   {models.StatusEntregado, models.StatusCancelado},
	models.StatusEntregado: {},
	models.StatusCancelado: {},
}

// ValidStatus reports whether s is one of the five lifecycle states.
func ValidStatus(s models.OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether an order may move from one state to
// another. Same-state transitions are always allowed.
func CanTransition(from, to models.OrderStatus) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
