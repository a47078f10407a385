package http

import (
	"encoding/json"
	"net/http"

	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/opendesk-labs/opendesk/models"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	orders, err := h.services.OrderService.ListOrders(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listOrders").Msg("error listing orders")
		http.Error(w, "error listing orders", statusFromError(err))
		return
	}

	response := models.OrderListResponse{
		Orders: orders,
		Length: len(orders),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var orderFromBody models.Order
	if err := json.NewDecoder(r.Body).Decode(&orderFromBody); err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.OrderService.CreateOrder(ctx, orderFromBody)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Msg("error creating order")
		http.Error(w, "error creating order", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
