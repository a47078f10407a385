package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/opendesk-labs/opendesk/models"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customers, err := h.services.CustomerService.ListCustomers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCustomers").Msg("error listing customers")
		http.Error(w, "error listing customers", statusFromError(err))
		return
	}

	response := models.CustomerListResponse{
		Customers: customers,
		Length:    len(customers),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var customerFromBody models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customerFromBody); err != nil {
		log.Err(err).Str("func", "*Handler.createCustomer").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CustomerService.CreateCustomer(ctx, customerFromBody)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCustomer").Msg("error creating customer")
		http.Error(w, "error creating customer", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		log.Error().Str("func", "*Handler.getCustomer").Msg("no customer ID was given")
		http.Error(w, "no customer ID was given", http.StatusBadRequest)
		return
	}

	customer, err := h.services.CustomerService.GetCustomer(ctx, customerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCustomer").Msg("error getting customer")
		http.Error(w, "error getting customer", statusFromError(err))
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}
