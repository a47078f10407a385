package http

import (
	"errors"
	"net/http"

	"github.com/opendesk-labs/opendesk/internal/service"
	"github.com/opendesk-labs/opendesk/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationNoCustomerName: http.StatusBadRequest,
	service.ErrValidationNoCustomerID:   http.StatusBadRequest,
	service.ErrValidationNoOrderNumber:  http.StatusBadRequest,
	service.ErrValidationBadOrderStatus: http.StatusBadRequest,
	service.ErrUnknownCustomer:          http.StatusUnprocessableEntity,

	store.ErrCustomerNotFound: http.StatusNotFound,
	store.ErrOrderNotFound:    http.StatusNotFound,
	store.ErrOrderNumberTaken: http.StatusConflict,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
