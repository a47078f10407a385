package service

import "errors"

var (
	ErrValidationNoCustomerName = errors.New("no customer name provided")
	ErrValidationNoCustomerID   = errors.New("no customer for order provided")
	ErrValidationNoOrderNumber  = errors.New("no order number provided")
	ErrValidationBadOrderStatus = errors.New("unknown order status")

	ErrUnknownCustomer = errors.New("order references an unknown customer")
)
