package usecase

import "errors"

var (
	ErrInvalidProjectID  = errors.New("invalid project id")
	ErrInvalidDepositID  = errors.New("invalid deposit id")
	ErrInvalidCaseID     = errors.New("invalid case id")
	ErrInvalidCategory   = errors.New("invalid project category")
	ErrInvalidTitle      = errors.New("invalid project title")
	ErrProjectNotFound   = errors.New("project not found")
	ErrDepositNotFound   = errors.New("estimate deposit not found")
	ErrCaseNotFound      = errors.New("dispute case not found")
	ErrForbidden         = errors.New("actor not allowed for this operation")
	ErrConcurrentUpdate  = errors.New("resource changed concurrently, reload and retry")
	ErrQuoteAlreadyExist = errors.New("contractor already has a pending quote for this project")
	ErrDepositExists     = errors.New("an active estimate deposit already exists for this contractor")
	ErrDepositMismatch   = errors.New("deposit amount no longer matches the preview")
	ErrInvalidDocument   = errors.New("invalid resolution document")
	ErrChargeInProgress  = errors.New("a payment for this resource is already in progress")

	ErrInvalidPaymentPayload          = errors.New("invalid mercado pago payload")
	ErrPaymentNotApproved             = errors.New("payment not approved by provider")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)
