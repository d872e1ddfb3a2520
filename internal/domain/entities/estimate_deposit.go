package entities

import "time"

// DepositStatus is the estimate deposit lifecycle.
//
// Transitions are monotonic: CREATED -> CAPTURED -> attendance outcome -> disposition.
type DepositStatus string

const (
	DepositStatusCreated            DepositStatus = "CREATED"
	DepositStatusCaptured           DepositStatus = "CAPTURED"
	DepositStatusContractorAttended DepositStatus = "CONTRACTOR_ATTENDED"
	DepositStatusCustomerAttended   DepositStatus = "CUSTOMER_ATTENDED"
	DepositStatusContractorNoShow   DepositStatus = "CONTRACTOR_NO_SHOW"
	DepositStatusCustomerNoShow     DepositStatus = "CUSTOMER_NO_SHOW"
	DepositStatusRefunded           DepositStatus = "REFUNDED"
	DepositStatusCreditedToJob      DepositStatus = "CREDITED_TO_JOB"
	DepositStatusClosed             DepositStatus = "CLOSED"
)

var AllDepositStatuses = []DepositStatus{
	DepositStatusCreated,
	DepositStatusCaptured,
	DepositStatusContractorAttended,
	DepositStatusCustomerAttended,
	DepositStatusContractorNoShow,
	DepositStatusCustomerNoShow,
	DepositStatusRefunded,
	DepositStatusCreditedToJob,
	DepositStatusClosed,
}

func (s DepositStatus) Valid() bool {
	for _, known := range AllDepositStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// EstimateDeposit is a refundable hold taken before an on-site visit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type EstimateDeposit struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"project_id"`
	CustomerID   string        `json:"customer_id"`
	ContractorID string        `json:"contractor_id"`
	AmountCents  int64         `json:"amount_cents"`
	Status       DepositStatus `json:"status"`
	PaymentID    string        `json:"payment_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// DepositPreview is the suggested deposit for a project. Previews are never persisted.
type DepositPreview struct {
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Rationale   string `json:"rationale"`
}
