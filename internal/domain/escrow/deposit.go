package escrow

import (
	"fmt"
	"strings"
	"time"

	"contractor_escrow/internal/domain/entities"
)

// GeneralCategory is the fallback key of a deposit policy.
const GeneralCategory = "general"

// DepositPolicy is the per-category estimate deposit table.
// CaptureTTL bounds how long a CREATED deposit may wait for capture; zero disables the bound.
type DepositPolicy struct {
	AmountsByCategory map[string]int64
	CaptureTTL        time.Duration
}

func DefaultDepositPolicy() DepositPolicy {
	return DepositPolicy{
		AmountsByCategory: map[string]int64{
			"plumbing":    2900,
			"electrical":  3900,
			"painting":    2900,
			"roofing":     7900,
			"carpentry":   3900,
			"hvac":        5900,
			"landscaping": 2900,
			"cleaning":    2900,
			"general":     3900,
			"bathroom":    3900,
			"kitchen":     3900,
			"tiling":      3900,
			"other":       3900,
		},
		CaptureTTL: 48 * time.Hour,
	}
}

// WithOverrides returns a copy of the policy with the given category amounts replaced.
// Non-positive amounts are ignored.
func (p DepositPolicy) WithOverrides(overrides map[string]int64) DepositPolicy {
	amounts := make(map[string]int64, len(p.AmountsByCategory)+len(overrides))
	for k, v := range p.AmountsByCategory {
		amounts[k] = v
	}
	for k, v := range overrides {
		key := NormalizeCategory(k)
		if key == "" || v <= 0 {
			continue
		}
		amounts[key] = v
	}
	p.AmountsByCategory = amounts
	return p
}

func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func (p DepositPolicy) generalAmount() int64 {
	if v, ok := p.AmountsByCategory[GeneralCategory]; ok && v > 0 {
		return v
	}
	return 3900
}

// PreviewDeposit suggests a deposit for the project's category. It never mutates state.
func PreviewDeposit(project entities.Project, policy DepositPolicy) entities.DepositPreview {
	category := NormalizeCategory(project.Category)
	if amount, ok := policy.AmountsByCategory[category]; ok && amount > 0 && category != "" {
		return entities.DepositPreview{
			Category:    category,
			AmountCents: amount,
			Rationale: fmt.Sprintf("Standard estimate deposit for %s visits is %s. It is refunded if the contractor does not attend and credited to the job once funded.",
				category, FormatCents(amount)),
		}
	}

	amount := policy.generalAmount()
	rationale := fmt.Sprintf("No specific rate for this category; using the general estimate deposit of %s.", FormatCents(amount))
	if category == "" {
		rationale = fmt.Sprintf("No category set; using the general estimate deposit of %s.", FormatCents(amount))
	}
	return entities.DepositPreview{Category: GeneralCategory, AmountCents: amount, Rationale: rationale}
}

// NewDeposit materializes a previewed deposit in CREATED. The caller assigns ID and timestamps.
func NewDeposit(project entities.Project, previewedAmountCents int64) (entities.EstimateDeposit, error) {
	if strings.TrimSpace(project.ContractorID) == "" {
		return entities.EstimateDeposit{}, ErrContractorRequired
	}
	if previewedAmountCents <= 0 {
		return entities.EstimateDeposit{}, ErrInvalidAmount
	}
	return entities.EstimateDeposit{
		ProjectID:    project.ID,
		CustomerID:   project.CustomerID,
		ContractorID: project.ContractorID,
		AmountCents:  previewedAmountCents,
		Status:       entities.DepositStatusCreated,
	}, nil
}

var depositTransitions = map[entities.DepositStatus][]entities.DepositStatus{
	entities.DepositStatusCreated: {entities.DepositStatusCaptured},
	entities.DepositStatusCaptured: {
		entities.DepositStatusContractorAttended,
		entities.DepositStatusCustomerAttended,
		entities.DepositStatusContractorNoShow,
		entities.DepositStatusCustomerNoShow,
	},
	entities.DepositStatusContractorAttended: dispositions,
	entities.DepositStatusCustomerAttended:   dispositions,
	entities.DepositStatusContractorNoShow:   dispositions,
	entities.DepositStatusCustomerNoShow:     dispositions,
}

var dispositions = []entities.DepositStatus{
	entities.DepositStatusRefunded,
	entities.DepositStatusCreditedToJob,
	entities.DepositStatusClosed,
}

// CanTransitionDeposit reports whether the deposit graph has an edge from -> to.
// The graph has no back-edges.
func CanTransitionDeposit(from, to entities.DepositStatus) bool {
	for _, next := range depositTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CaptureDeposit marks a CREATED deposit as paid. A second capture is an error, not a no-op.
func CaptureDeposit(d entities.EstimateDeposit, now time.Time, ttl time.Duration) (entities.EstimateDeposit, error) {
	if d.Status != entities.DepositStatusCreated {
		if d.Status.Valid() {
			return d, ErrDepositAlreadyCaptured
		}
		return d, ErrDepositInvalidStatus
	}
	if ttl > 0 && !d.CreatedAt.IsZero() && now.Sub(d.CreatedAt) > ttl {
		return d, ErrDepositCaptureExpired
	}
	d.Status = entities.DepositStatusCaptured
	return d, nil
}

func isAttendance(s entities.DepositStatus) bool {
	switch s {
	case entities.DepositStatusContractorAttended,
		entities.DepositStatusCustomerAttended,
		entities.DepositStatusContractorNoShow,
		entities.DepositStatusCustomerNoShow:
		return true
	}
	return false
}

func isDisposition(s entities.DepositStatus) bool {
	switch s {
	case entities.DepositStatusRefunded, entities.DepositStatusCreditedToJob, entities.DepositStatusClosed:
		return true
	}
	return false
}

// RecordAttendance stores the visit outcome of a captured deposit.
func RecordAttendance(d entities.EstimateDeposit, outcome entities.DepositStatus) (entities.EstimateDeposit, error) {
	if !isAttendance(outcome) {
		return d, ErrInvalidAttendance
	}
	if !CanTransitionDeposit(d.Status, outcome) {
		return d, fmt.Errorf("%w: %s -> %s", ErrDepositInvalidStatus, d.Status, outcome)
	}
	d.Status = outcome
	return d, nil
}

// DisposeDeposit applies the terminal disposition once the visit outcome is known.
func DisposeDeposit(d entities.EstimateDeposit, disposition entities.DepositStatus) (entities.EstimateDeposit, error) {
	if !isDisposition(disposition) {
		return d, ErrInvalidDisposition
	}
	if !CanTransitionDeposit(d.Status, disposition) {
		return d, fmt.Errorf("%w: %s -> %s", ErrDepositInvalidStatus, d.Status, disposition)
	}
	d.Status = disposition
	return d, nil
}

// IsDepositCaptured reports whether a deposit unlocks scheduling.
//
// Any status reachable only after capture counts, terminal ones included, except the
// no-show outcomes and refunds: those must not unlock a booking.
func IsDepositCaptured(d *entities.EstimateDeposit) bool {
	if d == nil {
		return false
	}
	switch d.Status {
	case entities.DepositStatusCaptured,
		entities.DepositStatusContractorAttended,
		entities.DepositStatusCustomerAttended,
		entities.DepositStatusCreditedToJob,
		entities.DepositStatusClosed:
		return true
	}
	return false
}

// IsCreditable reports whether a deposit can be applied to the job's funding charge.
func IsCreditable(d entities.EstimateDeposit) bool {
	return d.Status == entities.DepositStatusContractorAttended || d.Status == entities.DepositStatusCustomerAttended
}
