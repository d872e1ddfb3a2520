package usecase

import (
	"fmt"

	"contractor_escrow/internal/domain/escrow"
)

// Policy is the server-side configuration data fed into the escrow rules.
type Policy struct {
	Fees     escrow.FeeSchedule
	Deposits escrow.DepositPolicy

	// DocReferencePrefix builds the default doc reference for cases without a resolution document.
	DocReferencePrefix string

	// TestPayerEmail fills payer.email on sandbox charges that carry no payer.
	TestPayerEmail string
}

func DefaultPolicy() Policy {
	return Policy{
		Fees:               escrow.DefaultFeeSchedule(),
		Deposits:           escrow.DefaultDepositPolicy(),
		DocReferencePrefix: "admin-resolution",
	}
}

func (p Policy) defaultDocReference(caseID string) string {
	prefix := p.DocReferencePrefix
	if prefix == "" {
		prefix = "admin-resolution"
	}
	return fmt.Sprintf("%s:%s", prefix, caseID)
}
