package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const providerStatusApproved = "approved"

// chargeLease is how long a claim taken before a charge keeps other charges for the same
// project or deposit out. It outlives the provider call timeout.
const chargeLease = 2 * time.Minute

// paymentCharger sends a charge through the payment gateway and only reports success
// when the provider approved it.
type paymentCharger struct {
	gateway        interfaces.IPaymentGateway
	testPayerEmail string
}

type chargeRequest struct {
	Reference   string
	Description string
	AmountCents int64
	Payload     json.RawMessage
}

func (c paymentCharger) charge(ctx context.Context, req chargeRequest) (string, error) {
	log.Printf("[payment][usecase] charge start reference=%s amount_cents=%d payload_len=%d", req.Reference, req.AmountCents, len(req.Payload))
	if c.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured reference=%s", req.Reference)
		return "", ErrPaymentGatewayNotConfigured
	}

	payload := req.Payload
	if len(strings.TrimSpace(string(payload))) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] invalid payload (not-json-object) reference=%s", req.Reference)
		return "", ErrInvalidPaymentPayload
	}

	// The source of truth for amount and reference is the escrow record, never the client.
	reqMap["external_reference"] = req.Reference
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = req.Description
	}
	amount, _ := decimal.New(req.AmountCents, -2).Float64()
	reqMap["transaction_amount"] = amount
	ensurePayerDefaults(reqMap, c.testPayerEmail)

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return "", err
	}

	providerPaymentID, providerStatus, _, err := c.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed reference=%s err=%v", req.Reference, err)
		return "", classifyGatewayError(err)
	}
	if !strings.EqualFold(strings.TrimSpace(providerStatus), providerStatusApproved) {
		log.Printf("[payment][usecase] payment not approved reference=%s provider_payment_id=%s provider_status=%s", req.Reference, providerPaymentID, providerStatus)
		return providerPaymentID, fmt.Errorf("%w: status %s", ErrPaymentNotApproved, providerStatus)
	}
	log.Printf("[payment][usecase] charge approved reference=%s provider_payment_id=%s", req.Reference, providerPaymentID)
	return providerPaymentID, nil
}

// refundOrphanedCharge records a refund for a charge the provider approved but that could
// not be attached to its project or deposit.
func refundOrphanedCharge(ctx context.Context, ledger interfaces.ISettlementLedger, projectID, paymentID string, amountCents int64) {
	err := recordSettlement(ctx, ledger, entities.Settlement{
		IdempotencyKey:      "charge-refund:" + paymentID,
		Kind:                entities.SettlementKindChargeRefund,
		ProjectID:           projectID,
		CustomerRefundCents: amountCents,
		CreatedAt:           time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[payment][usecase] orphaned charge refund not recorded project_id=%s payment_id=%s amount_cents=%d err=%v", projectID, paymentID, amountCents, err)
		return
	}
	log.Printf("[payment][usecase] orphaned charge refunded project_id=%s payment_id=%s amount_cents=%d", projectID, paymentID, amountCents)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any, testPayerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && testPayerEmail != "" {
		payer["email"] = testPayerEmail
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func isConditionFailed(err error) bool {
	return errors.Is(err, interfaces.ErrConditionFailed)
}
