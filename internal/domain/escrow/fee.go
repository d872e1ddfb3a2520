package escrow

import "github.com/shopspring/decimal"

// FeeTier applies Rate up to UpTo (major units), capped at Cap.
// The last tier of a schedule is expected to be Unbounded.
type FeeTier struct {
	UpTo      decimal.Decimal
	Inclusive bool
	Unbounded bool
	Rate      decimal.Decimal
	Cap       decimal.Decimal
}

func (t FeeTier) covers(amount decimal.Decimal) bool {
	if t.Unbounded {
		return true
	}
	if t.Inclusive {
		return amount.LessThanOrEqual(t.UpTo)
	}
	return amount.LessThan(t.UpTo)
}

// FeeSchedule is the platform fee policy, evaluated tier by tier in order.
type FeeSchedule struct {
	Tiers []FeeTier
}

// DefaultFeeSchedule is 10% capped at 120 below 1000, 7% capped at 300 up to 5000
// inclusive, and 4% capped at 1500 above that.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{Tiers: []FeeTier{
		{UpTo: decimal.NewFromInt(1000), Rate: decimal.RequireFromString("0.10"), Cap: decimal.NewFromInt(120)},
		{UpTo: decimal.NewFromInt(5000), Inclusive: true, Rate: decimal.RequireFromString("0.07"), Cap: decimal.NewFromInt(300)},
		{Unbounded: true, Rate: decimal.RequireFromString("0.04"), Cap: decimal.NewFromInt(1500)},
	}}
}

// Fee returns the platform fee for amount, both in major currency units.
// The fee is rounded half away from zero to a whole unit before the cap applies.
func (s FeeSchedule) Fee(amount decimal.Decimal) decimal.Decimal {
	if amount.Sign() <= 0 {
		return decimal.Zero
	}
	for _, tier := range s.Tiers {
		if !tier.covers(amount) {
			continue
		}
		fee := amount.Mul(tier.Rate).Round(0)
		if fee.GreaterThan(tier.Cap) {
			fee = tier.Cap
		}
		if fee.GreaterThan(amount) {
			fee = amount
		}
		return fee
	}
	return decimal.Zero
}

// FeeCents converts a minor-unit amount to major units, applies Fee and converts back.
func (s FeeSchedule) FeeCents(amountCents int64) int64 {
	if amountCents <= 0 {
		return 0
	}
	fee := s.Fee(decimal.New(amountCents, -2)).Shift(2).IntPart()
	if fee > amountCents {
		return amountCents
	}
	return fee
}

// ReleaseBreakdown splits a gross release into the contractor's net payout and the platform fee.
type ReleaseBreakdown struct {
	GrossCents int64 `json:"gross_cents"`
	FeeCents   int64 `json:"fee_cents"`
	NetCents   int64 `json:"net_cents"`
}

// Payout applies the fee to the contractor side of a release. Refunds never carry a fee.
func Payout(releaseCents int64, schedule FeeSchedule) ReleaseBreakdown {
	if releaseCents <= 0 {
		return ReleaseBreakdown{}
	}
	fee := schedule.FeeCents(releaseCents)
	return ReleaseBreakdown{GrossCents: releaseCents, FeeCents: fee, NetCents: releaseCents - fee}
}

// FormatCents renders minor units as a fixed two-decimal major amount.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
