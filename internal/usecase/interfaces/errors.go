package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when an optimistic write lost a race:
// the stored state or version no longer matches what the caller read.
var ErrConditionFailed = errors.New("conditional write failed")

// ErrDuplicateSettlement is returned by the settlement ledger when the idempotency key was already recorded.
var ErrDuplicateSettlement = errors.New("settlement already recorded")
