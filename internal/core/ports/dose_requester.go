package ports

import (
	"context"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
)

// DoseRequester bridges the approval transition to the external dose
// calculation service.
//
// RequestDose is fire-and-forget with at-most-once delivery: the send runs
// detached from the caller with a bounded timeout, failures are logged and
// swallowed, and no error ever reaches the approving moderator's request. A
// completed order may therefore end up without a computed dose when the
// downstream call is lost; that trade-off is accepted.
type DoseRequester interface {
	RequestDose(ctx context.Context, medicineID kernel.UUID)
}
