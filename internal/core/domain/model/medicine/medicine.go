package medicine

import (
	"errors"
	"fmt"
	"time"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// ErrMedicineIsNotConstructed is returned when a Medicine instance was not
// created via NewDraft or RestoreMedicine.
var ErrMedicineIsNotConstructed = errors.New("Medicine must be created via NewDraft or RestoreMedicine")

// Medicine is the aggregate root of the order lifecycle engine. It owns the
// status state machine, the composition line items and the computed dose.
//
// Invariants:
//   - Valid unique identifier and owner
//   - At most one line per substance in the composition
//   - Composition changes only while the order is a Draft
//   - Status transitions follow the state machine in Status
//   - A user has at most one Draft at a time (enforced at the storage layer,
//     see the medicine repository)
type Medicine struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	status        Status
	dose          *float64
	dateCreated   time.Time
	dateFormation *time.Time
	dateComplete  *time.Time
	moderatorID   *kernel.UUID
	composition   []CompositionLine

	isConstructed bool
}

// NewDraft creates a fresh draft order owned by ownerID.
func NewDraft(id kernel.UUID, ownerID kernel.UUID, createdAt time.Time) (*Medicine, error) {
	m := &Medicine{
		status:        StatusDraft,
		dateCreated:   createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMedicine reconstructs an order from persistence with its full state.
func RestoreMedicine(
	id kernel.UUID,
	ownerID kernel.UUID,
	status Status,
	dose *float64,
	dateCreated time.Time,
	dateFormation *time.Time,
	dateComplete *time.Time,
	moderatorID *kernel.UUID,
	composition []CompositionLine,
) (*Medicine, error) {
	m, err := NewDraft(id, ownerID, dateCreated)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	if moderatorID != nil {
		if err := moderatorID.Validate(); err != nil {
			return nil, err
		}
	}

	m.status = status
	m.dose = dose
	m.dateFormation = dateFormation
	m.dateComplete = dateComplete
	m.moderatorID = moderatorID
	m.composition = composition
	return m, nil
}

// Validate ensures the medicine was built through a constructor.
func (m *Medicine) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMedicineIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (m *Medicine) ID() kernel.UUID {
	return m.id
}

// OwnerID returns the identifier of the user assembling the order.
func (m *Medicine) OwnerID() kernel.UUID {
	return m.ownerID
}

// Status returns the current lifecycle state.
func (m *Medicine) Status() Status {
	return m.status
}

// Dose returns the computed dose, or nil while no callback has arrived.
func (m *Medicine) Dose() *float64 {
	return m.dose
}

// DateCreated returns the draft creation time.
func (m *Medicine) DateCreated() time.Time {
	return m.dateCreated
}

// DateFormation returns the submission time, nil while the order is a draft.
func (m *Medicine) DateFormation() *time.Time {
	return m.dateFormation
}

// DateComplete returns the terminal decision time, nil before a decision.
func (m *Medicine) DateComplete() *time.Time {
	return m.dateComplete
}

// ModeratorID returns the deciding moderator, nil before a decision.
func (m *Medicine) ModeratorID() *kernel.UUID {
	return m.moderatorID
}

// Composition returns the line items of the order.
func (m *Medicine) Composition() []CompositionLine {
	return m.composition
}

// Line returns the composition line for substanceID, if present.
func (m *Medicine) Line(substanceID kernel.UUID) (CompositionLine, bool) {
	for _, line := range m.composition {
		if line.SubstanceID().IsEqual(substanceID) {
			return line, true
		}
	}
	return CompositionLine{}, false
}

// IsOwnedBy reports whether callerID is the order's owner.
func (m *Medicine) IsOwnedBy(callerID kernel.UUID) bool {
	return m.ownerID.IsEqual(callerID)
}

// AddSubstance appends a composition line with the default weight.
//
// Fails with Forbidden if callerID is not the owner or the order is not a
// Draft, and with Conflict if the substance is already in the composition.
func (m *Medicine) AddSubstance(callerID kernel.UUID, substanceID kernel.UUID) error {
	if err := m.ensureOwnerDraft(callerID); err != nil {
		return err
	}

	if _, ok := m.Line(substanceID); ok {
		return errs.NewConflictErrorWithCause("composition",
			fmt.Errorf("substance %s is already in the composition", substanceID))
	}

	line, err := NewCompositionLine(substanceID, DefaultWeight)
	if err != nil {
		return err
	}

	m.composition = append(m.composition, line)
	return nil
}

// RemoveSubstance deletes the line for substanceID from the composition.
//
// Fails with NotFound if the line does not exist; ownership and state checks
// as in AddSubstance.
func (m *Medicine) RemoveSubstance(callerID kernel.UUID, substanceID kernel.UUID) error {
	if err := m.ensureOwnerDraft(callerID); err != nil {
		return err
	}

	for i, line := range m.composition {
		if line.SubstanceID().IsEqual(substanceID) {
			m.composition = append(m.composition[:i], m.composition[i+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("substanceId", substanceID.String())
}

// ChangeWeight replaces the weight of an existing line. Draft-only, owner-only.
func (m *Medicine) ChangeWeight(callerID kernel.UUID, substanceID kernel.UUID, weight float64) error {
	if err := m.ensureOwnerDraft(callerID); err != nil {
		return err
	}

	for i, line := range m.composition {
		if line.SubstanceID().IsEqual(substanceID) {
			updated, err := NewCompositionLine(substanceID, weight)
			if err != nil {
				return err
			}
			m.composition[i] = updated
			return nil
		}
	}

	return errs.NewObjectNotFoundError("substanceId", substanceID.String())
}

// Form submits the draft for moderation: Draft -> Formed, sets dateFormation.
func (m *Medicine) Form(callerID kernel.UUID, now time.Time) error {
	if !m.IsOwnedBy(callerID) {
		return errs.NewForbiddenError("only the owner may form the medicine")
	}

	newStatus, err := m.status.Form()
	if err != nil {
		return err
	}

	m.status = newStatus
	m.dateFormation = &now
	return nil
}

// Complete records a moderator approval: Formed -> Completed.
// The computed dose is not set here; it arrives later via SetDose.
func (m *Medicine) Complete(moderatorID kernel.UUID, now time.Time) error {
	if err := moderatorID.Validate(); err != nil {
		return err
	}

	newStatus, err := m.status.Complete()
	if err != nil {
		return err
	}

	m.status = newStatus
	m.dateComplete = &now
	m.moderatorID = &moderatorID
	return nil
}

// Reject records a moderator denial: Formed -> Rejected.
func (m *Medicine) Reject(moderatorID kernel.UUID, now time.Time) error {
	if err := moderatorID.Validate(); err != nil {
		return err
	}

	newStatus, err := m.status.Reject()
	if err != nil {
		return err
	}

	m.status = newStatus
	m.dateComplete = &now
	m.moderatorID = &moderatorID
	return nil
}

// Withdraw deletes the order while still a draft: Draft -> Deleted.
func (m *Medicine) Withdraw(callerID kernel.UUID) error {
	if !m.IsOwnedBy(callerID) {
		return errs.NewForbiddenError("only the owner may withdraw the medicine")
	}

	newStatus, err := m.status.Delete()
	if err != nil {
		return err
	}

	m.status = newStatus
	return nil
}

// SetDose writes the externally computed dose.
//
// There is deliberately no status check: the dosing callback is an
// independent asynchronous write path and may arrive before, during or long
// after the Completed transition.
func (m *Medicine) SetDose(value float64) {
	m.dose = &value
}

func (m *Medicine) ensureOwnerDraft(callerID kernel.UUID) error {
	if !m.IsOwnedBy(callerID) {
		return errs.NewForbiddenError("only the owner may change the composition")
	}

	if m.status != StatusDraft {
		return errs.NewForbiddenErrorWithCause("composition",
			fmt.Errorf("medicine is %s, composition is editable only in Draft", m.status))
	}

	return nil
}

func (m *Medicine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Medicine) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	m.ownerID = ownerID
	return nil
}
