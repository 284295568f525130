package substance

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// ErrSubstanceIsNotConstructed is returned when a Substance instance was not
// created via NewSubstance or RestoreSubstance.
var ErrSubstanceIsNotConstructed = errors.New("Substance must be created via NewSubstance constructor")

// ErrSubstanceAlreadyArchived is returned when archiving an already archived substance.
var ErrSubstanceAlreadyArchived = errs.NewConflictError("substance is already archived")

// Substance is a catalog entry describing one compoundable ingredient.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - The catalog code (number) must be positive
//   - Archived substances are immutable except for restoration via moderator edits
type Substance struct {
	id          kernel.UUID
	name        string
	description string
	number      int
	imageRef    string
	status      Status

	isConstructed bool
}

// NewSubstance creates an active catalog substance. The image reference is a
// plain URL-like string; image storage itself lives outside this service.
func NewSubstance(id kernel.UUID, name string, description string, number int, imageRef string) (*Substance, error) {
	s := &Substance{
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setNumber(number),
	); err != nil {
		return nil, err
	}

	s.description = description
	s.imageRef = imageRef
	return s, nil
}

// RestoreSubstance reconstructs a substance from persistence, including its
// current catalog status.
func RestoreSubstance(
	id kernel.UUID,
	name string,
	description string,
	number int,
	imageRef string,
	status Status,
) (*Substance, error) {
	s, err := NewSubstance(id, name, description, number, imageRef)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	return s, nil
}

// Validate ensures the substance was built through a constructor.
func (s *Substance) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubstanceIsNotConstructed
	}
	return nil
}

// ID returns the substance's unique identifier.
func (s *Substance) ID() kernel.UUID {
	return s.id
}

// Name returns the substance name.
func (s *Substance) Name() string {
	return s.name
}

// Description returns the free-text description.
func (s *Substance) Description() string {
	return s.description
}

// Number returns the numeric catalog code.
func (s *Substance) Number() int {
	return s.number
}

// ImageRef returns the image reference, empty when none was attached.
func (s *Substance) ImageRef() string {
	return s.imageRef
}

// Status returns the catalog status.
func (s *Substance) Status() Status {
	return s.status
}

// IsActive reports whether the substance may appear in listings and be added
// to new draft medicines.
func (s *Substance) IsActive() bool {
	return s.status == StatusActive
}

// Rename updates the substance name and description.
func (s *Substance) Rename(name string, description string) error {
	if err := s.setName(name); err != nil {
		return err
	}
	s.description = description
	return nil
}

// ChangeNumber updates the numeric catalog code.
func (s *Substance) ChangeNumber(number int) error {
	return s.setNumber(number)
}

// AttachImage replaces the image reference.
func (s *Substance) AttachImage(imageRef string) error {
	if imageRef == "" {
		return errs.NewValueIsRequiredError("imageRef")
	}
	s.imageRef = imageRef
	return nil
}

// Archive soft-deletes the substance. Historical compositions keep referencing
// it; new drafts may no longer include it.
func (s *Substance) Archive() error {
	if s.status == StatusArchived {
		return ErrSubstanceAlreadyArchived
	}
	s.status = StatusArchived
	return nil
}

func (s *Substance) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Substance) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Substance) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("number")
	}
	s.number = number
	return nil
}
