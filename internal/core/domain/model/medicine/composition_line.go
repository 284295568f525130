package medicine

import (
	"errors"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
)

// DefaultWeight is the quantity assigned to a composition line when a
// substance is first added to a draft.
const DefaultWeight float64 = 1

// CompositionLine relates one substance to a medicine order with a weight.
// A medicine holds at most one line per substance; lines are created, removed
// and re-weighted only while the order is a draft.
type CompositionLine struct {
	substanceID kernel.UUID
	weight      float64
}

// NewCompositionLine creates a line for the given substance with the given weight.
func NewCompositionLine(substanceID kernel.UUID, weight float64) (CompositionLine, error) {
	line := CompositionLine{}

	if err := errors.Join(
		line.setSubstanceID(substanceID),
		line.setWeight(weight),
	); err != nil {
		return CompositionLine{}, err
	}

	return line, nil
}

// SubstanceID returns the referenced substance identifier.
func (l CompositionLine) SubstanceID() kernel.UUID {
	return l.substanceID
}

// Weight returns the quantity of the substance in the composition.
func (l CompositionLine) Weight() float64 {
	return l.weight
}

func (l *CompositionLine) setSubstanceID(substanceID kernel.UUID) error {
	if err := substanceID.Validate(); err != nil {
		return err
	}
	l.substanceID = substanceID
	return nil
}

func (l *CompositionLine) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	l.weight = weight
	return nil
}
