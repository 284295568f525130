package commands

import (
	"context"
	"sort"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/ports"
)

// CompositionLineResult is one materialized line of a draft order, joined
// with its catalog metadata. Composition mutations return the full draft
// composition so the caller sees the state it just produced.
type CompositionLineResult struct {
	SubstanceID   kernel.UUID
	SubstanceName string
	ImageRef      string
	Weight        float64
}

// materializeComposition resolves every line of the aggregate against the
// catalog. Lines are sorted by substance name, matching the read side.
func materializeComposition(
	ctx context.Context,
	med *medicine.Medicine,
	substances ports.SubstanceRepository,
) ([]CompositionLineResult, error) {
	lines := med.Composition()
	result := make([]CompositionLineResult, 0, len(lines))
	for _, line := range lines {
		sub, err := substances.Get(ctx, line.SubstanceID())
		if err != nil {
			return nil, err
		}
		result = append(result, CompositionLineResult{
			SubstanceID:   sub.ID(),
			SubstanceName: sub.Name(),
			ImageRef:      sub.ImageRef(),
			Weight:        line.Weight(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SubstanceName < result[j].SubstanceName
	})
	return result, nil
}
