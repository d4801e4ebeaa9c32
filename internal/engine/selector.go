package engine

import (
	"fmt"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/internal/geo"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

type scoredResource struct {
	resource   domain.Resource
	distanceKm float64
	// priorityRank is the position in the requested type priority list;
	// types outside the list rank after every listed type.
	priorityRank int
}

// SelectResource picks the single best available resource for an
// incident. Type priority is a hard partition: a candidate of an earlier
// priority type beats any candidate of a later type regardless of
// distance; distance only breaks ties within a priority group. At or
// above the high-severity threshold all types become eligible even when
// absent from the priority list. The final tie-break is the lowest
// resource ID so the decision is reproducible.
//
// The decision is advisory only; committing the busy transition is the
// caller's job and must be serialized per resource.
func (eng *Engine) SelectResource(incident Incident, candidates []domain.Resource, typePriority []domain.ResourceType) (domain.DispatchDecision, error) {
	const op = "engine.SelectResource"

	if !incident.Location.InRange() {
		return domain.DispatchDecision{}, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	rankOf := make(map[domain.ResourceType]int, len(typePriority))
	for i, t := range typePriority {
		if _, seen := rankOf[t]; !seen {
			rankOf[t] = i
		}
	}
	highSeverity := incident.Severity >= eng.cfg.HighSeverityThreshold

	var scored []scoredResource
	for _, r := range candidates {
		if r.Status != domain.ResourceAvailable {
			continue
		}

		rank := 0
		if len(typePriority) > 0 {
			listed, ok := rankOf[r.Type]
			switch {
			case ok:
				rank = listed
			case highSeverity:
				rank = len(typePriority)
			default:
				continue
			}
		}

		dist, err := geo.DistanceKm(incident.Location, r.Location)
		if err != nil {
			return domain.DispatchDecision{}, fmt.Errorf("%s: %w", op, err)
		}

		scored = append(scored, scoredResource{
			resource:     r,
			distanceKm:   dist,
			priorityRank: rank,
		})
	}

	if len(scored) == 0 {
		return domain.DispatchDecision{}, fmt.Errorf("%s: %w", op, e.ErrNoResourceAvailable)
	}

	best := scored[0]
	for _, c := range scored[1:] {
		if betterCandidate(c, best) {
			best = c
		}
	}

	return domain.DispatchDecision{
		ResourceID:              best.resource.ID,
		ResourceName:            best.resource.Name,
		ResourceType:            best.resource.Type,
		DistanceKm:              best.distanceKm,
		EstimatedArrivalMinutes: etaMinutes(best.distanceKm, eng.speedFor(best.resource)),
		Rationale:               eng.rationale(best, typePriority, highSeverity),
	}, nil
}

func betterCandidate(a, b scoredResource) bool {
	if a.priorityRank != b.priorityRank {
		return a.priorityRank < b.priorityRank
	}
	if a.distanceKm != b.distanceKm {
		return a.distanceKm < b.distanceKm
	}
	return a.resource.ID.String() < b.resource.ID.String()
}

func (eng *Engine) rationale(best scoredResource, typePriority []domain.ResourceType, highSeverity bool) string {
	msg := fmt.Sprintf("nearest available %s at %.1f km", best.resource.Type, best.distanceKm)
	if len(typePriority) > 0 {
		if best.priorityRank < len(typePriority) {
			msg += fmt.Sprintf(", priority %d of requested types", best.priorityRank+1)
		} else if highSeverity {
			msg += ", outside requested types but eligible at high severity"
		}
	}
	return msg
}
