package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Dipanshu93198/DRS/internal/domain"
	"github.com/Dipanshu93198/DRS/internal/geo"
	"github.com/Dipanshu93198/DRS/pkg/e"
)

// RankOffers orders volunteer offers for an incident by ascending
// distance. Ties go to the earlier offer; rating is not a tie-break.
// Offers someone already accepted are skipped unless includeAccepted
// is set. A positive limit truncates to the top N.
func (eng *Engine) RankOffers(incident Incident, offers []domain.AssistanceOffer, limit int, includeAccepted bool) ([]domain.RankedOffer, error) {
	const op = "engine.RankOffers"

	if !incident.Location.InRange() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	ranked := make([]domain.RankedOffer, 0, len(offers))
	for _, o := range offers {
		if o.Accepted() && !includeAccepted {
			continue
		}

		dist, err := geo.DistanceKm(incident.Location, o.HelperLocation)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		ranked = append(ranked, domain.RankedOffer{
			Offer:                   o,
			DistanceKm:              dist,
			EstimatedArrivalMinutes: etaMinutes(dist, eng.cfg.VolunteerSpeedKmh),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].Offer.OfferedAt.Before(ranked[j].Offer.OfferedAt)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// AcceptOffer decides whether the target offer may transition to
// accepted. It is a pure check over the supplied snapshot: the caller
// must commit the transition with a single-writer guarantee, since two
// concurrent accepts of the same offer must not both win. Multiple
// accepted offers per incident are allowed, since several volunteers
// can help one emergency.
func (eng *Engine) AcceptOffer(offerID uuid.UUID, offers []domain.AssistanceOffer) (domain.AcceptedOffer, error) {
	const op = "engine.AcceptOffer"

	for _, o := range offers {
		if o.ID != offerID {
			continue
		}
		if o.Accepted() {
			return domain.AcceptedOffer{}, fmt.Errorf("%s: %w", op, e.ErrAlreadyAccepted)
		}
		return domain.AcceptedOffer{
			OfferID:     o.ID,
			SOSReportID: o.SOSReportID,
			AcceptedAt:  time.Now().UTC(),
		}, nil
	}

	return domain.AcceptedOffer{}, fmt.Errorf("%s: %w", op, e.ErrNotFound)
}
