package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssistanceType string

const (
	AssistMedical        AssistanceType = "medical"
	AssistTransportation AssistanceType = "transportation"
	AssistShelter        AssistanceType = "shelter"
	AssistSupplies       AssistanceType = "supplies"
	AssistLabor          AssistanceType = "labor"
	AssistOther          AssistanceType = "other"
)

func (t AssistanceType) Valid() bool {
	switch t {
	case AssistMedical, AssistTransportation, AssistShelter, AssistSupplies, AssistLabor, AssistOther:
		return true
	}
	return false
}

// AssistanceOffer is a volunteer's offer of help against one SOS report.
// AcceptedAt is terminal: once set the offer never goes back to open.
type AssistanceOffer struct {
	ID             uuid.UUID      `json:"id"`
	SOSReportID    uuid.UUID      `json:"sos_report_id"`
	HelperName     string         `json:"helper_name"`
	HelperPhone    string         `json:"helper_phone"`
	HelperLocation GeoPoint       `json:"helper_location"`
	AssistanceType AssistanceType `json:"assistance_type"`
	Description    string         `json:"description"`
	IsVerified     bool           `json:"is_verified"`
	Rating         *float64       `json:"rating,omitempty"` // 0..5, nil while unrated
	OfferedAt      time.Time      `json:"offered_at"`
	AcceptedAt     *time.Time     `json:"accepted_at,omitempty"`
}

func (o AssistanceOffer) Accepted() bool { return o.AcceptedAt != nil }

// RankedOffer is an offer annotated with its distance to the incident
// and the volunteer travel estimate.
type RankedOffer struct {
	Offer                   AssistanceOffer `json:"offer"`
	DistanceKm              float64         `json:"distance_km"`
	EstimatedArrivalMinutes float64         `json:"estimated_arrival_minutes"`
}

// AcceptedOffer is the engine's accept decision; the caller still owns
// the single-writer commit of the accepted_at transition.
type AcceptedOffer struct {
	OfferID     uuid.UUID `json:"offer_id"`
	SOSReportID uuid.UUID `json:"sos_report_id"`
	AcceptedAt  time.Time `json:"accepted_at"`
}
