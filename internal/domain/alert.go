package domain

import (
	"time"

	"github.com/google/uuid"
)

type ScopeTier string

const (
	ScopeImmediate ScopeTier = "immediate"
	ScopeDistrict  ScopeTier = "district"
	ScopeState     ScopeTier = "state"
	ScopeNational  ScopeTier = "national"
)

func (s ScopeTier) Valid() bool {
	switch s {
	case ScopeImmediate, ScopeDistrict, ScopeState, ScopeNational:
		return true
	}
	return false
}

type AlertType string

const (
	AlertNewSOS           AlertType = "new_sos"
	AlertStatusUpdate     AlertType = "status_update"
	AlertResourceAssigned AlertType = "resource_assigned"
	AlertResolved         AlertType = "resolved"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertNewSOS, AlertStatusUpdate, AlertResourceAssigned, AlertResolved:
		return true
	}
	return false
}

// BroadcastScope is the resolver's output: the tier an alert propagates
// to and the audience estimate for that tier.
type BroadcastScope struct {
	Scope               ScopeTier `json:"scope"`
	EstimatedRecipients int64     `json:"estimated_recipients"`
}

type AlertBroadcast struct {
	ID                  uuid.UUID `json:"id"`
	SOSReportID         uuid.UUID `json:"sos_report_id"`
	AlertType           AlertType `json:"alert_type"`
	Message             string    `json:"message"`
	Scope               ScopeTier `json:"scope"`
	Location            GeoPoint  `json:"location"`
	EstimatedRecipients int64     `json:"estimated_recipients"`
	BroadcastAt         time.Time `json:"broadcast_at"`
}

// AlertPayload is what goes onto the delivery queue for the sender worker.
type AlertPayload struct {
	BroadcastID         uuid.UUID `json:"broadcast_id"`
	SOSReportID         uuid.UUID `json:"sos_report_id"`
	AlertType           AlertType `json:"alert_type"`
	Message             string    `json:"message"`
	Scope               ScopeTier `json:"scope"`
	Lat                 float64   `json:"lat"`
	Lng                 float64   `json:"lng"`
	EstimatedRecipients int64     `json:"estimated_recipients"`
	QueuedAt            time.Time `json:"queued_at"`
}
