package domain

import (
	"time"

	"github.com/google/uuid"
)

// DispatchDecision is advisory: the engine recommends, the service layer
// commits the busy transition and may lose the race (see DispatchService).
type DispatchDecision struct {
	ResourceID              uuid.UUID    `json:"resource_id"`
	ResourceName            string       `json:"resource_name"`
	ResourceType            ResourceType `json:"resource_type"`
	DistanceKm              float64      `json:"distance_km"`
	EstimatedArrivalMinutes float64      `json:"estimated_arrival_minutes"`
	Rationale               string       `json:"rationale"`
}

// DispatchStatus tracks a record from commitment to completion. A
// terminal status never changes again; reaching completed frees the
// resource back to available.
type DispatchStatus string

const (
	DispatchDispatched DispatchStatus = "dispatched"
	DispatchEnRoute    DispatchStatus = "en_route"
	DispatchArrived    DispatchStatus = "arrived"
	DispatchCompleted  DispatchStatus = "completed"
	DispatchCancelled  DispatchStatus = "cancelled"
)

func (s DispatchStatus) Valid() bool {
	switch s {
	case DispatchDispatched, DispatchEnRoute, DispatchArrived, DispatchCompleted, DispatchCancelled:
		return true
	}
	return false
}

func (s DispatchStatus) Terminal() bool {
	return s == DispatchCompleted || s == DispatchCancelled
}

type DispatchRecord struct {
	ID               uuid.UUID      `json:"id"`
	ResourceID       uuid.UUID      `json:"resource_id"`
	SOSReportID      *uuid.UUID     `json:"sos_report_id,omitempty"`
	DisasterLocation GeoPoint       `json:"disaster_location"`
	EmergencyType    EmergencyType  `json:"emergency_type"`
	Severity         float64        `json:"severity"`
	DistanceKm       float64        `json:"distance_km"`
	EstimatedArrival time.Time      `json:"estimated_arrival"`
	ActualArrival    *time.Time     `json:"actual_arrival,omitempty"`
	DispatchedAt     time.Time      `json:"dispatched_at"`
	Status           DispatchStatus `json:"status"`
}

// ActiveDispatch joins an in-flight record with the live state of the
// resource working it.
type ActiveDispatch struct {
	Record           DispatchRecord `json:"record"`
	ResourceName     string         `json:"resource_name"`
	ResourceType     ResourceType   `json:"resource_type"`
	ResourceLocation GeoPoint       `json:"resource_location"`
}
