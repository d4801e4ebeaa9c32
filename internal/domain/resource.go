package domain

import (
	"time"

	"github.com/google/uuid"
)

type ResourceType string

const (
	ResourceAmbulance  ResourceType = "ambulance"
	ResourceDrone      ResourceType = "drone"
	ResourceRescueTeam ResourceType = "rescue_team"
	ResourceFireTruck  ResourceType = "fire_truck"
	ResourceSupplyUnit ResourceType = "supply_unit"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceAmbulance, ResourceDrone, ResourceRescueTeam, ResourceFireTruck, ResourceSupplyUnit:
		return true
	}
	return false
}

type ResourceStatus string

const (
	ResourceAvailable ResourceStatus = "available"
	ResourceBusy      ResourceStatus = "busy"
	ResourceOffline   ResourceStatus = "offline"
)

func (s ResourceStatus) Valid() bool {
	switch s {
	case ResourceAvailable, ResourceBusy, ResourceOffline:
		return true
	}
	return false
}

type Resource struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Type      ResourceType   `json:"type"`
	Status    ResourceStatus `json:"status"`
	Location  GeoPoint       `json:"location"`
	SpeedKmh  float64        `json:"speed_kmh"` // 0 means "use the nominal speed for the type"
	UpdatedAt time.Time      `json:"updated_at"`
}

// NearbyResource pairs a resource with its distance and initial
// bearing from a query point.
type NearbyResource struct {
	Resource                Resource `json:"resource"`
	DistanceKm              float64  `json:"distance_km"`
	BearingDeg              float64  `json:"bearing_deg"`
	EstimatedArrivalMinutes float64  `json:"estimated_arrival_minutes"`
}
