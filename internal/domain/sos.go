package domain

import (
	"time"

	"github.com/google/uuid"
)

type SOSStatus string

const (
	SOSPending      SOSStatus = "pending"
	SOSAcknowledged SOSStatus = "acknowledged"
	SOSInProgress   SOSStatus = "in_progress"
	SOSResolved     SOSStatus = "resolved"
	SOSCancelled    SOSStatus = "cancelled"
)

func (s SOSStatus) Valid() bool {
	switch s {
	case SOSPending, SOSAcknowledged, SOSInProgress, SOSResolved, SOSCancelled:
		return true
	}
	return false
}

// Active reports are the only ones eligible for clustering and nearby
// searches; resolved and cancelled reports are history.
func (s SOSStatus) Active() bool {
	switch s {
	case SOSPending, SOSAcknowledged, SOSInProgress:
		return true
	}
	return false
}

type EmergencyType string

const (
	EmergencyMedical  EmergencyType = "medical"
	EmergencyAccident EmergencyType = "accident"
	EmergencyFire     EmergencyType = "fire"
	EmergencyFlooding EmergencyType = "flooding"
	EmergencyTrapped  EmergencyType = "trapped"
	EmergencyMissing  EmergencyType = "missing"
	EmergencyOther    EmergencyType = "other"
)

func (t EmergencyType) Valid() bool {
	switch t {
	case EmergencyMedical, EmergencyAccident, EmergencyFire, EmergencyFlooding,
		EmergencyTrapped, EmergencyMissing, EmergencyOther:
		return true
	}
	return false
}

type SOSReport struct {
	ID                 uuid.UUID     `json:"id"`
	ReporterName       string        `json:"reporter_name"`
	ReporterPhone      string        `json:"reporter_phone"`
	Location           GeoPoint      `json:"location"`
	EmergencyType      EmergencyType `json:"emergency_type"`
	Description        string        `json:"description"`
	Severity           float64       `json:"severity"`
	NumPeopleAffected  int           `json:"num_people_affected"`
	IsUrgent           bool          `json:"is_urgent"`
	Status             SOSStatus     `json:"status"`
	NearestResourceID  *uuid.UUID    `json:"nearest_resource_id,omitempty"`
	ReportedAt         time.Time     `json:"reported_at"`
	AcknowledgedAt     *time.Time    `json:"acknowledged_at,omitempty"`
	ResolvedAt         *time.Time    `json:"resolved_at,omitempty"`
	CrowdAssistEnabled bool          `json:"crowd_assistance_enabled"`
}

// NearbySOS pairs an active report with its distance from a query point.
type NearbySOS struct {
	Report     SOSReport `json:"report"`
	DistanceKm float64   `json:"distance_km"`
}

type SOSAnalytics struct {
	TotalActive            int64   `json:"total_active_sos"`
	ResolvedToday          int64   `json:"total_resolved_today"`
	AvgResponseTimeMinutes float64 `json:"average_response_time_minutes"`
	MostCommonType         string  `json:"most_common_emergency_type"`
	UrgentCases            int64   `json:"urgent_cases"`
	AvailableHelpers       int64   `json:"crowd_assistance_available"`
}
