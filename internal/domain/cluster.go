package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cluster is an ephemeral grouping of active reports; it is computed on
// demand and never persisted.
type Cluster struct {
	Centroid          GeoPoint        `json:"centroid"`
	MemberIDs         []uuid.UUID     `json:"member_ids"`
	IncidentCount     int             `json:"incident_count"`
	AverageSeverity   float64         `json:"average_severity"`
	EmergencyTypes    []EmergencyType `json:"emergency_types"`
	MostRecentReport  time.Time       `json:"most_recent_report"`
}
