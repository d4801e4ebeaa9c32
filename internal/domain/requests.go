package domain

import "github.com/google/uuid"

type CreateSOSRequest struct {
	ReporterName       string        `json:"reporter_name" validate:"required"`
	ReporterPhone      string        `json:"reporter_phone" validate:"required"`
	Lat                float64       `json:"lat" validate:"lat"`
	Lng                float64       `json:"lng" validate:"lng"`
	EmergencyType      EmergencyType `json:"emergency_type" validate:"required"`
	Description        string        `json:"description"`
	Severity           float64       `json:"severity" validate:"severity"`
	NumPeopleAffected  int           `json:"num_people_affected" validate:"omitempty,min=1"`
	IsUrgent           bool          `json:"is_urgent"`
	CrowdAssistEnabled bool          `json:"crowd_assistance_enabled"`
}

type UpdateSOSStatusRequest struct {
	Status            SOSStatus  `json:"status" validate:"required,oneof=pending acknowledged in_progress resolved cancelled"`
	NearestResourceID *uuid.UUID `json:"nearest_resource_id,omitempty"`
}

type NearbySOSRequest struct {
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	RadiusKm float64 `json:"radius_km" validate:"omitempty,radius_km"`
	Limit    int     `json:"limit" validate:"omitempty,min=1,max=100"`
}

type OfferAssistanceRequest struct {
	HelperName     string         `json:"helper_name" validate:"required"`
	HelperPhone    string         `json:"helper_phone" validate:"required"`
	Lat            float64        `json:"lat" validate:"lat"`
	Lng            float64        `json:"lng" validate:"lng"`
	AssistanceType AssistanceType `json:"assistance_type" validate:"required"`
	Description    string         `json:"description"`
}

type AutoDispatchRequest struct {
	Lat           float64        `json:"lat" validate:"lat"`
	Lng           float64        `json:"lng" validate:"lng"`
	EmergencyType EmergencyType  `json:"emergency_type" validate:"required"`
	Severity      float64        `json:"severity" validate:"severity"`
	SOSReportID   *uuid.UUID     `json:"sos_report_id,omitempty"`
	TypePriority  []ResourceType `json:"resource_type_priority,omitempty"`
}

type NearbyResourcesRequest struct {
	Lat      float64        `json:"lat" validate:"lat"`
	Lng      float64        `json:"lng" validate:"lng"`
	RadiusKm float64        `json:"radius_km" validate:"omitempty,radius_km"`
	Types    []ResourceType `json:"types,omitempty"`
}

type UpdateDispatchStatusRequest struct {
	Status DispatchStatus `json:"status" validate:"required,oneof=dispatched en_route arrived completed cancelled"`
}

type CreateResourceRequest struct {
	Name     string       `json:"name" validate:"required"`
	Type     ResourceType `json:"type" validate:"required"`
	Lat      float64      `json:"lat" validate:"lat"`
	Lng      float64      `json:"lng" validate:"lng"`
	SpeedKmh float64      `json:"speed_kmh" validate:"omitempty,min=0,max=400"`
}

type UpdateResourceLocationRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type UpdateResourceStatusRequest struct {
	Status ResourceStatus `json:"status" validate:"required,oneof=available busy offline"`
}

type BroadcastAlertRequest struct {
	SOSReportID uuid.UUID `json:"sos_report_id" validate:"required"`
	AlertType   AlertType `json:"alert_type" validate:"required"`
	Message     string    `json:"message" validate:"required"`
	// ScopeOverride lets an official force a tier; empty means "computed".
	ScopeOverride ScopeTier `json:"scope_override" validate:"omitempty,oneof=immediate district state national"`
}
