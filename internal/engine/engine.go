// Package engine is the geospatial matching and coordination core: pure,
// stateless decision logic for dispatch, clustering, crowd assistance
// and alert scoping. It never touches storage or the network; callers
// feed it already-loaded records and persist whatever it recommends.
package engine

import (
	"github.com/Dipanshu93198/DRS/internal/domain"
)

// ScopeBand maps a severity lower bound (inclusive) to an alert tier and
// its audience estimate. Bands are matched highest-first; the top band
// is open-ended.
type ScopeBand struct {
	MinSeverity float64
	Scope       domain.ScopeTier
	Recipients  int64
}

type Config struct {
	// Nominal travel speeds per resource type, used when a resource does
	// not report its own speed.
	SpeedsByType    map[domain.ResourceType]float64
	DefaultSpeedKmh float64

	// At or above this severity every resource type becomes eligible for
	// dispatch even when a type priority list excludes it.
	HighSeverityThreshold float64

	// Assumed travel speed for ad-hoc volunteers.
	VolunteerSpeedKmh float64

	DefaultClusterRadiusKm float64

	ScopeTable []ScopeBand
}

func DefaultConfig() Config {
	return Config{
		SpeedsByType: map[domain.ResourceType]float64{
			domain.ResourceAmbulance:  60,
			domain.ResourceDrone:      80,
			domain.ResourceRescueTeam: 40,
			domain.ResourceFireTruck:  50,
			domain.ResourceSupplyUnit: 45,
		},
		DefaultSpeedKmh:        50,
		HighSeverityThreshold:  7.0,
		VolunteerSpeedKmh:      40,
		DefaultClusterRadiusKm: 2.0,
		ScopeTable: []ScopeBand{
			{MinSeverity: 0, Scope: domain.ScopeImmediate, Recipients: 500},
			{MinSeverity: 5, Scope: domain.ScopeDistrict, Recipients: 50_000},
			{MinSeverity: 8, Scope: domain.ScopeState, Recipients: 500_000},
			{MinSeverity: 10, Scope: domain.ScopeNational, Recipients: 5_000_000},
		},
	}
}

// Incident is the minimal view of an emergency the engine needs for
// dispatch and ranking; it works for both persisted SOS reports and
// ad-hoc dispatch requests.
type Incident struct {
	Location      domain.GeoPoint
	EmergencyType domain.EmergencyType
	Severity      float64
}

type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	if cfg.DefaultSpeedKmh <= 0 {
		cfg.DefaultSpeedKmh = 50
	}
	if cfg.VolunteerSpeedKmh <= 0 {
		cfg.VolunteerSpeedKmh = 40
	}
	if cfg.DefaultClusterRadiusKm <= 0 {
		cfg.DefaultClusterRadiusKm = 2.0
	}
	if len(cfg.ScopeTable) == 0 {
		cfg.ScopeTable = DefaultConfig().ScopeTable
	}
	return &Engine{cfg: cfg}
}

func (eng *Engine) speedFor(r domain.Resource) float64 {
	if r.SpeedKmh > 0 {
		return r.SpeedKmh
	}
	if s, ok := eng.cfg.SpeedsByType[r.Type]; ok && s > 0 {
		return s
	}
	return eng.cfg.DefaultSpeedKmh
}

// etaMinutes is zero only at zero distance; any positive distance gives
// a positive estimate.
func etaMinutes(distanceKm, speedKmh float64) float64 {
	if distanceKm == 0 {
		return 0
	}
	return distanceKm / speedKmh * 60
}
