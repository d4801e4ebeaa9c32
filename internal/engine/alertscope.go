package engine

import (
	"github.com/Dipanshu93198/DRS/internal/domain"
)

// ResolveScope maps severity to a broadcast tier via the configured
// band table: bands are inclusive on their lower bound, the top band is
// open-ended. A manual override from an official wins on the tier, but
// the recipient estimate is always the table's figure for the returned
// tier so the two never disagree.
func (eng *Engine) ResolveScope(severity float64, override domain.ScopeTier) domain.BroadcastScope {
	if override != "" && override.Valid() {
		return domain.BroadcastScope{
			Scope:               override,
			EstimatedRecipients: eng.recipientsFor(override),
		}
	}

	band := eng.cfg.ScopeTable[0]
	for _, b := range eng.cfg.ScopeTable {
		if severity >= b.MinSeverity && b.MinSeverity >= band.MinSeverity {
			band = b
		}
	}

	return domain.BroadcastScope{
		Scope:               band.Scope,
		EstimatedRecipients: band.Recipients,
	}
}

func (eng *Engine) recipientsFor(tier domain.ScopeTier) int64 {
	for _, b := range eng.cfg.ScopeTable {
		if b.Scope == tier {
			return b.Recipients
		}
	}
	// Unknown tier in the table; fall back to the lowest band.
	return eng.cfg.ScopeTable[0].Recipients
}
