package cache

import (
	"fmt"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// Keyer builds cache keys for the two cacheable artifacts: whole designs
// and per-floor plans. Keys hash the normalized input parameters, so two
// requests describing the same building share an entry.
type Keyer struct {
	prefix string
}

// NewKeyer creates a Keyer. The prefix namespaces keys when one backend
// serves several deployments; empty is fine for single-tenant use.
func NewKeyer(prefix string) *Keyer {
	return &Keyer{prefix: prefix}
}

// DesignKey returns the cache key for a generated design.
func (k *Keyer) DesignKey(in *design.DesignInput) string {
	return k.prefix + hashKey("design", in.LandSize, in.Facing, in.BuildingType,
		in.Bedrooms, in.StaircaseType, in.Floors)
}

// PlanKey returns the cache key for one generated floor plan.
func (k *Keyer) PlanKey(in *design.DesignInput, floor int) string {
	return k.prefix + hashKey("plan", in.LandSize, in.Facing, in.BuildingType,
		in.Bedrooms, in.StaircaseType, in.Floors, fmt.Sprintf("floor_%d", floor))
}
