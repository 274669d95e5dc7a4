package calc

import (
	"fmt"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// CostRates is a per-sq.ft construction rate table in INR, keyed by building
// type. A copy of DefaultCostRates can be adjusted via configuration before
// being passed to CostEstimate.
type CostRates map[design.BuildingType]float64

// DefaultCostRates are approximate 2024 construction rates.
func DefaultCostRates() CostRates {
	return CostRates{
		design.IndependentHouse: 1800,
		design.Duplex:           2000,
		design.Villa:            2500,
		design.RowHouse:         1600,
		design.Apartment:        1400,
	}
}

// defaultCostRate applies when the building type has no table entry.
const defaultCostRate = 1800

// Scale multipliers: small builds cost more per sq.ft, large builds less.
const (
	smallBuildArea       = 800
	largeBuildArea       = 2500
	smallBuildMultiplier = 1.2
	largeBuildMultiplier = 0.9
)

// CostEstimate returns the estimated construction cost for the built area.
// Pass nil rates to use the defaults.
func CostEstimate(builtArea float64, buildingType design.BuildingType, rates CostRates) float64 {
	if rates == nil {
		rates = DefaultCostRates()
	}
	rate, ok := rates[buildingType]
	if !ok {
		rate = defaultCostRate
	}

	multiplier := 1.0
	switch {
	case builtArea < smallBuildArea:
		multiplier = smallBuildMultiplier
	case builtArea > largeBuildArea:
		multiplier = largeBuildMultiplier
	}

	return builtArea * rate * multiplier
}

// Timeline parameters, in months.
const (
	timelineBase           = 6
	timelineAreaPerMonth   = 200
	timelineMonthsPerFloor = 2
)

// TimelineEstimate formats the expected construction duration. Short builds
// report plain months, medium builds add a finishing note, and long builds
// switch to years and months.
func TimelineEstimate(builtArea float64, floors int) string {
	months := timelineBase + builtArea/timelineAreaPerMonth + float64(floors-1)*timelineMonthsPerFloor

	switch {
	case months <= 8:
		return fmt.Sprintf("%d months", int(months))
	case months <= 12:
		return fmt.Sprintf("%d months (including finishing)", int(months))
	default:
		years := int(months) / 12
		rem := int(months) % 12
		plural := ""
		if years > 1 {
			plural = "s"
		}
		if rem == 0 {
			return fmt.Sprintf("%d year%s", years, plural)
		}
		return fmt.Sprintf("%d year%s %d months", years, plural, rem)
	}
}
