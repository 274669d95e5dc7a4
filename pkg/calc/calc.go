// Package calc derives regulatory and heuristic design parameters from a
// validated design input.
//
// Every function in this package is a pure, deterministic computation: the
// same input always yields the same output, with no hidden state. Inputs are
// assumed to have passed validation; the calculator does not re-validate.
// Arithmetic degenerate cases (zero areas, empty collections) resolve to
// zero-valued results rather than errors.
//
// # Computations
//
//   - FAR: guideline table lookup by building type and land-size bracket,
//     adjusted for floor count and capped
//   - Setbacks: land-size bracket lookup
//   - BuildableArea / TotalBuiltArea: envelope math combining setbacks and FAR
//   - RoomAllocation: percentage split of per-floor area with minimum floors
//   - SpaceEfficiency: carpet-area ratio and weighted utilization score
//   - Structural / Rationale: advisory lookup tables
//   - Cost / Timeline: rate-table estimates
package calc

import (
	"math"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// =============================================================================
// FAR - Floor Area Ratio
// =============================================================================

// farBracket is one land-size band of the FAR guideline table.
type farBracket struct {
	minSize, maxSize float64
	far              float64
}

// farGuidelines maps building types to their land-size brackets.
// Building types without an entry fall back to the independent-house table.
var farGuidelines = map[design.BuildingType][]farBracket{
	design.IndependentHouse: {
		{0, 1000, 1.2},
		{1000, 2500, 1.0},
		{2500, 5000, 0.8},
		{5000, math.Inf(1), 0.6},
	},
	design.Duplex: {
		{0, 1200, 1.5},
		{1200, 3000, 1.2},
		{3000, math.Inf(1), 1.0},
	},
	design.Villa: {
		{0, 2000, 0.8},
		{2000, 5000, 0.6},
		{5000, math.Inf(1), 0.5},
	},
}

const (
	// farFloorStep is the FAR increase per floor above the first.
	farFloorStep = 0.3

	// farCap bounds the adjusted FAR.
	farCap = 2.5

	// farDefault applies when no bracket matches.
	farDefault = 1.0
)

// FAR computes the recommended Floor Area Ratio for the input. The base
// value comes from the guideline table, is scaled for the floor count, and
// is capped at farCap. Unknown building types use the independent-house
// table; an unmatched bracket yields farDefault.
func FAR(in *design.DesignInput) float64 {
	brackets, ok := farGuidelines[in.BuildingType]
	if !ok {
		brackets = farGuidelines[design.IndependentHouse]
	}

	for _, b := range brackets {
		if in.LandSize >= b.minSize && in.LandSize < b.maxSize {
			multiplier := 1 + float64(in.Floors-1)*farFloorStep
			return math.Min(b.far*multiplier, farCap)
		}
	}
	return farDefault
}

// =============================================================================
// Setbacks
// =============================================================================

// setbackBracket is one land-size band of the setback guideline table.
type setbackBracket struct {
	minSize, maxSize   float64
	front, rear, sides float64
}

// setbackGuidelines holds the setback distances per land-size bracket, in
// feet. The side value applies to both left and right.
var setbackGuidelines = []setbackBracket{
	{0, 1000, 5, 3, 3},
	{1000, 2500, 8, 5, 5},
	{2500, 5000, 10, 8, 6},
	{5000, math.Inf(1), 15, 10, 8},
}

// Setbacks computes the required boundary clearances for the plot. The
// largest bracket doubles as the fallback for any unmatched size.
func Setbacks(in *design.DesignInput) design.Setbacks {
	for _, b := range setbackGuidelines {
		if in.LandSize >= b.minSize && in.LandSize < b.maxSize {
			return design.Setbacks{Front: b.front, Rear: b.rear, Left: b.sides, Right: b.sides}
		}
	}
	return design.Setbacks{Front: 15, Rear: 10, Left: 8, Right: 8}
}

// =============================================================================
// Buildable Envelope
// =============================================================================

// BuildableArea returns the area of the plot remaining after setbacks,
// assuming a square plot. Degenerate plots (setbacks consuming the side)
// yield 0 rather than a negative area.
func BuildableArea(in *design.DesignInput, sb design.Setbacks) float64 {
	side := in.PlotSide()
	length := side - sb.Front - sb.Rear
	width := side - sb.Left - sb.Right
	if length <= 0 || width <= 0 {
		return 0
	}
	return length * width
}

// TotalBuiltArea returns the total constructible area across all floors:
// the lesser of the FAR allowance and the stacked buildable envelope.
func TotalBuiltArea(in *design.DesignInput, far, buildableArea float64) float64 {
	return math.Min(in.LandSize*far, buildableArea*float64(in.Floors))
}
