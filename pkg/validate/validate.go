// Package validate checks design inputs for feasibility before any
// calculation runs.
//
// Validation is a pure function: it accumulates every applicable error and
// warning instead of short-circuiting, and it never fails as control flow for
// malformed-but-parseable input. A Result is valid iff its error list is
// empty; warnings are informational and never block downstream stages.
package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// Minimum plot sizes for different building types, in sq.ft.
var minPlotSizes = map[design.BuildingType]float64{
	design.IndependentHouse: 600,
	design.Duplex:           800,
	design.Villa:            1500,
	design.RowHouse:         400,
	design.Apartment:        300,
}

// defaultMinPlotSize applies when the building type has no table entry.
const defaultMinPlotSize = 600

// Heuristic constants for the feasibility rules.
const (
	// areaPerBedroom is the rule-of-thumb minimum per bedroom including
	// common areas, in sq.ft.
	areaPerBedroom = 300

	// buildableFraction is the share of the plot assumed buildable when
	// checking bedroom count against land size.
	buildableFraction = 0.8

	// narrowPlotSide flags plots whose side falls below this many feet.
	narrowPlotSide = 20

	// largePlotSize triggers the underused-plot warning when paired with
	// fewer than largePlotBedrooms bedrooms.
	largePlotSize     = 3000
	largePlotBedrooms = 3

	// largeAmenityMinPlot is the plot size below which large amenities
	// draw a warning.
	largeAmenityMinPlot = 2000
)

// largeAmenities are special requirements that need substantial plot area.
var largeAmenities = map[string]bool{
	"swimming pool": true,
	"tennis court":  true,
}

// Result is the outcome of a feasibility check.
type Result struct {
	Valid    bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Check validates a normalized design input against the feasibility rules.
// Every rule is evaluated; errors and warnings accumulate in rule order.
func Check(in *design.DesignInput) Result {
	var errs, warns []string

	minSize, ok := minPlotSizes[in.BuildingType]
	if !ok {
		minSize = defaultMinPlotSize
	}
	if in.LandSize < minSize {
		errs = append(errs, fmt.Sprintf(
			"Plot size %g sq.ft is too small for %s. Minimum required: %g sq.ft",
			in.LandSize, in.BuildingType, minSize))
	}

	if bedroomCountExcessive(in.Bedrooms, in.LandSize) {
		errs = append(errs, fmt.Sprintf(
			"%d bedrooms may not fit comfortably in %g sq.ft plot",
			in.Bedrooms, in.LandSize))
	}

	if in.BuildingType == design.Apartment && in.Floors > 1 {
		warns = append(warns,
			"Apartment units are typically single floor. Consider Independent House or Duplex for multi-floor design")
	}

	if in.Floors > 1 && in.StaircaseType == "" {
		errs = append(errs, "Staircase type must be specified for multi-floor buildings")
	}
	if in.Floors == 1 && in.StaircaseType != "" {
		warns = append(warns, "Staircase specified for single floor building - will be ignored")
	}

	// Plot assumed square for feasibility purposes.
	if math.Sqrt(in.LandSize) < narrowPlotSide {
		warns = append(warns, "Very narrow plot may limit design flexibility")
	}

	if in.LandSize > largePlotSize && in.Bedrooms < largePlotBedrooms {
		warns = append(warns, "Large plot with few bedrooms - consider additional amenities or larger rooms")
	}

	for _, req := range in.SpecialRequirements {
		if largeAmenities[strings.ToLower(req)] && in.LandSize < largeAmenityMinPlot {
			warns = append(warns, fmt.Sprintf("Plot may be too small for %s", req))
		}
	}

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

// bedroomCountExcessive reports whether the bedroom count outgrows the plot:
// the per-bedroom area heuristic must fit within the buildable share of the
// land.
func bedroomCountExcessive(bedrooms int, landSize float64) bool {
	return float64(bedrooms)*areaPerBedroom > landSize*buildableFraction
}

// Minimum room dimension requirements keyed by room type substring.
var roomMinimums = []struct {
	key      string
	minArea  float64
	minWidth float64
}{
	{"living room", 120, 10},
	{"master bedroom", 120, 10},
	{"bedroom", 80, 8},
	{"kitchen", 60, 6},
	{"bathroom", 25, 4},
	{"balcony", 30, 4},
}

// maxAspectRatio flags rooms that would feel like corridors.
const maxAspectRatio = 3.0

// CheckRoom validates a single room's dimensions against minimum size and
// proportion requirements. Room names use underscore separators
// (e.g., "master_bedroom").
func CheckRoom(name string, length, width float64) Result {
	var errs, warns []string

	area := length * width
	roomType := strings.ReplaceAll(strings.ToLower(name), "_", " ")

	for _, req := range roomMinimums {
		if !strings.Contains(roomType, req.key) {
			continue
		}
		if area < req.minArea {
			errs = append(errs, fmt.Sprintf(
				"%s area %g sq.ft is below minimum %g sq.ft", name, area, req.minArea))
		}
		if math.Min(length, width) < req.minWidth {
			errs = append(errs, fmt.Sprintf(
				"%s minimum dimension %g ft is below required %g ft",
				name, math.Min(length, width), req.minWidth))
		}
		break
	}

	if aspect := math.Max(length, width) / math.Min(length, width); aspect > maxAspectRatio {
		warns = append(warns, fmt.Sprintf(
			"%s has excessive aspect ratio %.1f:1 - may feel narrow", name, aspect))
	}

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}
