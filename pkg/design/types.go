package design

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ramisn26/AI-Architect/pkg/errors"
)

// =============================================================================
// Enumerations - Single Source of Truth
// =============================================================================

// FacingDirection is the compass orientation of the plot entrance.
type FacingDirection string

// The eight supported facing directions.
const (
	FacingNorth     FacingDirection = "North"
	FacingSouth     FacingDirection = "South"
	FacingEast      FacingDirection = "East"
	FacingWest      FacingDirection = "West"
	FacingNortheast FacingDirection = "Northeast"
	FacingNorthwest FacingDirection = "Northwest"
	FacingSoutheast FacingDirection = "Southeast"
	FacingSouthwest FacingDirection = "Southwest"
)

// FacingDirections lists all valid facing directions.
var FacingDirections = []FacingDirection{
	FacingNorth, FacingSouth, FacingEast, FacingWest,
	FacingNortheast, FacingNorthwest, FacingSoutheast, FacingSouthwest,
}

// Valid reports whether d is one of the eight supported directions.
func (d FacingDirection) Valid() bool {
	for _, v := range FacingDirections {
		if d == v {
			return true
		}
	}
	return false
}

// BuildingType is the residential building category.
type BuildingType string

// The five supported building types.
const (
	IndependentHouse BuildingType = "Independent House"
	RowHouse         BuildingType = "Row House"
	Duplex           BuildingType = "Duplex"
	Villa            BuildingType = "Villa"
	Apartment        BuildingType = "Apartment"
)

// BuildingTypes lists all valid building types.
var BuildingTypes = []BuildingType{
	IndependentHouse, RowHouse, Duplex, Villa, Apartment,
}

// Valid reports whether b is a supported building type.
func (b BuildingType) Valid() bool {
	for _, v := range BuildingTypes {
		if b == v {
			return true
		}
	}
	return false
}

// StaircaseType is the staircase geometry for multi-floor buildings.
type StaircaseType string

// The five supported staircase types.
const (
	StaircaseStraight StaircaseType = "Straight"
	StaircaseLShaped  StaircaseType = "L-Shaped"
	StaircaseUShaped  StaircaseType = "U-Shaped"
	StaircaseSpiral   StaircaseType = "Spiral"
	StaircaseWinder   StaircaseType = "Winder"
)

// StaircaseTypes lists all valid staircase types.
var StaircaseTypes = []StaircaseType{
	StaircaseStraight, StaircaseLShaped, StaircaseUShaped,
	StaircaseSpiral, StaircaseWinder,
}

// Valid reports whether s is a supported staircase type.
func (s StaircaseType) Valid() bool {
	for _, v := range StaircaseTypes {
		if s == v {
			return true
		}
	}
	return false
}

// =============================================================================
// DesignInput - Caller-Supplied Parameters
// =============================================================================

// MinBedrooms and MaxBedrooms bound the supported bedroom configurations.
const (
	MinBedrooms = 1
	MaxBedrooms = 5
)

// MinFloors and MaxFloors bound the supported floor counts.
const (
	MinFloors = 1
	MaxFloors = 3
)

// DesignInput holds the high-level parameters a design is generated from.
// Inputs are treated as immutable once Normalize has been called; all
// downstream computations are pure functions of this record.
//
// Bedrooms is the typed bedroom count derived once from BedroomConfig at the
// parse boundary. BedroomConfig keeps the display label (e.g., "3BHK").
type DesignInput struct {
	LandSize            float64         `json:"land_size" bson:"land_size"`
	Facing              FacingDirection `json:"facing" bson:"facing"`
	BuildingType        BuildingType    `json:"building_type" bson:"building_type"`
	BedroomConfig       string          `json:"bedroom_config" bson:"bedroom_config"`
	Bedrooms            int             `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	StaircaseType       StaircaseType   `json:"staircase_type,omitempty" bson:"staircase_type,omitempty"`
	Floors              int             `json:"floors" bson:"floors"`
	BudgetRange         string          `json:"budget_range,omitempty" bson:"budget_range,omitempty"`
	SpecialRequirements []string        `json:"special_requirements,omitempty" bson:"special_requirements,omitempty"`
}

// ParseBedroomConfig extracts the bedroom count from a "<n>BHK" label.
// The count must be between MinBedrooms and MaxBedrooms.
func ParseBedroomConfig(label string) (int, error) {
	if !strings.HasSuffix(label, "BHK") {
		return 0, errors.New(errors.ErrCodeInvalidBedrooms,
			"bedroom configuration must end with BHK, got %q", label)
	}
	n, err := strconv.Atoi(strings.TrimSuffix(label, "BHK"))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidBedrooms,
			"invalid bedroom configuration format: %q", label)
	}
	if n < MinBedrooms || n > MaxBedrooms {
		return 0, errors.New(errors.ErrCodeInvalidBedrooms,
			"number of bedrooms must be between %d and %d, got %d", MinBedrooms, MaxBedrooms, n)
	}
	return n, nil
}

// Normalize validates the input record and derives typed fields from their
// string encodings. It must be called once at the boundary before the input
// is handed to the calculator or layout generator.
func (in *DesignInput) Normalize() error {
	if in.LandSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"land size must be positive, got %g", in.LandSize)
	}
	if !in.Facing.Valid() {
		return errors.New(errors.ErrCodeInvalidFacing,
			"unknown facing direction %q", in.Facing)
	}
	if !in.BuildingType.Valid() {
		return errors.New(errors.ErrCodeInvalidBuilding,
			"unknown building type %q", in.BuildingType)
	}
	if in.StaircaseType != "" && !in.StaircaseType.Valid() {
		return errors.New(errors.ErrCodeInvalidStaircase,
			"unknown staircase type %q", in.StaircaseType)
	}
	if in.Floors == 0 {
		in.Floors = MinFloors
	}
	if in.Floors < MinFloors || in.Floors > MaxFloors {
		return errors.New(errors.ErrCodeInvalidInput,
			"floors must be between %d and %d, got %d", MinFloors, MaxFloors, in.Floors)
	}
	n, err := ParseBedroomConfig(in.BedroomConfig)
	if err != nil {
		return err
	}
	if in.Bedrooms != 0 && in.Bedrooms != n {
		return errors.New(errors.ErrCodeInvalidBedrooms,
			"bedroom count %d does not match configuration %q", in.Bedrooms, in.BedroomConfig)
	}
	in.Bedrooms = n
	return nil
}

// PlotSide returns the side length of the plot, assuming a square plot.
func (in *DesignInput) PlotSide() float64 {
	return math.Sqrt(in.LandSize)
}

// String returns a short human-readable summary of the input.
func (in *DesignInput) String() string {
	return fmt.Sprintf("%s %s, %.0f sq.ft, %s facing, %d floor(s)",
		in.BedroomConfig, in.BuildingType, in.LandSize, in.Facing, in.Floors)
}
