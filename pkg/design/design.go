// Package design defines the data model for parametric residential designs.
//
// The types in this package form the contract between the validator,
// calculator, layout generator, and any external collaborator (CLI, HTTP
// API, storage). All of them are value types: they are compared structurally,
// never by identity, and are not mutated after construction.
//
// # Serialization
//
// Every type carries json and bson tags. The JSON form uses 2-space
// indentation with non-ASCII characters preserved unescaped, and is
// byte-for-byte recoverable: unmarshal(marshal(d)) reproduces d field for
// field. See json.go for the encoding helpers.
package design

import (
	"sort"
	"strconv"
	"strings"
)

// Setbacks are the mandatory clearance distances from each plot boundary,
// in feet. Derived once per design from land size; immutable after creation.
type Setbacks struct {
	Front float64 `json:"front" bson:"front"`
	Rear  float64 `json:"rear" bson:"rear"`
	Left  float64 `json:"left" bson:"left"`
	Right float64 `json:"right" bson:"right"`
}

// RoomAllocation maps functional spaces to their allocated areas in sq.ft.
// Bedrooms and Bathrooms are keyed by room name (master_bedroom, bedroom_2,
// master_bathroom, bathroom_2, ...).
type RoomAllocation struct {
	LivingRoom float64            `json:"living_room" bson:"living_room"`
	Kitchen    float64            `json:"kitchen" bson:"kitchen"`
	Bedrooms   map[string]float64 `json:"bedrooms" bson:"bedrooms"`
	Bathrooms  map[string]float64 `json:"bathrooms" bson:"bathrooms"`
	Balcony    float64            `json:"balcony" bson:"balcony"`
	Corridors  float64            `json:"corridors" bson:"corridors"`
	Staircase  float64            `json:"staircase" bson:"staircase"`
	Parking    float64            `json:"parking" bson:"parking"`
	Utility    float64            `json:"utility" bson:"utility"`
	PoojaRoom  float64            `json:"pooja_room" bson:"pooja_room"`
}

// BedroomNames returns the bedroom keys in canonical order: master_bedroom
// first, then bedroom_2, bedroom_3, ... ascending. Map iteration order is
// not deterministic, so every consumer that cares about "first bedroom"
// semantics must go through this accessor.
func (ra *RoomAllocation) BedroomNames() []string {
	return orderedRoomNames(ra.Bedrooms, "master_bedroom")
}

// BathroomNames returns the bathroom keys in canonical order: the master or
// common bathroom first, then bathroom_2, bathroom_3, ... ascending.
func (ra *RoomAllocation) BathroomNames() []string {
	return orderedRoomNames(ra.Bathrooms, "master_bathroom", "bathroom_1")
}

// orderedRoomNames sorts map keys with the named heads first (in the order
// given) and the numbered remainder ascending by suffix.
func orderedRoomNames(m map[string]float64, heads ...string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	rank := func(name string) (int, int) {
		for i, h := range heads {
			if name == h {
				return i, 0
			}
		}
		idx := len(heads)
		if i := strings.LastIndex(name, "_"); i >= 0 {
			if n, err := strconv.Atoi(name[i+1:]); err == nil {
				return idx, n
			}
		}
		return idx, 0
	}
	sort.Slice(names, func(i, j int) bool {
		hi, ni := rank(names[i])
		hj, nj := rank(names[j])
		if hi != hj {
			return hi < hj
		}
		if ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})
	return names
}

// StructuralRecommendations carries advisory construction guidance derived
// from the input parameters. Free text, part of the output contract.
type StructuralRecommendations struct {
	FoundationType           string `json:"foundation_type" bson:"foundation_type"`
	WallMaterial             string `json:"wall_material" bson:"wall_material"`
	RoofingSystem            string `json:"roofing_system" bson:"roofing_system"`
	VentilationStrategy      string `json:"ventilation_strategy" bson:"ventilation_strategy"`
	NaturalLightOptimization string `json:"natural_light_optimization" bson:"natural_light_optimization"`
	CirculationFlow          string `json:"circulation_flow" bson:"circulation_flow"`
}

// DesignRationale explains the orientation and compliance reasoning behind a
// design. Advisory text only; carries no geometric constraints.
type DesignRationale struct {
	OrientationBenefits    string   `json:"orientation_benefits" bson:"orientation_benefits"`
	VentilationStrategy    string   `json:"ventilation_strategy" bson:"ventilation_strategy"`
	VastuCompliance        string   `json:"vastu_compliance" bson:"vastu_compliance"`
	ZoningCompliance       string   `json:"zoning_compliance" bson:"zoning_compliance"`
	ExpansionPotential     string   `json:"expansion_potential" bson:"expansion_potential"`
	SustainabilityFeatures []string `json:"sustainability_features" bson:"sustainability_features"`
}

// SpaceEfficiency summarizes how well the allocation uses the built area.
// EfficiencyRatio is carpet/built in [0,1]; UtilizationScore is a weighted
// composite in [0,100].
type SpaceEfficiency struct {
	TotalBuiltArea   float64  `json:"total_built_area" bson:"total_built_area"`
	CarpetArea       float64  `json:"carpet_area" bson:"carpet_area"`
	EfficiencyRatio  float64  `json:"efficiency_ratio" bson:"efficiency_ratio"`
	UtilizationScore float64  `json:"utilization_score" bson:"utilization_score"`
	Recommendations  []string `json:"recommendations" bson:"recommendations"`
}

// ArchitecturalDesign is the aggregate produced by one design generation.
// Created once by the designer; immutable thereafter.
type ArchitecturalDesign struct {
	Input             DesignInput               `json:"input_parameters" bson:"input_parameters"`
	FAR               float64                   `json:"far_recommendation" bson:"far_recommendation"`
	Setbacks          Setbacks                  `json:"setbacks" bson:"setbacks"`
	RoomAllocation    RoomAllocation            `json:"room_allocation" bson:"room_allocation"`
	Structural        StructuralRecommendations `json:"structural_recommendations" bson:"structural_recommendations"`
	Rationale         DesignRationale           `json:"design_rationale" bson:"design_rationale"`
	SpaceEfficiency   SpaceEfficiency           `json:"space_efficiency" bson:"space_efficiency"`
	TotalCostEstimate float64                   `json:"total_cost_estimate,omitempty" bson:"total_cost_estimate,omitempty"`
	TimelineEstimate  string                    `json:"timeline_estimate,omitempty" bson:"timeline_estimate,omitempty"`
}
