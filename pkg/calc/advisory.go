package calc

import (
	"fmt"
	"strings"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// vastuPrinciple is the directional placement guidance for one facing.
type vastuPrinciple struct {
	mainEntrance  string
	kitchen       string
	masterBedroom string
	poojaRoom     string
	benefits      string
}

// vastuPrinciples covers the four cardinal facings. Diagonal facings fall
// back to the East entry.
var vastuPrinciples = map[design.FacingDirection]vastuPrinciple{
	design.FacingEast: {
		mainEntrance:  "East or Northeast",
		kitchen:       "Southeast",
		masterBedroom: "Southwest",
		poojaRoom:     "Northeast",
		benefits:      "Maximum morning sunlight, positive energy flow",
	},
	design.FacingWest: {
		mainEntrance:  "West or Northwest",
		kitchen:       "Southeast or Northwest",
		masterBedroom: "Southwest",
		poojaRoom:     "Northeast",
		benefits:      "Evening sunlight, good for commercial activities",
	},
	design.FacingNorth: {
		mainEntrance:  "North or Northeast",
		kitchen:       "Southeast",
		masterBedroom: "Southwest",
		poojaRoom:     "Northeast",
		benefits:      "Consistent natural light, wealth and prosperity",
	},
	design.FacingSouth: {
		mainEntrance:  "South or Southeast",
		kitchen:       "Southeast",
		masterBedroom: "Southwest",
		poojaRoom:     "Northeast",
		benefits:      "Stable energy, good for long-term residence",
	},
}

// vastuFor returns the principle table entry for a facing, defaulting to
// East for the diagonal directions.
func vastuFor(facing design.FacingDirection) vastuPrinciple {
	if p, ok := vastuPrinciples[facing]; ok {
		return p
	}
	return vastuPrinciples[design.FacingEast]
}

// StructuralRecommendations derives advisory construction guidance from the
// plot size, floor count, and orientation.
func StructuralRecommendations(in *design.DesignInput) design.StructuralRecommendations {
	foundation := "Mat Foundation or Pile Foundation"
	switch {
	case in.Floors == 1 && in.LandSize < 1500:
		foundation = "Strip Foundation with Plinth Beam"
	case in.Floors <= 2:
		foundation = "Isolated Footing with Tie Beams"
	}

	wall := "9-inch Brick Masonry with Thermal Insulation"
	if in.LandSize < 1000 {
		wall = "9-inch Brick Masonry with Plaster"
	}

	roofing := "RCC Slab with Thermal Insulation and Waterproofing"
	if in.Floors == 1 {
		roofing = "RCC Slab with Waterproofing"
	}

	ventilation := "North-South cross ventilation with clerestory windows"
	if in.Facing == design.FacingEast || in.Facing == design.FacingWest {
		ventilation = "Cross ventilation with East-West openings, avoid afternoon sun"
	}

	light := fmt.Sprintf(
		"Maximize %s facing windows, use light wells for interior spaces",
		strings.ToLower(string(in.Facing)))

	return design.StructuralRecommendations{
		FoundationType:           foundation,
		WallMaterial:             wall,
		RoofingSystem:            roofing,
		VentilationStrategy:      ventilation,
		NaturalLightOptimization: light,
		CirculationFlow:          "Central corridor with direct access to all rooms, separate service and guest circulation",
	}
}

// sustainabilityFeatures is the standard feature list attached to every
// rationale.
var sustainabilityFeatures = []string{
	"Rainwater harvesting system",
	"Solar panel ready rooftop",
	"Natural ventilation to reduce AC load",
	"LED lighting provisions",
	"Waste segregation and composting area",
	"Native landscaping for low maintenance",
}

// DesignRationale assembles the orientation, Vastu, zoning, and expansion
// narrative for the input. The text is advisory; downstream consumers only
// require the fields to be non-empty.
func DesignRationale(in *design.DesignInput) design.DesignRationale {
	vastu := vastuFor(in.Facing)

	ventilation := strings.TrimSpace(fmt.Sprintf(`Optimized for %s orientation:
- Main openings positioned to capture prevailing winds
- Cross ventilation planned for maximum air circulation
- Strategic placement of windows to avoid harsh sunlight
- Natural light maximized during optimal hours`, in.Facing))

	vastuText := strings.TrimSpace(fmt.Sprintf(`Vastu principles applied:
- Main entrance: %s
- Kitchen placement: %s
- Master bedroom: %s
- Pooja room: %s
- Water bodies and utilities positioned as per Vastu guidelines`,
		vastu.mainEntrance, vastu.kitchen, vastu.masterBedroom, vastu.poojaRoom))

	zoning := strings.TrimSpace(`Design complies with:
- Local building bylaws and setback requirements
- Fire safety norms with adequate escape routes
- Parking requirements as per local regulations
- Height restrictions and FAR compliance
- Accessibility guidelines for differently-abled`)

	expansion := strings.TrimSpace(fmt.Sprintf(`Future expansion possibilities:
- Vertical expansion up to %d additional floors
- Horizontal expansion within setback limits
- Provision for additional parking spaces
- Infrastructure ready for solar panels and rainwater harvesting`,
		design.MaxFloors-in.Floors))

	features := make([]string, len(sustainabilityFeatures))
	copy(features, sustainabilityFeatures)

	return design.DesignRationale{
		OrientationBenefits:    vastu.benefits,
		VentilationStrategy:    ventilation,
		VastuCompliance:        vastuText,
		ZoningCompliance:       zoning,
		ExpansionPotential:     expansion,
		SustainabilityFeatures: features,
	}
}
