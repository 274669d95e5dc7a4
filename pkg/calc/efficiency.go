package calc

import (
	"strings"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// Utilization score weights. The four components sum to 100.
const (
	weightEfficiency  = 40
	weightRoomSizes   = 30
	weightCirculation = 20
	weightBalance     = 10
)

// Circulation ratio bands: corridors over the total of bedrooms, living
// room, and kitchen.
const (
	circulationOptimalLow   = 0.08
	circulationOptimalHigh  = 0.15
	circulationTolerableLow = 0.05
	circulationTolerableMax = 0.20
)

// SpaceEfficiency computes carpet area, efficiency ratio, and the weighted
// utilization score for a room allocation against its total built area.
// A zero built area yields a zero ratio rather than an error.
func SpaceEfficiency(in *design.DesignInput, ra *design.RoomAllocation, totalBuiltArea float64) design.SpaceEfficiency {
	carpet := ra.LivingRoom + ra.Kitchen + ra.Balcony + ra.Utility
	for _, area := range ra.Bedrooms {
		carpet += area
	}

	ratio := 0.0
	if totalBuiltArea > 0 {
		ratio = carpet / totalBuiltArea
	}

	score := utilizationScore(in, ra, ratio)

	return design.SpaceEfficiency{
		TotalBuiltArea:   totalBuiltArea,
		CarpetArea:       carpet,
		EfficiencyRatio:  ratio,
		UtilizationScore: score,
		Recommendations:  efficiencyRecommendations(ratio, score, ra),
	}
}

// utilizationScore is a weighted composite in [0,100]: efficiency-ratio tier
// (40%), room-size fit (30%), circulation ratio (20%), and bedroom size
// balance (10%).
func utilizationScore(in *design.DesignInput, ra *design.RoomAllocation, ratio float64) float64 {
	score := 0.0

	// Efficiency ratio tier.
	switch {
	case ratio >= 0.75:
		score += weightEfficiency
	case ratio >= 0.65:
		score += 30
	case ratio >= 0.55:
		score += 20
	default:
		score += 10
	}

	// Room size fit: partial credit per room within its standard band.
	roomScore := 0.0
	if std := RoomStandards["living_room"]; within(ra.LivingRoom, std) {
		roomScore += 10
	}
	for name, area := range ra.Bedrooms {
		std := RoomStandards["bedroom"]
		if strings.Contains(strings.ToLower(name), "master") {
			std = RoomStandards["master_bedroom"]
		}
		if within(area, std) {
			roomScore += 10 / float64(len(ra.Bedrooms))
		}
	}
	if std := RoomStandards["kitchen"]; within(ra.Kitchen, std) {
		roomScore += 10
	}
	if roomScore > weightRoomSizes {
		roomScore = weightRoomSizes
	}
	score += roomScore

	// Circulation efficiency.
	cr := circulationRatio(ra)
	switch {
	case cr >= circulationOptimalLow && cr <= circulationOptimalHigh:
		score += weightCirculation
	case cr >= circulationTolerableLow && cr <= circulationTolerableMax:
		score += 15
	default:
		score += 5
	}

	// Bedroom size balance. Single-bedroom designs get full credit.
	if in.Bedrooms > 1 && len(ra.Bedrooms) > 1 {
		minA, maxA := bedroomSpread(ra.Bedrooms)
		switch spread := maxA - minA; {
		case spread <= 30:
			score += weightBalance
		case spread <= 50:
			score += 7
		default:
			score += 3
		}
	} else {
		score += weightBalance
	}

	if score > 100 {
		score = 100
	}
	return score
}

// efficiencyRecommendations lists actionable suggestions for threshold
// breaches, with a default optimal message when none apply.
func efficiencyRecommendations(ratio, score float64, ra *design.RoomAllocation) []string {
	var recs []string

	if ratio < 0.60 {
		recs = append(recs,
			"Consider reducing corridor width to increase usable area",
			"Optimize wall thickness and structural elements")
	}
	if score < 70 {
		recs = append(recs,
			"Review room sizes against functional requirements",
			"Consider multi-functional spaces to improve efficiency")
	}

	livingStd := RoomStandards["living_room"]
	if ra.LivingRoom > livingStd.Max {
		recs = append(recs, "Living room is oversized - consider creating a separate dining area")
	}
	if ra.LivingRoom < livingStd.Min {
		recs = append(recs, "Living room is undersized - consider expanding or combining with dining")
	}

	kitchenStd := RoomStandards["kitchen"]
	if ra.Kitchen > kitchenStd.Max {
		recs = append(recs, "Kitchen is oversized - consider adding utility area or breakfast counter")
	}
	if ra.Kitchen < kitchenStd.Min {
		recs = append(recs, "Kitchen is undersized - consider L-shaped or parallel layout")
	}

	switch cr := circulationRatio(ra); {
	case cr > circulationTolerableMax:
		recs = append(recs, "Excessive circulation space - consider open plan layout")
	case cr < circulationTolerableLow:
		recs = append(recs, "Insufficient circulation space - ensure adequate passage width")
	}

	if len(recs) == 0 {
		recs = append(recs, "Space utilization is optimal for the given requirements")
	}
	return recs
}

// circulationRatio is corridors over the combined area of bedrooms, living
// room, and kitchen. Zero total area yields 0.
func circulationRatio(ra *design.RoomAllocation) float64 {
	total := ra.LivingRoom + ra.Kitchen
	for _, area := range ra.Bedrooms {
		total += area
	}
	if total <= 0 {
		return 0
	}
	return ra.Corridors / total
}

func bedroomSpread(bedrooms map[string]float64) (minA, maxA float64) {
	first := true
	for _, area := range bedrooms {
		if first {
			minA, maxA = area, area
			first = false
			continue
		}
		if area < minA {
			minA = area
		}
		if area > maxA {
			maxA = area
		}
	}
	return minA, maxA
}

func within(area float64, std RoomStandard) bool {
	return area >= std.Min && area <= std.Max
}
