package calc

import (
	"fmt"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// Allocation percentages of the per-floor available area.
const (
	pctLiving          = 0.25
	pctLivingSingle    = 0.30 // 1-bedroom designs get a larger hall
	pctKitchen         = 0.12
	pctMaster          = 0.18
	pctMasterSingle    = 0.25
	pctOtherBedroom    = 0.15 // per bedroom beyond the master
	pctBathroomPerUnit = 0.08 // one common bathroom plus one per bedroom
	pctBalcony         = 0.08
	pctCorridors       = 0.10
	pctStaircase       = 0.04 // only when floors > 1
	pctUtility         = 0.03
)

// masterBathroomShare is the master bathroom's cut of the total bathroom
// area in multi-bedroom designs; the remaining bathrooms split the rest
// evenly.
const masterBathroomShare = 0.4

// RoomAllocation splits the available per-floor area into named room areas
// using fixed percentage heuristics. Living room and kitchen are clamped to
// their standard minimums even when the percentage split would produce less.
func RoomAllocation(in *design.DesignInput, availableArea float64) design.RoomAllocation {
	bedrooms := in.Bedrooms

	livingPct := pctLiving
	masterPct := pctMaster
	if bedrooms == 1 {
		livingPct = pctLivingSingle
		masterPct = pctMasterSingle
	}

	bedroomAreas := make(map[string]float64, bedrooms)
	bedroomAreas["master_bedroom"] = availableArea * masterPct
	if bedrooms > 1 {
		otherTotal := availableArea * pctOtherBedroom * float64(bedrooms-1)
		each := otherTotal / float64(bedrooms-1)
		for i := 2; i <= bedrooms; i++ {
			bedroomAreas[fmt.Sprintf("bedroom_%d", i)] = each
		}
	}

	bathroomAreas := bathroomSplit(bedrooms, availableArea*pctBathroomPerUnit*float64(bedrooms+1))

	staircase := 0.0
	if in.Floors > 1 {
		staircase = availableArea * pctStaircase
	}

	return design.RoomAllocation{
		LivingRoom: clampMin(availableArea*livingPct, RoomStandards["living_room"].Min),
		Kitchen:    clampMin(availableArea*pctKitchen, RoomStandards["kitchen"].Min),
		Bedrooms:   bedroomAreas,
		Bathrooms:  bathroomAreas,
		Balcony:    availableArea * pctBalcony,
		Corridors:  availableArea * pctCorridors,
		Staircase:  staircase,
		Parking:    0, // allocated separately when required
		Utility:    availableArea * pctUtility,
	}
}

// bathroomSplit distributes the total bathroom area. Single-bedroom designs
// get one bathroom with the whole allowance; otherwise the master bathroom
// takes masterBathroomShare and the remaining bathrooms (one common plus one
// per additional bedroom) split the rest evenly.
func bathroomSplit(bedrooms int, totalArea float64) map[string]float64 {
	if bedrooms <= 1 {
		return map[string]float64{"bathroom_1": totalArea}
	}

	count := bedrooms + 1
	areas := make(map[string]float64, count)
	areas["master_bathroom"] = totalArea * masterBathroomShare
	remaining := totalArea * (1 - masterBathroomShare)
	each := remaining / float64(count-1)
	for i := 2; i <= count; i++ {
		areas[fmt.Sprintf("bathroom_%d", i)] = each
	}
	return areas
}

func clampMin(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}
