package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// Minimum practical room dimensions in feet. Clamping can inflate the
// rectangle past the allocated area on very small rooms; a usable room
// beats exact area accounting.
const (
	minRoomLength = 6.0
	minRoomWidth  = 4.0
)

// Aspect multipliers: length = sqrt(area × multiplier), width = area/length.
// Values above 1 stretch the room along the building length.
const (
	aspectLiving    = 1.5
	aspectKitchen   = 1.2
	aspectMaster    = 1.1
	aspectBathroom  = 0.8
	aspectDining    = 1.3
	aspectStaircase = 2.0
)

// Envelope caps keep the dominant rooms from spanning the whole building.
const (
	livingLengthCap = 0.6 // of building length
	kitchenWidthCap = 0.4 // of building width
)

// roomBox is a sized but not yet positioned room rectangle.
type roomBox struct {
	name   string
	length float64
	width  float64
}

// roomBoxes sizes each room of the set. Zero-area rooms are dropped here;
// the set order is preserved. Name matching runs top to bottom, so
// "master_bathroom" sizes as a master room, not a bathroom, which keeps the
// master suite visually dominant.
func roomBoxes(set []roomSpec, buildingLength, buildingWidth float64, stair design.StaircaseType) []roomBox {
	boxes := make([]roomBox, 0, len(set))
	for _, r := range set {
		if r.area <= 0 {
			continue
		}

		var length float64
		switch {
		case strings.Contains(r.name, "living") || strings.Contains(r.name, "family"):
			length = math.Min(math.Sqrt(r.area*aspectLiving), buildingLength*livingLengthCap)
		case strings.Contains(r.name, "kitchen"):
			length = math.Min(math.Sqrt(r.area*aspectKitchen), buildingWidth*kitchenWidthCap)
		case strings.Contains(r.name, "bedroom") || strings.Contains(r.name, "master"):
			if strings.Contains(r.name, "master") {
				length = math.Sqrt(r.area * aspectMaster)
			} else {
				length = math.Sqrt(r.area)
			}
		case strings.Contains(r.name, "bathroom"):
			length = math.Sqrt(r.area * aspectBathroom)
		case strings.Contains(r.name, "dining"):
			length = math.Sqrt(r.area * aspectDining)
		case strings.Contains(r.name, "staircase"):
			l, w := staircaseFootprint(r.area, stair)
			boxes = append(boxes, clampBox(r.name, l, w))
			continue
		default:
			length = math.Sqrt(r.area)
		}

		boxes = append(boxes, clampBox(r.name, length, r.area/length))
	}
	return boxes
}

// Fixed run widths for the linear staircase shapes, in feet.
const (
	straightStairWidth = 4.0
	uShapedStairWidth  = 6.0
)

// staircaseFootprint sizes the stairwell by staircase type: straight and
// U-shaped runs have a fixed width, L-shaped wells are square, and spiral
// or winder stairs occupy the bounding square of their circle. An invalid
// type falls back to the generic narrow-rectangle heuristic.
func staircaseFootprint(area float64, stair design.StaircaseType) (length, width float64) {
	switch stair {
	case design.StaircaseStraight:
		return area / straightStairWidth, straightStairWidth
	case design.StaircaseLShaped:
		side := math.Sqrt(area)
		return side, side
	case design.StaircaseUShaped:
		return area / uShapedStairWidth, uShapedStairWidth
	case design.StaircaseSpiral, design.StaircaseWinder:
		d := 2 * math.Sqrt(area/math.Pi)
		return d, d
	default:
		length = math.Sqrt(area * aspectStaircase)
		return length, area / length
	}
}

func clampBox(name string, length, width float64) roomBox {
	return roomBox{
		name:   name,
		length: math.Max(length, minRoomLength),
		width:  math.Max(width, minRoomWidth),
	}
}

func numberedRoom(base string, n int) string {
	return fmt.Sprintf("%s_%d", base, n)
}
