package layout

import (
	"strings"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// Standard opening sizes in feet.
const (
	doorWidth  = 3.0
	doorHeight = 7.0

	largeWindowWidth    = 4.0
	largeWindowHeight   = 4.0
	mediumWindowWidth   = 3.0
	mediumWindowHeight  = 3.5
	kitchenWindowWidth  = 2.5
	kitchenWindowHeight = 3.0
)

// entranceDoorOffset places the main door at a tenth of the facade from
// the corner.
const entranceDoorOffset = 0.1

// openings attaches the entrance door and per-room windows. Windows sit at
// the horizontal midpoint of their room's front wall: large panes for the
// living room and master bedroom, medium for other bedrooms, and a small
// one over the kitchen counter on the side wall. Room order follows the
// placement order.
func openings(rooms []placedRoom, facing design.FacingDirection, buildingLength float64) []design.DoorWindow {
	var out []design.DoorWindow

	if facing == design.FacingEast {
		out = append(out, design.NewDoorWindow(design.OpeningDoor,
			doorWidth, doorHeight,
			buildingLength*entranceDoorOffset, 0, "East"))
	}

	for _, r := range rooms {
		mid := r.dims.XPosition + r.dims.Length/2
		switch {
		case r.name == "living_room" || r.name == "master_bedroom":
			out = append(out, design.NewDoorWindow(design.OpeningWindow,
				largeWindowWidth, largeWindowHeight,
				mid, r.dims.YPosition, "Front"))
		case strings.Contains(r.name, "bedroom"):
			out = append(out, design.NewDoorWindow(design.OpeningWindow,
				mediumWindowWidth, mediumWindowHeight,
				mid, r.dims.YPosition, "Front"))
		case r.name == "kitchen":
			out = append(out, design.NewDoorWindow(design.OpeningWindow,
				kitchenWindowWidth, kitchenWindowHeight,
				mid, r.dims.YPosition, "Side"))
		}
	}

	return out
}
