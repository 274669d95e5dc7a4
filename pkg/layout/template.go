package layout

import (
	"strings"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// =============================================================================
// Canonical East Template
// =============================================================================

// Template anchor fractions of the building envelope.
const (
	anchorGuestWingX  = 0.6  // ground floor bedroom wing
	anchorBathGroundX = 0.45 // ground floor bathroom column
	anchorBathUpperX  = 0.6  // upper floor bathroom column
	anchorBathY       = 0.3
	anchorStairX      = 0.35
	anchorStairY      = 0.5
	anchorParkingY    = 0.7
	anchorFamilyX     = 0.3
	roomGap           = 1.0 // vertical gap between stacked rooms
)

// placedRoom pairs a room name with its positioned rectangle. Slices of
// placedRoom keep the template placement order, which opening generation
// depends on.
type placedRoom struct {
	name string
	dims design.RoomDimensions
}

// placeEast positions the sized rooms on the canonical east-facing
// template. Entrance-side living spaces sit along x=0, the kitchen hugs
// the far wall per the southeast Vastu placement, and wet rooms cluster
// near the center. Missing rooms are skipped; the template only anchors
// what the floor set provides. Corridor area is circulation bookkeeping
// and never becomes a placed rectangle.
func placeEast(boxes []roomBox, buildingLength, buildingWidth float64, floor int) []placedRoom {
	if floor == 0 {
		return placeEastGround(boxes, buildingLength, buildingWidth)
	}
	return placeEastUpper(boxes, buildingLength, buildingWidth)
}

func placeEastGround(boxes []roomBox, buildingLength, buildingWidth float64) []placedRoom {
	var placed []placedRoom
	put := func(name string, b roomBox, x, y float64) {
		placed = append(placed, placedRoom{
			name: name,
			dims: design.NewRoomDimensions(b.length, b.width, x, y),
		})
	}

	// Entrance side: living spaces stacked from the front corner.
	leftY := 0.0
	if b, ok := find(boxes, "living_room"); ok {
		put("living_room", b, 0, leftY)
		leftY += b.width
	}
	if b, ok := find(boxes, "dining_room"); ok {
		put("dining_room", b, 0, leftY)
		leftY += b.width
	}

	// Pooja room takes the northeast corner.
	if b, ok := find(boxes, "pooja_room"); ok {
		put("pooja_room", b, 0, buildingWidth-b.width)
	}

	// Service wing against the rear wall, kitchen in the southeast.
	rightY := 0.0
	if b, ok := find(boxes, "kitchen"); ok {
		put("kitchen", b, buildingLength-b.length, rightY)
		rightY += b.width
	}
	if b, ok := find(boxes, "utility"); ok {
		put("utility", b, buildingLength-b.length, rightY)
		rightY += b.width
	}
	if b, ok := find(boxes, "guest_bedroom"); ok {
		put("guest_bedroom", b, buildingLength*anchorGuestWingX, rightY)
		rightY += b.width
	}

	// Wet rooms cluster centrally, stacked with a gap.
	bathY := buildingWidth * anchorBathY
	for _, b := range boxes {
		if strings.Contains(b.name, "bathroom") {
			put(b.name, b, buildingLength*anchorBathGroundX, bathY)
			bathY += b.width + roomGap
		}
	}

	if b, ok := find(boxes, "staircase"); ok {
		put("staircase", b, buildingLength*anchorStairX, buildingWidth*anchorStairY)
	}
	if b, ok := find(boxes, "parking"); ok {
		put("parking", b, 0, buildingWidth*anchorParkingY)
	}

	return placed
}

func placeEastUpper(boxes []roomBox, buildingLength, buildingWidth float64) []placedRoom {
	var placed []placedRoom
	put := func(name string, b roomBox, x, y float64) {
		placed = append(placed, placedRoom{
			name: name,
			dims: design.NewRoomDimensions(b.length, b.width, x, y),
		})
	}

	// Master suite in the southwest corner per Vastu.
	if b, ok := find(boxes, "master_bedroom"); ok {
		put("master_bedroom", b, buildingLength-b.length, buildingWidth-b.width)
	}

	// Remaining bedrooms stack along the entrance wall.
	bedY := 0.0
	for _, b := range boxes {
		if strings.Contains(b.name, "bedroom") && !strings.Contains(b.name, "master") {
			put(b.name, b, 0, bedY)
			bedY += b.width + roomGap
		}
	}

	if b, ok := find(boxes, "family_room"); ok {
		put("family_room", b, buildingLength*anchorFamilyX, 0)
	}
	if b, ok := find(boxes, "study_room"); ok {
		put("study_room", b, buildingLength*anchorFamilyX, 0)
	}
	if b, ok := find(boxes, "balcony"); ok {
		put("balcony", b, 0, buildingWidth-b.width)
	}

	bathY := buildingWidth * anchorBathY
	for _, b := range boxes {
		if strings.Contains(b.name, "bathroom") {
			put(b.name, b, buildingLength*anchorBathUpperX, bathY)
			bathY += b.width + roomGap
		}
	}

	if b, ok := find(boxes, "staircase"); ok {
		put("staircase", b, buildingLength*anchorStairX, buildingWidth*anchorStairY)
	}
	if b, ok := find(boxes, "storage"); ok {
		put("storage", b, buildingLength-b.length, 0)
	}

	return placed
}

func find(boxes []roomBox, name string) (roomBox, bool) {
	for _, b := range boxes {
		if b.name == name {
			return b, true
		}
	}
	return roomBox{}, false
}

// =============================================================================
// Facing Transforms
// =============================================================================

// mirrorX reflects the east template along the building length for
// west-facing plots: the entrance wall swaps sides while the y axis is
// preserved.
func mirrorX(rooms []placedRoom, buildingLength float64) []placedRoom {
	out := make([]placedRoom, len(rooms))
	for i, r := range rooms {
		out[i] = placedRoom{
			name: r.name,
			dims: design.NewRoomDimensions(
				r.dims.Length, r.dims.Width,
				buildingLength-r.dims.XPosition-r.dims.Length,
				r.dims.YPosition,
			),
		}
	}
	return out
}

// rotate90 turns a template computed on swapped axes into a north-facing
// plan: each rectangle swaps length and width, and the entrance wall moves
// from the east to the north edge.
func rotate90(rooms []placedRoom, buildingWidth float64) []placedRoom {
	out := make([]placedRoom, len(rooms))
	for i, r := range rooms {
		out[i] = placedRoom{
			name: r.name,
			dims: design.NewRoomDimensions(
				r.dims.Width, r.dims.Length,
				r.dims.YPosition,
				buildingWidth-r.dims.XPosition-r.dims.Width,
			),
		}
	}
	return out
}

// mirrorY reflects along the building width; composed with rotate90 it
// yields the south-facing plan.
func mirrorY(rooms []placedRoom, buildingWidth float64) []placedRoom {
	out := make([]placedRoom, len(rooms))
	for i, r := range rooms {
		out[i] = placedRoom{
			name: r.name,
			dims: design.NewRoomDimensions(
				r.dims.Length, r.dims.Width,
				r.dims.XPosition,
				buildingWidth-r.dims.YPosition-r.dims.Width,
			),
		}
	}
	return out
}
