// Package layout turns a computed design into concrete 2D floor plans.
//
// # Pipeline position
//
// The generator sits downstream of the calculator: it consumes the room
// allocation and setbacks of an ArchitecturalDesign and produces one
// FloorPlan per floor, with every room placed as a rectangle inside the
// building envelope.
//
// # How placement works
//
// Generation runs in four stages:
//
//  1. Floor distribution: the whole-building room allocation is split into
//     a per-floor room set (living spaces on the ground floor, bedrooms
//     above, spillover rooms on the top floor).
//  2. Sizing: each room area becomes a length×width rectangle using
//     per-room aspect heuristics, clamped to a 6×4 ft minimum.
//  3. Placement: rooms are positioned on a canonical east-facing template;
//     the other facings are affine transforms of it (mirror for west,
//     quarter rotation for north, rotation plus mirror for south).
//  4. Openings: the entrance door and per-room windows are attached.
//
// Placement is heuristic and may produce overlapping rectangles on cramped
// plots; Overlaps reports them without failing generation.
package layout

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
	"github.com/ramisn26/AI-Architect/pkg/observability"
)

// Generator produces floor plans from architectural designs. The zero
// value is not usable; construct with New.
type Generator struct {
	log *log.Logger
}

// New returns a Generator. A nil logger falls back to log.Default().
func New(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{log: logger}
}

// Floor generates the 2D plan for one floor of the design. Floor numbers
// are zero-based: 0 is the ground floor.
func (g *Generator) Floor(d *design.ArchitecturalDesign, floor int) (*design.FloorPlan, error) {
	if floor < 0 || floor >= d.Input.Floors {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"floor %d out of range: building has %d floor(s)", floor, d.Input.Floors)
	}

	side := d.Input.PlotSide()
	length := side - d.Setbacks.Front - d.Setbacks.Rear
	width := side - d.Setbacks.Left - d.Setbacks.Right

	set := floorRooms(&d.RoomAllocation, floor)
	start := time.Now()
	observability.Design().OnLayoutStart(floor, len(set))
	boxes := roomBoxes(set, length, width, d.Input.StaircaseType)

	var placed []placedRoom
	switch d.Input.Facing {
	case design.FacingWest:
		placed = mirrorX(placeEast(boxes, length, width, floor), length)
	case design.FacingNorth:
		placed = rotate90(placeEast(boxes, width, length, floor), width)
	case design.FacingSouth:
		placed = mirrorY(rotate90(placeEast(boxes, width, length, floor), width), width)
	default:
		// East and the diagonal facings use the canonical template.
		placed = placeEast(boxes, length, width, floor)
	}

	rooms := make(map[string]design.RoomDimensions, len(placed))
	for _, r := range placed {
		rooms[r.name] = r.dims
	}

	fp := &design.FloorPlan{
		FloorNumber:   floor,
		Rooms:         rooms,
		DoorsWindows:  openings(placed, d.Input.Facing, length),
		WallThickness: design.DefaultWallThickness,
		Total: design.Dimensions{
			Length:    length,
			Width:     width,
			TotalArea: length * width,
		},
	}

	if report := Overlaps(fp); len(report) > 0 {
		g.log.Debug("floor plan has overlapping rooms",
			"floor", floor, "overlaps", len(report))
		for _, o := range report {
			g.log.Debug("room overlap", "a", o.RoomA, "b", o.RoomB, "sqft", o.Area)
		}
	}

	observability.Design().OnLayoutComplete(floor, time.Since(start), nil)
	return fp, nil
}

// AllFloors generates plans for every floor of the design, ground floor
// first.
func (g *Generator) AllFloors(d *design.ArchitecturalDesign) ([]design.FloorPlan, error) {
	plans := make([]design.FloorPlan, 0, d.Input.Floors)
	for floor := 0; floor < d.Input.Floors; floor++ {
		fp, err := g.Floor(d, floor)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *fp)
	}
	return plans, nil
}

// =============================================================================
// Floor Distribution
// =============================================================================

// Floor distribution shares. Rooms whose area comes from a whole-building
// allocation are scaled by the share of the building function that lives
// on that floor.
const (
	diningShare       = 0.6 // dining area relative to the living room
	familyRoomShare   = 0.7 // first floor family room relative to the living room
	studyRoomShare    = 0.5 // top floor study relative to the living room
	storageShare      = 0.5 // top floor storage relative to the utility room
	groundCorridors   = 0.6
	firstCorridors    = 0.4
	upperCorridors    = 0.3
	upperStairShare   = 0.8 // the stairwell narrows above the ground run
	upperBedroomStart = 3   // bedrooms past this index land on floor 2+
)

// roomSpec is one named room area before sizing. Order matters: placement
// and opening generation follow the set order, so the set is a slice, not
// a map.
type roomSpec struct {
	name string
	area float64
}

// floorRooms splits the whole-building allocation into the room set for one
// floor. Ground floor holds the common spaces plus a guest bedroom, the
// first floor holds the master suite, and any remaining bedrooms spill onto
// the floor above.
func floorRooms(ra *design.RoomAllocation, floor int) []roomSpec {
	beds := ra.BedroomNames()
	baths := ra.BathroomNames()

	switch {
	case floor == 0:
		set := []roomSpec{
			{"living_room", ra.LivingRoom},
			{"kitchen", ra.Kitchen},
			{"dining_room", ra.LivingRoom * diningShare},
		}
		if len(beds) > 0 {
			set = append(set, roomSpec{"guest_bedroom", ra.Bedrooms[beds[0]]})
		}
		if len(baths) > 0 {
			set = append(set, roomSpec{"guest_bathroom", ra.Bathrooms[baths[0]]})
		}
		set = append(set,
			roomSpec{"corridors", ra.Corridors * groundCorridors},
			roomSpec{"parking", ra.Parking},
			roomSpec{"utility", ra.Utility},
			roomSpec{"pooja_room", ra.PoojaRoom},
		)
		if ra.Staircase > 0 {
			set = append(set, roomSpec{"staircase", ra.Staircase})
		}
		return set

	case floor == 1:
		var set []roomSpec
		if len(beds) > 1 {
			set = append(set, roomSpec{"master_bedroom", ra.Bedrooms[beds[1]]})
		}
		if len(beds) > 2 {
			set = append(set, roomSpec{"bedroom_2", ra.Bedrooms[beds[2]]})
		}
		if len(baths) > 1 {
			set = append(set, roomSpec{"master_bathroom", ra.Bathrooms[baths[1]]})
		}
		if len(baths) > 2 {
			set = append(set, roomSpec{"bathroom_2", ra.Bathrooms[baths[2]]})
		}
		set = append(set,
			roomSpec{"family_room", ra.LivingRoom * familyRoomShare},
			roomSpec{"balcony", ra.Balcony},
			roomSpec{"corridors", ra.Corridors * firstCorridors},
		)
		if ra.Staircase > 0 {
			set = append(set, roomSpec{"staircase", ra.Staircase * upperStairShare})
		}
		return set

	default:
		var set []roomSpec
		for i, name := range tail(beds, upperBedroomStart) {
			set = append(set, roomSpec{
				name: numberedRoom("bedroom", i+upperBedroomStart),
				area: ra.Bedrooms[name],
			})
		}
		for i, name := range tail(baths, upperBedroomStart) {
			set = append(set, roomSpec{
				name: numberedRoom("bathroom", i+upperBedroomStart),
				area: ra.Bathrooms[name],
			})
		}
		set = append(set,
			roomSpec{"study_room", ra.LivingRoom * studyRoomShare},
			roomSpec{"storage", ra.Utility * storageShare},
			roomSpec{"corridors", ra.Corridors * upperCorridors},
		)
		return set
	}
}

func tail(names []string, from int) []string {
	if len(names) <= from {
		return nil
	}
	return names[from:]
}
