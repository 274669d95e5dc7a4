package design

import "math"

// DefaultWallThickness is the standard wall thickness in feet (9 inches).
const DefaultWallThickness = 0.75

// positionEpsilon is the threshold below which a negative coordinate is
// treated as floating-point noise and collapsed to zero.
const positionEpsilon = 1e-10

// NormalizePosition stabilizes a layout coordinate. Values within
// positionEpsilon of zero, and any negative value, collapse to exactly 0.0;
// everything else rounds to 6 decimal places. Downstream geometry
// comparisons assume non-negative, stably-rounded coordinates, so every
// computed position must pass through this function.
func NormalizePosition(v float64) float64 {
	rounded := math.Round(v*1e6) / 1e6
	if rounded < 0 {
		return 0.0
	}
	if math.Abs(rounded) < positionEpsilon {
		return 0.0
	}
	return rounded
}

// RoomDimensions is a placed room rectangle: size plus the position of its
// lower-left corner within the building envelope, all in feet.
type RoomDimensions struct {
	Length    float64 `json:"length" bson:"length"`
	Width     float64 `json:"width" bson:"width"`
	XPosition float64 `json:"x_position" bson:"x_position"`
	YPosition float64 `json:"y_position" bson:"y_position"`
}

// NewRoomDimensions builds a room rectangle with normalized positions.
func NewRoomDimensions(length, width, x, y float64) RoomDimensions {
	return RoomDimensions{
		Length:    length,
		Width:     width,
		XPosition: NormalizePosition(x),
		YPosition: NormalizePosition(y),
	}
}

// Area returns the rectangle area in sq.ft.
func (r RoomDimensions) Area() float64 { return r.Length * r.Width }

// Opening kinds for DoorWindow.
const (
	OpeningDoor   = "Door"
	OpeningWindow = "Window"
)

// DoorWindow is a wall opening: a door or window with its size, position,
// and the wall it sits on.
type DoorWindow struct {
	Type      string  `json:"type" bson:"type"`
	Width     float64 `json:"width" bson:"width"`
	Height    float64 `json:"height" bson:"height"`
	XPosition float64 `json:"x_position" bson:"x_position"`
	YPosition float64 `json:"y_position" bson:"y_position"`
	Wall      string  `json:"wall" bson:"wall"`
}

// NewDoorWindow builds an opening with normalized positions.
func NewDoorWindow(kind string, width, height, x, y float64, wall string) DoorWindow {
	return DoorWindow{
		Type:      kind,
		Width:     width,
		Height:    height,
		XPosition: NormalizePosition(x),
		YPosition: NormalizePosition(y),
		Wall:      wall,
	}
}

// Dimensions is the overall footprint of one floor.
type Dimensions struct {
	Length    float64 `json:"length" bson:"length"`
	Width     float64 `json:"width" bson:"width"`
	TotalArea float64 `json:"total_area" bson:"total_area"`
}

// FloorPlan is the concrete 2D layout of one building floor. One instance
// per floor; regenerating a floor produces a new instance, never a mutation.
type FloorPlan struct {
	FloorNumber   int                       `json:"floor_number" bson:"floor_number"`
	Rooms         map[string]RoomDimensions `json:"rooms" bson:"rooms"`
	DoorsWindows  []DoorWindow              `json:"doors_windows" bson:"doors_windows"`
	WallThickness float64                   `json:"wall_thickness" bson:"wall_thickness"`
	Total         Dimensions                `json:"total_dimensions" bson:"total_dimensions"`
}

// RoomNames returns the room keys of the plan in lexical order, for
// deterministic iteration.
func (fp *FloorPlan) RoomNames() []string {
	return orderedRoomNames(roomAreas(fp.Rooms))
}

func roomAreas(rooms map[string]RoomDimensions) map[string]float64 {
	m := make(map[string]float64, len(rooms))
	for name, r := range rooms {
		m[name] = r.Area()
	}
	return m
}
