package calc

// RoomStandard is the recommended size band for a room type, in sq.ft.
type RoomStandard struct {
	Min     float64
	Optimal float64
	Max     float64
}

// RoomStandards holds the standard size recommendations used for minimum
// enforcement and efficiency scoring. The corridor entry is a width in feet,
// not an area.
var RoomStandards = map[string]RoomStandard{
	"living_room":    {Min: 120, Optimal: 200, Max: 350},
	"master_bedroom": {Min: 120, Optimal: 150, Max: 200},
	"bedroom":        {Min: 80, Optimal: 120, Max: 150},
	"kitchen":        {Min: 60, Optimal: 100, Max: 150},
	"bathroom":       {Min: 25, Optimal: 40, Max: 60},
	"balcony":        {Min: 30, Optimal: 50, Max: 100},
	"corridor":       {Min: 3, Optimal: 4, Max: 6},
	"staircase":      {Min: 25, Optimal: 35, Max: 50},
	"parking":        {Min: 120, Optimal: 150, Max: 200},
}
