package layout

import (
	"math"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// Overlap records two rooms whose rectangles intersect, with the shared
// area in sq.ft.
type Overlap struct {
	RoomA string  `json:"room_a"`
	RoomB string  `json:"room_b"`
	Area  float64 `json:"area"`
}

// Overlaps reports every pair of intersecting room rectangles in the plan.
// Touching edges do not count. The report is ordered by room name so the
// same plan always yields the same report. An empty report means the
// placement is clean; a non-empty one is advisory, not an error.
func Overlaps(fp *design.FloorPlan) []Overlap {
	names := fp.RoomNames()

	var report []Overlap
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := fp.Rooms[names[i]], fp.Rooms[names[j]]
			if area := intersection(a, b); area > 0 {
				report = append(report, Overlap{
					RoomA: names[i],
					RoomB: names[j],
					Area:  area,
				})
			}
		}
	}
	return report
}

func intersection(a, b design.RoomDimensions) float64 {
	dx := math.Min(a.XPosition+a.Length, b.XPosition+b.Length) - math.Max(a.XPosition, b.XPosition)
	dy := math.Min(a.YPosition+a.Width, b.YPosition+b.Width) - math.Max(a.YPosition, b.YPosition)
	if dx <= 0 || dy <= 0 {
		return 0
	}
	return dx * dy
}
