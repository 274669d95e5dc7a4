package layout

import (
	"math"
	"testing"

	"github.com/ramisn26/AI-Architect/pkg/calc"
	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
)

func buildDesign(t *testing.T, landSize float64, facing design.FacingDirection, config string, floors int) *design.ArchitecturalDesign {
	t.Helper()

	in := design.DesignInput{
		LandSize:      landSize,
		Facing:        facing,
		BuildingType:  design.IndependentHouse,
		BedroomConfig: config,
		StaircaseType: design.StaircaseStraight,
		Floors:        floors,
	}
	if err := in.Normalize(); err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}

	far := calc.FAR(&in)
	sb := calc.Setbacks(&in)
	built := calc.TotalBuiltArea(&in, far, calc.BuildableArea(&in, sb))

	return &design.ArchitecturalDesign{
		Input:          in,
		FAR:            far,
		Setbacks:       sb,
		RoomAllocation: calc.RoomAllocation(&in, built/float64(floors)),
	}
}

func TestFloorGroundEast(t *testing.T) {
	d := buildDesign(t, 1200, design.FacingEast, "2BHK", 2)
	fp, err := New(nil).Floor(d, 0)
	if err != nil {
		t.Fatalf("Floor() failed: %v", err)
	}

	if fp.FloorNumber != 0 {
		t.Errorf("FloorNumber = %d, want 0", fp.FloorNumber)
	}
	if fp.WallThickness != design.DefaultWallThickness {
		t.Errorf("WallThickness = %v, want %v", fp.WallThickness, design.DefaultWallThickness)
	}

	side := math.Sqrt(1200)
	wantLength := side - d.Setbacks.Front - d.Setbacks.Rear
	wantWidth := side - d.Setbacks.Left - d.Setbacks.Right
	if math.Abs(fp.Total.Length-wantLength) > 1e-9 || math.Abs(fp.Total.Width-wantWidth) > 1e-9 {
		t.Errorf("Total = %+v, want %g x %g", fp.Total, wantLength, wantWidth)
	}

	for _, name := range []string{"living_room", "kitchen", "dining_room", "guest_bedroom", "guest_bathroom", "utility", "staircase"} {
		if _, ok := fp.Rooms[name]; !ok {
			t.Errorf("ground floor missing %q", name)
		}
	}
	for _, name := range []string{"master_bedroom", "family_room", "parking", "pooja_room", "corridors"} {
		if _, ok := fp.Rooms[name]; ok {
			t.Errorf("ground floor must not contain %q", name)
		}
	}

	living := fp.Rooms["living_room"]
	if living.XPosition != 0 || living.YPosition != 0 {
		t.Errorf("living_room at (%g, %g), want front corner", living.XPosition, living.YPosition)
	}
	dining := fp.Rooms["dining_room"]
	if math.Abs(dining.YPosition-living.Width) > 1e-6 {
		t.Errorf("dining_room y = %g, want stacked above living room at %g", dining.YPosition, living.Width)
	}
	kitchen := fp.Rooms["kitchen"]
	if math.Abs(kitchen.XPosition-(wantLength-kitchen.Length)) > 1e-6 {
		t.Errorf("kitchen x = %g, want flush with the rear wall", kitchen.XPosition)
	}
}

func TestFloorUpperEast(t *testing.T) {
	d := buildDesign(t, 1600, design.FacingEast, "3BHK", 2)
	fp, err := New(nil).Floor(d, 1)
	if err != nil {
		t.Fatalf("Floor() failed: %v", err)
	}

	for _, name := range []string{"master_bedroom", "bedroom_2", "master_bathroom", "bathroom_2", "family_room", "balcony", "staircase"} {
		if _, ok := fp.Rooms[name]; !ok {
			t.Errorf("first floor missing %q", name)
		}
	}
	if _, ok := fp.Rooms["kitchen"]; ok {
		t.Error("kitchen must stay on the ground floor")
	}

	master := fp.Rooms["master_bedroom"]
	wantX := fp.Total.Length - master.Length
	wantY := fp.Total.Width - master.Width
	if math.Abs(master.XPosition-design.NormalizePosition(wantX)) > 1e-6 ||
		math.Abs(master.YPosition-design.NormalizePosition(wantY)) > 1e-6 {
		t.Errorf("master_bedroom at (%g, %g), want rear corner (%g, %g)",
			master.XPosition, master.YPosition, wantX, wantY)
	}

	// Family room area follows from the living room share.
	family := fp.Rooms["family_room"]
	want := d.RoomAllocation.LivingRoom * familyRoomShare
	if math.Abs(family.Area()-want) > 1e-6 {
		t.Errorf("family_room area = %g, want %g", family.Area(), want)
	}
}

func TestFloorOutOfRange(t *testing.T) {
	d := buildDesign(t, 1200, design.FacingEast, "2BHK", 1)
	for _, floor := range []int{-1, 1, 5} {
		if _, err := New(nil).Floor(d, floor); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Floor(%d) error = %v, want INVALID_INPUT", floor, err)
		}
	}
}

func TestAllFloors(t *testing.T) {
	d := buildDesign(t, 1600, design.FacingEast, "3BHK", 2)
	plans, err := New(nil).AllFloors(d)
	if err != nil {
		t.Fatalf("AllFloors() failed: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("len(plans) = %d, want 2", len(plans))
	}
	for i, fp := range plans {
		if fp.FloorNumber != i {
			t.Errorf("plans[%d].FloorNumber = %d", i, fp.FloorNumber)
		}
	}
	if _, ok := plans[0].Rooms["kitchen"]; !ok {
		t.Error("ground plan missing kitchen")
	}
	if _, ok := plans[1].Rooms["kitchen"]; ok {
		t.Error("upper plan must not contain kitchen")
	}
}

func TestFacingTransforms(t *testing.T) {
	east := buildDesign(t, 1600, design.FacingEast, "3BHK", 2)
	eastPlan, err := New(nil).Floor(east, 0)
	if err != nil {
		t.Fatalf("Floor() failed: %v", err)
	}

	t.Run("west mirrors east", func(t *testing.T) {
		d := buildDesign(t, 1600, design.FacingWest, "3BHK", 2)
		fp, err := New(nil).Floor(d, 0)
		if err != nil {
			t.Fatalf("Floor() failed: %v", err)
		}
		if len(fp.Rooms) != len(eastPlan.Rooms) {
			t.Fatalf("len(Rooms) = %d, want %d", len(fp.Rooms), len(eastPlan.Rooms))
		}
		for name, e := range eastPlan.Rooms {
			w, ok := fp.Rooms[name]
			if !ok {
				t.Errorf("west plan missing %q", name)
				continue
			}
			if w.Length != e.Length || w.Width != e.Width {
				t.Errorf("%s dims changed under mirror: %+v vs %+v", name, w, e)
			}
			wantX := design.NormalizePosition(fp.Total.Length - e.XPosition - e.Length)
			if math.Abs(w.XPosition-wantX) > 1e-6 {
				t.Errorf("%s x = %g, want %g", name, w.XPosition, wantX)
			}
			if w.YPosition != e.YPosition {
				t.Errorf("%s y = %g, want unchanged %g", name, w.YPosition, e.YPosition)
			}
		}
	})

	t.Run("north rotates and keeps the room set", func(t *testing.T) {
		d := buildDesign(t, 1600, design.FacingNorth, "3BHK", 2)
		fp, err := New(nil).Floor(d, 0)
		if err != nil {
			t.Fatalf("Floor() failed: %v", err)
		}
		if len(fp.Rooms) != len(eastPlan.Rooms) {
			t.Fatalf("len(Rooms) = %d, want %d", len(fp.Rooms), len(eastPlan.Rooms))
		}
		for name := range eastPlan.Rooms {
			if _, ok := fp.Rooms[name]; !ok {
				t.Errorf("north plan missing %q", name)
			}
		}
	})

	t.Run("diagonal facing uses the canonical template", func(t *testing.T) {
		d := buildDesign(t, 1600, design.FacingNortheast, "3BHK", 2)
		fp, err := New(nil).Floor(d, 0)
		if err != nil {
			t.Fatalf("Floor() failed: %v", err)
		}
		for name, e := range eastPlan.Rooms {
			if fp.Rooms[name] != e {
				t.Errorf("%s = %+v, want canonical placement %+v", name, fp.Rooms[name], e)
			}
		}
	})
}

func TestPositionsNormalized(t *testing.T) {
	facings := []design.FacingDirection{
		design.FacingEast, design.FacingWest, design.FacingNorth, design.FacingSouth,
	}
	for _, facing := range facings {
		d := buildDesign(t, 1600, facing, "3BHK", 2)
		for floor := 0; floor < 2; floor++ {
			fp, err := New(nil).Floor(d, floor)
			if err != nil {
				t.Fatalf("Floor(%d) failed for %s: %v", floor, facing, err)
			}
			for name, room := range fp.Rooms {
				for _, v := range []float64{room.XPosition, room.YPosition} {
					if v < 0 {
						t.Errorf("%s/%d/%s has negative position %g", facing, floor, name, v)
					}
					if v != design.NormalizePosition(v) {
						t.Errorf("%s/%d/%s position %g not normalized", facing, floor, name, v)
					}
				}
			}
		}
	}
}

func TestOpenings(t *testing.T) {
	d := buildDesign(t, 1200, design.FacingEast, "2BHK", 1)
	fp, err := New(nil).Floor(d, 0)
	if err != nil {
		t.Fatalf("Floor() failed: %v", err)
	}

	if len(fp.DoorsWindows) == 0 {
		t.Fatal("no openings generated")
	}
	door := fp.DoorsWindows[0]
	if door.Type != design.OpeningDoor || door.Wall != "East" {
		t.Fatalf("first opening = %+v, want the east entrance door", door)
	}
	if door.Width != 3 || door.Height != 7 {
		t.Errorf("door size = %gx%g, want 3x7", door.Width, door.Height)
	}
	if want := design.NormalizePosition(fp.Total.Length * 0.1); door.XPosition != want {
		t.Errorf("door x = %g, want %g", door.XPosition, want)
	}

	var livingWindow, kitchenWindow, guestWindow *design.DoorWindow
	for i := range fp.DoorsWindows {
		dw := &fp.DoorsWindows[i]
		if dw.Type != design.OpeningWindow {
			continue
		}
		switch {
		case dw.Width == 4 && dw.Height == 4:
			livingWindow = dw
		case dw.Width == 2.5 && dw.Height == 3:
			kitchenWindow = dw
		case dw.Width == 3 && dw.Height == 3.5:
			guestWindow = dw
		}
	}
	if livingWindow == nil || livingWindow.Wall != "Front" {
		t.Error("missing 4x4 front window for the living room")
	}
	if kitchenWindow == nil || kitchenWindow.Wall != "Side" {
		t.Error("missing 2.5x3 side window for the kitchen")
	}
	if guestWindow == nil || guestWindow.Wall != "Front" {
		t.Error("missing 3x3.5 front window for the guest bedroom")
	}

	living := fp.Rooms["living_room"]
	if want := design.NormalizePosition(living.XPosition + living.Length/2); livingWindow != nil && livingWindow.XPosition != want {
		t.Errorf("living window x = %g, want room midpoint %g", livingWindow.XPosition, want)
	}
}

func TestOpeningsNoDoorForWest(t *testing.T) {
	d := buildDesign(t, 1200, design.FacingWest, "2BHK", 1)
	fp, err := New(nil).Floor(d, 0)
	if err != nil {
		t.Fatalf("Floor() failed: %v", err)
	}
	for _, dw := range fp.DoorsWindows {
		if dw.Type == design.OpeningDoor {
			t.Errorf("unexpected door in west plan: %+v", dw)
		}
	}
}

func TestFloorRoomsDistribution(t *testing.T) {
	ra := design.RoomAllocation{
		LivingRoom: 200,
		Kitchen:    100,
		Bedrooms: map[string]float64{
			"master_bedroom": 150, "bedroom_2": 130, "bedroom_3": 120,
			"bedroom_4": 110, "bedroom_5": 100,
		},
		Bathrooms: map[string]float64{
			"master_bathroom": 40, "bathroom_2": 30, "bathroom_3": 29,
			"bathroom_4": 28, "bathroom_5": 27, "bathroom_6": 26,
		},
		Balcony:   50,
		Corridors: 60,
		Staircase: 35,
		Utility:   20,
		PoojaRoom: 15,
	}

	ground := roomAreaMap(floorRooms(&ra, 0))
	if ground["guest_bedroom"] != 150 {
		t.Errorf("guest_bedroom = %g, want the first bedroom's 150", ground["guest_bedroom"])
	}
	if ground["guest_bathroom"] != 40 {
		t.Errorf("guest_bathroom = %g, want the first bathroom's 40", ground["guest_bathroom"])
	}
	if ground["dining_room"] != 120 {
		t.Errorf("dining_room = %g, want 0.6 of the living room", ground["dining_room"])
	}
	if ground["corridors"] != 36 {
		t.Errorf("ground corridors = %g, want 36", ground["corridors"])
	}

	first := roomAreaMap(floorRooms(&ra, 1))
	if first["master_bedroom"] != 130 {
		t.Errorf("first floor master = %g, want the second bedroom's 130", first["master_bedroom"])
	}
	if first["bedroom_2"] != 120 {
		t.Errorf("first floor bedroom_2 = %g, want 120", first["bedroom_2"])
	}
	if first["family_room"] != 140 {
		t.Errorf("family_room = %g, want 0.7 of the living room", first["family_room"])
	}
	if first["staircase"] != 28 {
		t.Errorf("first floor staircase = %g, want 0.8 of the ground run", first["staircase"])
	}

	second := roomAreaMap(floorRooms(&ra, 2))
	if second["bedroom_3"] != 110 || second["bedroom_4"] != 100 {
		t.Errorf("second floor bedrooms = %v, want the spillover renumbered from bedroom_3", second)
	}
	if second["bathroom_3"] != 28 || second["bathroom_4"] != 27 || second["bathroom_5"] != 26 {
		t.Errorf("second floor bathrooms = %v, want the spillover renumbered from bathroom_3", second)
	}
	if second["study_room"] != 100 || second["storage"] != 10 {
		t.Errorf("study/storage = %g/%g, want 100/10", second["study_room"], second["storage"])
	}
}

func roomAreaMap(set []roomSpec) map[string]float64 {
	m := make(map[string]float64, len(set))
	for _, r := range set {
		m[r.name] = r.area
	}
	return m
}

func TestStaircaseFootprint(t *testing.T) {
	tests := []struct {
		name   string
		stair  design.StaircaseType
		area   float64
		length float64
		width  float64
	}{
		{name: "straight", stair: design.StaircaseStraight, area: 40, length: 10, width: 4},
		{name: "l-shaped", stair: design.StaircaseLShaped, area: 36, length: 6, width: 6},
		{name: "u-shaped", stair: design.StaircaseUShaped, area: 48, length: 8, width: 6},
		{name: "spiral", stair: design.StaircaseSpiral, area: math.Pi * 9, length: 6, width: 6},
		{name: "winder", stair: design.StaircaseWinder, area: math.Pi * 4, length: 4, width: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, w := staircaseFootprint(tt.area, tt.stair)
			if math.Abs(l-tt.length) > 1e-9 || math.Abs(w-tt.width) > 1e-9 {
				t.Errorf("staircaseFootprint() = %gx%g, want %gx%g", l, w, tt.length, tt.width)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	fp := &design.FloorPlan{
		Rooms: map[string]design.RoomDimensions{
			"kitchen":     {Length: 10, Width: 10, XPosition: 0, YPosition: 0},
			"living_room": {Length: 10, Width: 10, XPosition: 5, YPosition: 5},
			"balcony":     {Length: 4, Width: 4, XPosition: 30, YPosition: 30},
		},
	}

	report := Overlaps(fp)
	if len(report) != 1 {
		t.Fatalf("len(report) = %d, want 1", len(report))
	}
	o := report[0]
	if o.RoomA != "kitchen" || o.RoomB != "living_room" {
		t.Errorf("overlap pair = %s/%s", o.RoomA, o.RoomB)
	}
	if o.Area != 25 {
		t.Errorf("overlap area = %g, want 25", o.Area)
	}
}

func TestOverlapsTouchingEdges(t *testing.T) {
	fp := &design.FloorPlan{
		Rooms: map[string]design.RoomDimensions{
			"kitchen": {Length: 10, Width: 10, XPosition: 0, YPosition: 0},
			"utility": {Length: 10, Width: 10, XPosition: 10, YPosition: 0},
		},
	}
	if report := Overlaps(fp); len(report) != 0 {
		t.Errorf("report = %v, want empty for touching edges", report)
	}
}
