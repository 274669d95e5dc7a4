package designer

import (
	"context"
	stderrors "errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
	"github.com/ramisn26/AI-Architect/pkg/store"
)

func validInput() design.DesignInput {
	return design.DesignInput{
		LandSize:      1200,
		Facing:        design.FacingEast,
		BuildingType:  design.IndependentHouse,
		BedroomConfig: "2BHK",
		StaircaseType: design.StaircaseStraight,
		Floors:        2,
	}
}

func TestGenerateDesign(t *testing.T) {
	ctx := context.Background()
	d, err := New().GenerateDesign(ctx, validInput())
	if err != nil {
		t.Fatalf("GenerateDesign() failed: %v", err)
	}

	if d.Input.Bedrooms != 2 {
		t.Errorf("Bedrooms = %d, want derived 2", d.Input.Bedrooms)
	}
	if math.Abs(d.FAR-1.3) > 1e-9 {
		t.Errorf("FAR = %v, want 1.3 (1.0 base, two floors)", d.FAR)
	}
	want := design.Setbacks{Front: 8, Rear: 5, Left: 5, Right: 5}
	if d.Setbacks != want {
		t.Errorf("Setbacks = %+v, want %+v", d.Setbacks, want)
	}

	side := math.Sqrt(1200)
	buildable := (side - 13) * (side - 10)
	built := math.Min(1200*1.3, buildable*2)
	if wantLiving := built / 2 * 0.25; math.Abs(d.RoomAllocation.LivingRoom-wantLiving) > wantLiving*0.1 {
		t.Errorf("LivingRoom = %v, want within 10%% of %v", d.RoomAllocation.LivingRoom, wantLiving)
	}
	if len(d.RoomAllocation.Bedrooms) != 2 {
		t.Errorf("len(Bedrooms) = %d, want 2", len(d.RoomAllocation.Bedrooms))
	}

	if d.TotalCostEstimate <= 0 {
		t.Error("TotalCostEstimate must be positive")
	}
	if d.TimelineEstimate == "" {
		t.Error("TimelineEstimate must not be empty")
	}
	if d.SpaceEfficiency.UtilizationScore < 0 || d.SpaceEfficiency.UtilizationScore > 100 {
		t.Errorf("UtilizationScore = %v out of range", d.SpaceEfficiency.UtilizationScore)
	}
	if d.Structural.FoundationType == "" || d.Rationale.VastuCompliance == "" {
		t.Error("advisory sections must be populated")
	}
}

func TestGenerateDesignInfeasible(t *testing.T) {
	ctx := context.Background()
	in := design.DesignInput{
		LandSize:      500,
		Facing:        design.FacingEast,
		BuildingType:  design.Villa,
		BedroomConfig: "2BHK",
		Floors:        1,
	}

	_, err := New().GenerateDesign(ctx, in)
	if err == nil {
		t.Fatal("GenerateDesign() succeeded for an infeasible input")
	}

	var fe *errors.FeasibilityError
	if !stderrors.As(err, &fe) {
		t.Fatalf("error = %T, want *errors.FeasibilityError", err)
	}
	if len(fe.Errors) == 0 {
		t.Fatal("FeasibilityError carries no messages")
	}
	found := false
	for _, msg := range fe.Errors {
		if strings.Contains(msg, "too small for Villa") {
			found = true
		}
	}
	if !found {
		t.Errorf("FeasibilityError = %v, want the villa minimum plot message", fe.Errors)
	}
}

func TestGenerateDesignInvalidInput(t *testing.T) {
	ctx := context.Background()
	in := validInput()
	in.Facing = "Up"

	_, err := New().GenerateDesign(ctx, in)
	if !errors.Is(err, errors.ErrCodeInvalidFacing) {
		t.Errorf("error = %v, want INVALID_FACING", err)
	}
}

func TestGenerateDesignCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().GenerateDesign(ctx, validInput()); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGenerateAllFloorPlans(t *testing.T) {
	ctx := context.Background()
	des := New()
	d, err := des.GenerateDesign(ctx, validInput())
	if err != nil {
		t.Fatalf("GenerateDesign() failed: %v", err)
	}

	plans, err := des.GenerateAllFloorPlans(d)
	if err != nil {
		t.Fatalf("GenerateAllFloorPlans() failed: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("len(plans) = %d, want 2", len(plans))
	}

	if _, ok := plans[0].Rooms["kitchen"]; !ok {
		t.Error("ground floor missing kitchen")
	}
	if _, ok := plans[1].Rooms["kitchen"]; ok {
		t.Error("kitchen must only appear on the ground floor")
	}
	if _, ok := plans[1].Rooms["master_bedroom"]; !ok {
		t.Error("first floor missing master bedroom")
	}

	// Living room rectangle should track its allocated area closely.
	living, ok := plans[0].Rooms["living_room"]
	if !ok {
		t.Fatal("ground floor missing living room")
	}
	want := d.RoomAllocation.LivingRoom
	if diff := math.Abs(living.Area()-want) / want; diff > 0.1 {
		t.Errorf("living room area %v deviates %v%% from allocation %v", living.Area(), diff*100, want)
	}
}

func TestGenerateFloorPlanOutOfRange(t *testing.T) {
	ctx := context.Background()
	des := New()
	d, err := des.GenerateDesign(ctx, validInput())
	if err != nil {
		t.Fatalf("GenerateDesign() failed: %v", err)
	}
	if _, err := des.GenerateFloorPlan(d, 2); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	des := New(WithStore(store.NewMemory()))

	d, err := des.GenerateDesign(ctx, validInput())
	if err != nil {
		t.Fatalf("GenerateDesign() failed: %v", err)
	}

	id, err := des.Save(ctx, d)
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := des.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(got, d) {
		t.Error("Load() returned a different design than saved")
	}
}

func TestSaveWithoutStore(t *testing.T) {
	ctx := context.Background()
	des := New()
	d, err := des.GenerateDesign(ctx, validInput())
	if err != nil {
		t.Fatalf("GenerateDesign() failed: %v", err)
	}
	if _, err := des.Save(ctx, d); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Save() error = %v, want INTERNAL_ERROR", err)
	}
}

func TestCostRateOverride(t *testing.T) {
	ctx := context.Background()
	in := validInput()

	base, err := New().GenerateDesign(ctx, in)
	if err != nil {
		t.Fatalf("GenerateDesign() failed: %v", err)
	}

	doubled, err := New(WithCostRates(map[design.BuildingType]float64{
		design.IndependentHouse: 3600,
	})).GenerateDesign(ctx, in)
	if err != nil {
		t.Fatalf("GenerateDesign() failed: %v", err)
	}

	if math.Abs(doubled.TotalCostEstimate-2*base.TotalCostEstimate) > 1e-6 {
		t.Errorf("cost with doubled rate = %v, want %v", doubled.TotalCostEstimate, 2*base.TotalCostEstimate)
	}
}
