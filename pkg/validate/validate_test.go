package validate

import (
	"strings"
	"testing"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

func input(mutate func(*design.DesignInput)) *design.DesignInput {
	in := &design.DesignInput{
		LandSize:      1200,
		Facing:        design.FacingEast,
		BuildingType:  design.IndependentHouse,
		BedroomConfig: "2BHK",
		StaircaseType: design.StaircaseStraight,
		Floors:        1,
	}
	if mutate != nil {
		mutate(in)
	}
	if err := in.Normalize(); err != nil {
		panic(err)
	}
	return in
}

func TestCheckValidInput(t *testing.T) {
	res := Check(input(nil))

	if !res.Valid {
		t.Fatalf("Check() errors = %v, want valid", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("Errors = %v, want none", res.Errors)
	}
	// Single floor with a staircase draws the ignored-staircase warning.
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "will be ignored") {
		t.Errorf("Warnings = %v, want single ignored-staircase warning", res.Warnings)
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*design.DesignInput)
		wantMsg string
	}{
		{
			name: "villa below minimum plot",
			mutate: func(in *design.DesignInput) {
				in.LandSize = 500
				in.BuildingType = design.Villa
			},
			wantMsg: "too small for Villa",
		},
		{
			name: "excessive bedrooms",
			mutate: func(in *design.DesignInput) {
				in.LandSize = 1000
				in.BedroomConfig = "5BHK"
			},
			wantMsg: "5 bedrooms may not fit comfortably",
		},
		{
			name: "multi-floor without staircase",
			mutate: func(in *design.DesignInput) {
				in.Floors = 2
				in.StaircaseType = ""
			},
			wantMsg: "Staircase type must be specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(input(tt.mutate))
			if res.Valid {
				t.Fatal("Check() = valid, want errors")
			}
			found := false
			for _, e := range res.Errors {
				if strings.Contains(e, tt.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("Errors = %v, want one containing %q", res.Errors, tt.wantMsg)
			}
		})
	}
}

func TestCheckAccumulatesAllErrors(t *testing.T) {
	// Small villa plot with too many bedrooms and a missing staircase
	// must report every violation, not just the first.
	res := Check(input(func(in *design.DesignInput) {
		in.LandSize = 900
		in.BuildingType = design.Villa
		in.BedroomConfig = "5BHK"
		in.Floors = 2
		in.StaircaseType = ""
	}))

	if res.Valid {
		t.Fatal("Check() = valid, want errors")
	}
	if len(res.Errors) != 3 {
		t.Errorf("len(Errors) = %d (%v), want 3 accumulated errors", len(res.Errors), res.Errors)
	}
}

func TestCheckWarnings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*design.DesignInput)
		wantMsg string
	}{
		{
			name: "multi-floor apartment",
			mutate: func(in *design.DesignInput) {
				in.BuildingType = design.Apartment
				in.Floors = 2
			},
			wantMsg: "typically single floor",
		},
		{
			name: "narrow plot",
			mutate: func(in *design.DesignInput) {
				in.LandSize = 390
				in.BuildingType = design.Apartment
				in.BedroomConfig = "1BHK"
			},
			wantMsg: "narrow plot",
		},
		{
			name: "large plot few bedrooms",
			mutate: func(in *design.DesignInput) {
				in.LandSize = 3500
			},
			wantMsg: "Large plot with few bedrooms",
		},
		{
			name: "pool on small plot",
			mutate: func(in *design.DesignInput) {
				in.SpecialRequirements = []string{"Swimming Pool"}
			},
			wantMsg: "too small for Swimming Pool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(input(tt.mutate))
			if !res.Valid {
				t.Fatalf("Check() errors = %v, warnings must not block", res.Errors)
			}
			found := false
			for _, w := range res.Warnings {
				if strings.Contains(w, tt.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("Warnings = %v, want one containing %q", res.Warnings, tt.wantMsg)
			}
		})
	}
}

func TestCheckRoom(t *testing.T) {
	tests := []struct {
		name      string
		room      string
		length    float64
		width     float64
		wantValid bool
		wantWarn  bool
	}{
		{name: "adequate living room", room: "living_room", length: 15, width: 10, wantValid: true},
		{name: "undersized kitchen", room: "kitchen", length: 7, width: 7, wantValid: false},
		{name: "narrow bedroom dimension", room: "bedroom_2", length: 14, width: 6, wantValid: false},
		{name: "excessive aspect ratio", room: "living_room", length: 40, width: 10, wantValid: true, wantWarn: true},
		{name: "unknown room skips size rules", room: "pooja_room", length: 5, width: 5, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckRoom(tt.room, tt.length, tt.width)
			if res.Valid != tt.wantValid {
				t.Errorf("CheckRoom(%s, %g, %g).Valid = %v, want %v (errors: %v)",
					tt.room, tt.length, tt.width, res.Valid, tt.wantValid, res.Errors)
			}
			if tt.wantWarn && len(res.Warnings) == 0 {
				t.Error("expected an aspect-ratio warning")
			}
		})
	}
}
