package design

import (
	"math"
	"reflect"
	"testing"

	"github.com/ramisn26/AI-Architect/pkg/errors"
)

func TestParseBedroomConfig(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    int
		wantErr bool
	}{
		{name: "one bedroom", label: "1BHK", want: 1},
		{name: "three bedrooms", label: "3BHK", want: 3},
		{name: "five bedrooms", label: "5BHK", want: 5},
		{name: "zero bedrooms", label: "0BHK", wantErr: true},
		{name: "too many bedrooms", label: "6BHK", wantErr: true},
		{name: "missing suffix", label: "3BH", wantErr: true},
		{name: "not a number", label: "xBHK", wantErr: true},
		{name: "empty", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBedroomConfig(tt.label)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBedroomConfig(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidBedrooms) {
					t.Errorf("error code = %q, want INVALID_BEDROOM_CONFIG", errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseBedroomConfig(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestDesignInputNormalize(t *testing.T) {
	valid := func() DesignInput {
		return DesignInput{
			LandSize:      1200,
			Facing:        FacingEast,
			BuildingType:  IndependentHouse,
			BedroomConfig: "2BHK",
			StaircaseType: StaircaseStraight,
			Floors:        1,
		}
	}

	tests := []struct {
		name     string
		mutate   func(*DesignInput)
		wantCode errors.Code
	}{
		{name: "valid input", mutate: func(in *DesignInput) {}},
		{name: "defaults floors to one", mutate: func(in *DesignInput) { in.Floors = 0 }},
		{
			name:     "negative land size",
			mutate:   func(in *DesignInput) { in.LandSize = -10 },
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "unknown facing",
			mutate:   func(in *DesignInput) { in.Facing = "Up" },
			wantCode: errors.ErrCodeInvalidFacing,
		},
		{
			name:     "unknown building type",
			mutate:   func(in *DesignInput) { in.BuildingType = "Castle" },
			wantCode: errors.ErrCodeInvalidBuilding,
		},
		{
			name:     "unknown staircase type",
			mutate:   func(in *DesignInput) { in.StaircaseType = "Escalator" },
			wantCode: errors.ErrCodeInvalidStaircase,
		},
		{
			name:     "too many floors",
			mutate:   func(in *DesignInput) { in.Floors = 4 },
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "bedroom count conflicts with label",
			mutate:   func(in *DesignInput) { in.Bedrooms = 3 },
			wantCode: errors.ErrCodeInvalidBedrooms,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			err := in.Normalize()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Normalize() unexpected error: %v", err)
				}
				if in.Bedrooms != 2 {
					t.Errorf("Bedrooms = %d, want 2 derived from %q", in.Bedrooms, in.BedroomConfig)
				}
				if in.Floors < MinFloors {
					t.Errorf("Floors = %d, want defaulted to at least %d", in.Floors, MinFloors)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Normalize() error = %v, want code %q", err, tt.wantCode)
			}
		})
	}
}

func TestNormalizePosition(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero stays zero", in: 0, want: 0},
		{name: "tiny negative collapses", in: -1e-12, want: 0},
		{name: "large negative floors at zero", in: -4.2, want: 0},
		{name: "negative zero becomes positive zero", in: math.Copysign(0, -1), want: 0},
		{name: "rounds to six decimals", in: 10.12345678, want: 10.123457},
		{name: "positive passes through", in: 25.5, want: 25.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePosition(tt.in)
			if got != tt.want {
				t.Errorf("NormalizePosition(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if math.Signbit(got) {
				t.Errorf("NormalizePosition(%v) produced negative zero", tt.in)
			}
		})
	}
}

func TestBedroomNamesOrder(t *testing.T) {
	ra := RoomAllocation{
		Bedrooms: map[string]float64{
			"bedroom_3":      90,
			"master_bedroom": 150,
			"bedroom_2":      95,
			"bedroom_10":     80,
		},
		Bathrooms: map[string]float64{
			"bathroom_3":      20,
			"bathroom_2":      22,
			"master_bathroom": 35,
		},
	}

	wantBeds := []string{"master_bedroom", "bedroom_2", "bedroom_3", "bedroom_10"}
	if got := ra.BedroomNames(); !reflect.DeepEqual(got, wantBeds) {
		t.Errorf("BedroomNames() = %v, want %v", got, wantBeds)
	}

	wantBaths := []string{"master_bathroom", "bathroom_2", "bathroom_3"}
	if got := ra.BathroomNames(); !reflect.DeepEqual(got, wantBaths) {
		t.Errorf("BathroomNames() = %v, want %v", got, wantBaths)
	}
}

func TestBathroomNamesSingleBedroom(t *testing.T) {
	ra := RoomAllocation{Bathrooms: map[string]float64{"bathroom_1": 40}}
	want := []string{"bathroom_1"}
	if got := ra.BathroomNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("BathroomNames() = %v, want %v", got, want)
	}
}
