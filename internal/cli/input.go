package cli

import (
	"github.com/spf13/cobra"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// inputOpts holds the plot parameter flags shared by the design, plan, and
// validate commands.
type inputOpts struct {
	landSize     float64
	facing       string
	buildingType string
	bedrooms     string
	staircase    string
	floors       int
	budget       string
	requirements []string
}

// addInputFlags registers the plot parameter flags on cmd.
func addInputFlags(cmd *cobra.Command, opts *inputOpts) {
	cmd.Flags().Float64Var(&opts.landSize, "land-size", 1200, "plot size in sq.ft")
	cmd.Flags().StringVar(&opts.facing, "facing", "East", "plot facing direction (North, South, East, West, Northeast, ...)")
	cmd.Flags().StringVar(&opts.buildingType, "type", "Independent House", "building type (Independent House, Villa, Duplex, Apartment)")
	cmd.Flags().StringVar(&opts.bedrooms, "bedrooms", "2BHK", "bedroom configuration (1BHK through 10BHK)")
	cmd.Flags().StringVar(&opts.staircase, "staircase", "Straight", "staircase type (Straight, L-shaped, U-shaped, Spiral, Winder)")
	cmd.Flags().IntVar(&opts.floors, "floors", 1, "number of floors (1-4)")
	cmd.Flags().StringVar(&opts.budget, "budget", "", "budget range, free text")
	cmd.Flags().StringSliceVar(&opts.requirements, "requirement", nil, "special requirement (repeatable, e.g. swimming pool)")
}

// toInput converts the flags to a normalized design input.
func (o *inputOpts) toInput() (*design.DesignInput, error) {
	in := design.DesignInput{
		LandSize:            o.landSize,
		Facing:              design.FacingDirection(o.facing),
		BuildingType:        design.BuildingType(o.buildingType),
		BedroomConfig:       o.bedrooms,
		StaircaseType:       design.StaircaseType(o.staircase),
		Floors:              o.floors,
		BudgetRange:         o.budget,
		SpecialRequirements: o.requirements,
	}
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	return &in, nil
}
