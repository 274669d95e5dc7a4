package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// designCommand creates the design command.
func (c *CLI) designCommand() *cobra.Command {
	var opts inputOpts
	var output string
	var save bool

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Generate a complete architectural design from plot parameters",
		Long: `Generate a complete architectural design from plot parameters.

The design includes FAR and setback calculations, per-floor room area
allocations, structural recommendations, space efficiency metrics, and
cost and timeline estimates.

Examples:
  aiarchitect design --land-size 1200 --facing East --bedrooms 2BHK
  aiarchitect design --land-size 2400 --type Villa --floors 2 -o villa.json
  aiarchitect design --land-size 1800 --bedrooms 3BHK --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.toInput()
			if err != nil {
				return err
			}

			des, st, err := c.newDesigner(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			prog := newProgress(c.Logger)
			dsg, err := des.GenerateDesign(cmd.Context(), *in)
			if err != nil {
				return err
			}
			prog.done("Generated design")

			printDesignSummary(dsg)

			if save {
				id, err := des.Save(cmd.Context(), dsg)
				if err != nil {
					return err
				}
				printSuccess("Saved design")
				printDetail("ID: %s", id)
			}
			if output != "" {
				if err := writeDesignFile(dsg, output); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}

	addInputFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the full design as JSON to this file")
	cmd.Flags().BoolVar(&save, "save", false, "persist the design in the configured store")

	return cmd
}

// printDesignSummary prints the headline numbers of a generated design.
func printDesignSummary(d *design.ArchitecturalDesign) {
	printHeader("Design Summary")
	printKeyValue("Plot", fmt.Sprintf("%.0f sq.ft, %s facing", d.Input.LandSize, d.Input.Facing))
	printKeyValue("Building", fmt.Sprintf("%s, %d floor(s), %s", d.Input.BuildingType, d.Input.Floors, d.Input.BedroomConfig))
	printKeyValue("FAR", fmt.Sprintf("%.2f", d.FAR))
	printKeyValue("Setbacks",
		fmt.Sprintf("front %.0f, rear %.0f, sides %.0f/%.0f ft",
			d.Setbacks.Front, d.Setbacks.Rear, d.Setbacks.Left, d.Setbacks.Right))
	printKeyValue("Built area", fmt.Sprintf("%.0f sq.ft", d.SpaceEfficiency.TotalBuiltArea))
	printKeyValue("Carpet area", fmt.Sprintf("%.0f sq.ft", d.SpaceEfficiency.CarpetArea))
	printKeyValue("Efficiency", fmt.Sprintf("%.0f%% (score %.0f/100)",
		d.SpaceEfficiency.EfficiencyRatio*100, d.SpaceEfficiency.UtilizationScore))
	if d.TotalCostEstimate > 0 {
		printKeyValue("Cost estimate", fmt.Sprintf("₹%.0f", d.TotalCostEstimate))
	}
	if d.TimelineEstimate != "" {
		printKeyValue("Timeline", d.TimelineEstimate)
	}

	printNewline()
	printHeader("Room Allocation (per floor)")
	printRoomArea("living_room", d.RoomAllocation.LivingRoom)
	printRoomArea("kitchen", d.RoomAllocation.Kitchen)
	for _, name := range d.RoomAllocation.BedroomNames() {
		printRoomArea(name, d.RoomAllocation.Bedrooms[name])
	}
	for _, name := range d.RoomAllocation.BathroomNames() {
		printRoomArea(name, d.RoomAllocation.Bathrooms[name])
	}
	printRoomArea("balcony", d.RoomAllocation.Balcony)
	printRoomArea("corridors", d.RoomAllocation.Corridors)
	printRoomArea("staircase", d.RoomAllocation.Staircase)
	printRoomArea("parking", d.RoomAllocation.Parking)
	printRoomArea("utility", d.RoomAllocation.Utility)
	printRoomArea("pooja_room", d.RoomAllocation.PoojaRoom)
	printNewline()
}

// printRoomArea prints one allocation row, skipping zero-area rooms.
func printRoomArea(name string, area float64) {
	if area <= 0 {
		return
	}
	printKeyValue(name, StyleNumber.Render(fmt.Sprintf("%.0f sq.ft", area)))
}

// writeDesignFile serializes a design as JSON to path.
func writeDesignFile(d *design.ArchitecturalDesign, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return design.WriteDesign(d, out)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path. If path is "-",
// it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
