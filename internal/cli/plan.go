package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramisn26/AI-Architect/pkg/design"
)

// planCommand creates the plan command.
func (c *CLI) planCommand() *cobra.Command {
	var opts inputOpts
	var floor int
	var output string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate 2D floor plan layouts for a design",
		Long: `Generate 2D floor plan layouts for a design.

Each plan places the floor's rooms inside the buildable envelope (plot
minus setbacks), oriented for the plot facing, and adds the entrance
door and windows.

Examples:
  aiarchitect plan --land-size 1200 --facing East --floors 2
  aiarchitect plan --land-size 1200 --floors 2 --floor 1 -o floor1.json
  aiarchitect plan --land-size 2400 --type Villa -o plans.json`,
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

			dsg, err := des.GenerateDesign(cmd.Context(), *in)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			var plans []design.FloorPlan
			if floor >= 0 {
				fp, err := des.GenerateFloorPlan(dsg, floor)
				if err != nil {
					return err
				}
				plans = []design.FloorPlan{*fp}
			} else {
				plans, err = des.GenerateAllFloorPlans(dsg)
				if err != nil {
					return err
				}
			}
			prog.done(fmt.Sprintf("Generated %d floor plan(s)", len(plans)))

			for i := range plans {
				printFloorPlanSummary(&plans[i])
			}

			if output != "" {
				if err := writePlans(plans, output); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}

	addInputFlags(cmd, &opts)
	cmd.Flags().IntVar(&floor, "floor", -1, "generate only this floor (0 = ground; -1 = all floors)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the plans as JSON to this file")

	return cmd
}

// printFloorPlanSummary prints the room placements of one floor plan.
func printFloorPlanSummary(fp *design.FloorPlan) {
	printHeader(fmt.Sprintf("Floor %d", fp.FloorNumber))
	printKeyValue("Envelope", fmt.Sprintf("%.1f x %.1f ft", fp.Total.Length, fp.Total.Width))
	for _, name := range fp.RoomNames() {
		room := fp.Rooms[name]
		printKeyValue(name, fmt.Sprintf("%.1f x %.1f ft at (%.1f, %.1f)",
			room.Length, room.Width, room.XPosition, room.YPosition))
	}
	if n := len(fp.DoorsWindows); n > 0 {
		printDetail("%d doors/windows", n)
	}
	printNewline()
}

// writePlans serializes floor plans as JSON to path. A single plan is
// written as an object, multiple plans as an array.
func writePlans(plans []design.FloorPlan, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if len(plans) == 1 {
		return design.WriteFloorPlan(&plans[0], out)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(plans)
}
