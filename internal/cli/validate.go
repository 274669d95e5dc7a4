package cli

import (
	"github.com/spf13/cobra"

	"github.com/ramisn26/AI-Architect/pkg/errors"
	"github.com/ramisn26/AI-Architect/pkg/validate"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var opts inputOpts

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check plot parameters for feasibility without generating a design",
		Long: `Check plot parameters for feasibility without generating a design.

Prints all feasibility errors and warnings. Exits non-zero when the
input is infeasible; warnings alone do not fail the check.

Examples:
  aiarchitect validate --land-size 1200 --bedrooms 2BHK
  aiarchitect validate --land-size 500 --type Villa`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.toInput()
			if err != nil {
				return err
			}

			result := validate.Check(in)
			for _, w := range result.Warnings {
				printWarning("%s", w)
			}
			if !result.Valid {
				for _, e := range result.Errors {
					printError("%s", e)
				}
				return errors.Infeasible(result.Errors)
			}

			printSuccess("Design parameters are feasible")
			printDetail("%.0f sq.ft plot, %s, %d bedroom(s), %d floor(s)",
				in.LandSize, in.BuildingType, in.Bedrooms, in.Floors)
			return nil
		},
	}

	addInputFlags(cmd, &opts)
	return cmd
}
