// Package designer orchestrates the design pipeline.
//
// A Designer runs the three stages in order: feasibility validation,
// parameter calculation (FAR, setbacks, areas, allocation, advisory
// output), and 2D layout generation. The stages live in pkg/validate,
// pkg/calc, and pkg/layout; this package wires them together and adds
// optional persistence through an injected store.
//
// # Usage
//
//	des := designer.New(designer.WithLogger(logger))
//	d, err := des.GenerateDesign(ctx, input)
//	if err != nil {
//	    var fe *errors.FeasibilityError
//	    if stderrors.As(err, &fe) {
//	        // fe.Errors holds the verbatim validator messages
//	    }
//	    return err
//	}
//	plans, err := des.GenerateAllFloorPlans(d)
package designer

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ramisn26/AI-Architect/pkg/calc"
	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
	"github.com/ramisn26/AI-Architect/pkg/layout"
	"github.com/ramisn26/AI-Architect/pkg/observability"
	"github.com/ramisn26/AI-Architect/pkg/store"
	"github.com/ramisn26/AI-Architect/pkg/validate"
)

// Designer generates complete architectural designs. Construct with New;
// the zero value is not usable.
type Designer struct {
	log    *log.Logger
	layout *layout.Generator
	store  store.Store
	rates  calc.CostRates
}

// Option configures a Designer.
type Option func(*Designer)

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(d *Designer) { d.log = logger }
}

// WithStore attaches a persistence backend for Save and Load.
func WithStore(s store.Store) Option {
	return func(d *Designer) { d.store = s }
}

// WithCostRates overrides the construction cost rate table.
func WithCostRates(rates calc.CostRates) Option {
	return func(d *Designer) { d.rates = rates }
}

// New creates a Designer.
func New(opts ...Option) *Designer {
	d := &Designer{}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = log.Default()
	}
	d.layout = layout.New(d.log)
	return d
}

// GenerateDesign runs the full pipeline for one input: normalization,
// feasibility validation, and parameter calculation. An infeasible input
// returns a *errors.FeasibilityError carrying the validator's error list
// verbatim; validation warnings are logged and do not block generation.
func (d *Designer) GenerateDesign(ctx context.Context, in design.DesignInput) (*design.ArchitecturalDesign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Design().OnGenerateStart(ctx, string(in.BuildingType), in.Bedrooms)

	result := validate.Check(&in)
	for _, w := range result.Warnings {
		d.log.Warn("design warning", "input", in.String(), "warning", w)
	}
	if !result.Valid {
		d.log.Error("design rejected", "input", in.String(), "errors", len(result.Errors))
		err := errors.Infeasible(result.Errors)
		observability.Design().OnGenerateComplete(ctx, string(in.BuildingType), 0, time.Since(start), err)
		return nil, err
	}

	far := calc.FAR(&in)
	setbacks := calc.Setbacks(&in)
	buildable := calc.BuildableArea(&in, setbacks)
	built := calc.TotalBuiltArea(&in, far, buildable)
	perFloor := built / float64(in.Floors)

	d.log.Debug("computed building envelope",
		"far", far, "buildable_sqft", buildable, "built_sqft", built, "per_floor_sqft", perFloor)

	allocation := calc.RoomAllocation(&in, perFloor)
	observability.Design().OnGenerateComplete(ctx, string(in.BuildingType), built, time.Since(start), nil)

	return &design.ArchitecturalDesign{
		Input:             in,
		FAR:               far,
		Setbacks:          setbacks,
		RoomAllocation:    allocation,
		Structural:        calc.StructuralRecommendations(&in),
		Rationale:         calc.DesignRationale(&in),
		SpaceEfficiency:   calc.SpaceEfficiency(&in, &allocation, built),
		TotalCostEstimate: calc.CostEstimate(built, in.BuildingType, d.rates),
		TimelineEstimate:  calc.TimelineEstimate(built, in.Floors),
	}, nil
}

// GenerateFloorPlan generates the 2D layout for one floor of a design.
// Floor numbers are zero-based.
func (d *Designer) GenerateFloorPlan(dsg *design.ArchitecturalDesign, floor int) (*design.FloorPlan, error) {
	return d.layout.Floor(dsg, floor)
}

// GenerateAllFloorPlans generates the layouts for every floor, ground
// floor first.
func (d *Designer) GenerateAllFloorPlans(dsg *design.ArchitecturalDesign) ([]design.FloorPlan, error) {
	return d.layout.AllFloors(dsg)
}

// Save persists the design through the attached store and returns its ID.
func (d *Designer) Save(ctx context.Context, dsg *design.ArchitecturalDesign) (string, error) {
	if d.store == nil {
		return "", errors.New(errors.ErrCodeInternal, "no store attached")
	}
	id, err := d.store.Save(ctx, dsg)
	if err != nil {
		return "", err
	}
	d.log.Info("design saved", "id", id, "input", dsg.Input.String())
	return id, nil
}

// Load retrieves a previously saved design by ID.
func (d *Designer) Load(ctx context.Context, id string) (*design.ArchitecturalDesign, error) {
	if d.store == nil {
		return nil, errors.New(errors.ErrCodeInternal, "no store attached")
	}
	return d.store.Load(ctx, id)
}
