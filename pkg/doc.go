// Package pkg provides the core libraries for AI-Architect design generation.
//
// # Overview
//
// AI-Architect turns a handful of plot parameters (land size, facing,
// building type, bedroom configuration) into a complete residential design:
// regulatory calculations, room area allocations, 2D floor plan geometry,
// and advisory output. The pkg directory is organized into four main areas:
//
//  1. [design] - Data model (inputs, designs, floor plans, serialization)
//  2. [validate], [calc], [layout] - The pipeline stages
//  3. [designer] - Orchestration (validate → calculate → lay out)
//  4. [store], [cache] - Persistence and memoization backends
//
// # Architecture
//
// The typical data flow through AI-Architect:
//
//	DesignInput (plot parameters)
//	         ↓
//	    [validate] package (feasibility rules)
//	         ↓
//	    [calc] package (FAR, setbacks, room allocation, estimates)
//	         ↓
//	    [layout] package (2D room placement, doors and windows)
//	         ↓
//	    ArchitecturalDesign + FloorPlan JSON output
//
// # Quick Start
//
// Generate a design and its floor plans:
//
//	import (
//	    "context"
//	    "github.com/ramisn26/AI-Architect/pkg/design"
//	    "github.com/ramisn26/AI-Architect/pkg/designer"
//	)
//
//	// 1. Describe the plot
//	in := design.DesignInput{
//	    LandSize:      1200,
//	    Facing:        design.FacingEast,
//	    BuildingType:  design.IndependentHouse,
//	    BedroomConfig: "2BHK",
//	    Floors:        2,
//	}
//
//	// 2. Generate the design
//	des := designer.New()
//	d, err := des.GenerateDesign(context.Background(), in)
//
//	// 3. Generate the floor plans
//	plans, err := des.GenerateAllFloorPlans(d)
//
//	// 4. Serialize
//	data, err := design.MarshalDesign(d)
//
// # Main Packages
//
//   - [design]: value types shared by every stage plus JSON round-trip helpers
//   - [validate]: plot feasibility rules (errors block, warnings advise)
//   - [calc]: FAR, setbacks, buildable area, room standards, allocation,
//     efficiency metrics, cost and timeline estimates
//   - [layout]: per-floor room distribution, sizing, placement, openings
//   - [designer]: pipeline orchestration plus optional persistence
//   - [store]: design persistence (memory, file, SQLite, MongoDB)
//   - [cache]: generation memoization (file, Redis, null)
//   - [errors]: structured error codes shared by CLI and API
//   - [observability]: optional hooks for metrics and tracing backends
//   - [buildinfo]: build-time version information
package pkg
