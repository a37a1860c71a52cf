// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The load and save pipelines run one stage at a time and report every stage
// to an optional observer before doing its work. A failing stage ends the
// pipeline with a *domain.SaveError.
package services
