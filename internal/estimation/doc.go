// Package estimation defines the VDI migration estimation pipeline.
//
// A population profile is first reduced to AggregateRequirements; every other
// stage (compute, storage, network, labor, service comparison, recommendation,
// ROI) derives its result from those requirements and the static Rates. Each
// stage is a Calculator-style component supplied through Stages and composed by
// the Estimator. Stages are pure: the same input always yields the same output.
package estimation
