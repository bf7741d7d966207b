// Package calculators provides the concrete stage implementations for the
// estimation.Estimator.
//
// Each calculator owns one part of the assessment (requirements, compute,
// storage, network, labor, service comparison, recommendation, ROI). All of
// them default to estimation.DefaultRates and accept functional options to
// substitute rates, profiles or reference tables. DefaultStages wires a full
// pipeline from a single Rates value.
package calculators
