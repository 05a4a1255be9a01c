// Package config loads ninefold settings from a YAML or JSON file.
//
// The file mirrors the command-line flags: engine partitioning, Ω basis and
// thresholds, optional extra alphabet tracks, logging, the report cache,
// batch parallelism and calibration defaults. Missing keys keep Default()
// values. Format is chosen by extension (.yaml/.yml or .json) or, without
// one, by content.
package config
