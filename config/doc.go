// Package config loads the pipeline's tunable thresholds from YAML,
// falling back to the compiled-in defaults when a field or the file itself
// is absent.
package config
