// Package jsonio serializes the pipeline's NextStaInfo output records to
// their JSON wire format, using goccy/go-json in place of the standard
// library encoder.
package jsonio
