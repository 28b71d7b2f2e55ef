// Package decode implements the two external-parser conventions the raw
// datasets use: fixed-precision decimal token reconstruction (used to build
// bit-exact geo.Pos values) and base64 name decoding.
package decode
