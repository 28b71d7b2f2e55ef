// Package railtopo infers the topological adjacency graph of stations per
// railway line from raw track and platform geometry, and assigns each
// station's neighbors a canonical left/right ordering.
//
// The module is organized as one flat package per concern, composed
// bottom-up.
//
//	geo/         — 2D points, vectors, planar/great-circle distance
//	dsu/         — union-find for connected-component bookkeeping
//	railmodel/   — raw station/railway/polyline input types
//	decode/      — fixed-precision decimal tokens, base64
//	junction/    — implicit junction-vertex injection
//	graphbuild/  — polyline-to-graph construction, X-splits, switchback pruning
//	stationbind/ — nearest-vertex station binding
//	neighbor/    — bounded BFS next-station discovery
//	topology/    — per-component shape classification
//	orient/      — left/right orientation assignment
//	component/   — connected-component splitting and dense local renumbering
//	pipeline/    — per-railway orchestration and the concurrent multi-railway driver
//	identity/    — cross-dataset station/railway identity linking and shinkansen synthesis
//	jsonio/      — NextStaInfo JSON emission
//	config/      — tunable threshold loading
//	cmd/railtopo/ — CLI entry point wiring the above into infer/link subcommands
package railtopo
