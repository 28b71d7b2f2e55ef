// Package orient imposes a globally consistent left/right direction on a
// classified station component: the provisional per-station left/right
// pairs produced by the neighbor BFS are only locally
// consistent, and this package rebuilds them so that "right-neighbor-of-X =
// Y" implies "left-neighbor-of-Y = X" across the whole component. The one
// exception is the junction of a WithLoop component (see WithLoop).
package orient
