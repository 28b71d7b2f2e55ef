// Package neighbor runs a multi-source BFS per station to enumerate the
// first reachable stations along each track, pruning turns sharper than the
// configured angle threshold, then buckets the discovered stations into two
// provisional directions by their departure angle.
package neighbor
