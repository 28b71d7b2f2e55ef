package dsu

// DSU is a disjoint-set forest over the dense integer range [0, n).
type DSU struct {
	parent []int
	size   []int
	sets   int
}

// New creates a DSU with n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *DSU {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &DSU{parent: parent, size: size, sets: n}
}

// Find returns the representative of x's set, compressing the path to it.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing x and y, attaching the smaller set under
// the larger one's root. Returns true if a merge happened (x and y were in
// different sets).
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.sets--
	return true
}

// Connected reports whether x and y are currently in the same set.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// SetCount returns the current number of disjoint sets.
func (d *DSU) SetCount() int {
	return d.sets
}

// Groups returns the members of every set, keyed by each set's representative.
func (d *DSU) Groups() map[int][]int {
	groups := make(map[int][]int, d.sets)
	for i := range d.parent {
		r := d.Find(i)
		groups[r] = append(groups[r], i)
	}
	return groups
}
