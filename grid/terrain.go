package grid

// terrain adapts a Grid[V] and a walkability predicate to the Terrain interface.
type terrain[V any] struct {
	g    *Grid[V]
	pred func(V) bool
}

// NewTerrain returns a Terrain over g where a point is walkable iff it is
// present, in bounds and pred holds for its value.
func NewTerrain[V any](g *Grid[V], pred func(V) bool) Terrain {
	return &terrain[V]{g: g, pred: pred}
}

// BoolTerrain returns a Terrain over a walkability grid: present && true.
func BoolTerrain(g *Grid[bool]) Terrain {
	return NewTerrain(g, func(v bool) bool { return v })
}

func (t *terrain[V]) IsWalkable(p Point) bool {
	if !t.g.InBounds(p) {
		return false
	}
	v, ok := t.g.TryGet(p)
	return ok && t.pred(v)
}

func (t *terrain[V]) Points() []Point { return t.g.Points() }

func (t *terrain[V]) Has(p Point) bool { return t.g.Has(p) }

func (t *terrain[V]) Version() uint64 { return t.g.Version() }
