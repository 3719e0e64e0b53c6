package paint

import "github.com/gogpu/selbounds"

// Ownership maps each endpoint to the chunk that holds its record, if any.
// It is a value: copying it snapshots the mapping.
type Ownership [selbounds.NumEndpoints]selbounds.Optional[ChunkID]

// Owner returns the chunk owning endpoint e.
func (o Ownership) Owner(e selbounds.Endpoint) (ChunkID, bool) {
	return o[e].Get()
}

// Diff returns the chunks whose selection record changes between prev and
// cur. For each endpoint, start first:
//
//	none     -> owned(c)  c
//	owned(c) -> none      c
//	owned(a) -> owned(b)  a, b (a != b)
//	owned(c) -> owned(c)  nothing
//
// Ids are listed once, in first-seen order.
func Diff(prev, cur Ownership) []ChunkID {
	var out []ChunkID
	add := func(id ChunkID) {
		for _, have := range out {
			if have == id {
				return
			}
		}
		out = append(out, id)
	}
	for _, e := range selbounds.Endpoints {
		p, hadPrev := prev[e].Get()
		c, hasCur := cur[e].Get()
		if hadPrev && hasCur && p == c {
			continue
		}
		if hadPrev {
			add(p)
		}
		if hasCur {
			add(c)
		}
	}
	return out
}

// OwnershipTracker retains the ownership of the previous pass.
type OwnershipTracker struct {
	prev Ownership
}

// Previous returns the ownership committed last.
func (t *OwnershipTracker) Previous() Ownership { return t.prev }

// Commit returns Diff(previous, cur) and makes cur the previous ownership.
func (t *OwnershipTracker) Commit(cur Ownership) []ChunkID {
	d := Diff(t.prev, cur)
	t.prev = cur
	return d
}

// Reset forgets the previous ownership, as before the first selection.
func (t *OwnershipTracker) Reset() { t.prev = Ownership{} }
