package cegar

import (
	"fmt"
	"strings"
)

// projectionCollection is an ordered sequence of slots, each either a
// live Projection or vacated (nil). Vacated slots are never reused and
// never removed: flaws reference slots by index, and a merge must not
// re-index any live projection (spec §9, "Stable indices with vacated
// slots").
type projectionCollection struct {
	slots          []*Projection
	variableToSlot map[Variable]int
	size           int // running sum of pdb.Size() across live slots
}

func newProjectionCollection() *projectionCollection {
	return &projectionCollection{variableToSlot: make(map[Variable]int)}
}

// append adds p as a brand-new slot and returns its index.
func (c *projectionCollection) append(p *Projection) int {
	c.slots = append(c.slots, p)
	c.size += p.pdb.Size()
	return len(c.slots) - 1
}

// replace installs p at the live slot at index, discarding what was
// there and adjusting the size ledger by the delta.
func (c *projectionCollection) replace(index int, p *Projection) {
	c.size -= c.slots[index].pdb.Size()
	c.size += p.pdb.Size()
	c.slots[index] = p
}

// vacate removes the projection at index from the live collection,
// releasing its contribution to size. The slot itself is never reused.
func (c *projectionCollection) vacate(index int) {
	c.size -= c.slots[index].pdb.Size()
	c.slots[index] = nil
}

func (c *projectionCollection) at(index int) *Projection { return c.slots[index] }

func (c *projectionCollection) isLive(index int) bool { return c.slots[index] != nil }

func (c *projectionCollection) numSlots() int { return len(c.slots) }

// registerVariable records that v now belongs to the pattern at slot.
func (c *projectionCollection) registerVariable(v Variable, slot int) {
	c.variableToSlot[v] = slot
}

// slotOf reports which slot currently owns v, if any.
func (c *projectionCollection) slotOf(v Variable) (int, bool) {
	slot, ok := c.variableToSlot[v]
	return slot, ok
}

// String renders the live patterns in slot order, e.g. "[[0], [1 2]]".
func (c *projectionCollection) String() string {
	var parts []string
	for _, p := range c.slots {
		if p != nil {
			parts = append(parts, fmt.Sprintf("%v", p.Pattern()))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
