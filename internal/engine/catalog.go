package engine

import (
	"iter"
	"sort"

	"github.com/piwi3910/BlockFit/internal/model"
)

// catalogEntry is one block instance and its consumption state.
type catalogEntry struct {
	block    model.Block
	input    int // position in the original block list
	consumed bool
}

// Catalog is the ordered set of blocks available to the search. It is never
// resized after creation; only the consumed flags change.
type Catalog struct {
	entries   []catalogEntry
	remaining int
}

// NewCatalog builds a catalog in input order with every block available.
func NewCatalog(blocks []model.Block) *Catalog {
	entries := make([]catalogEntry, len(blocks))
	for i, b := range blocks {
		entries[i] = catalogEntry{block: b, input: i}
	}
	return &Catalog{entries: entries, remaining: len(blocks)}
}

// Order sorts the catalog by descending area when it holds more than
// threshold blocks. Equal areas keep their input order. It reports whether
// a sort was applied. Order must run before any block is consumed.
func (c *Catalog) Order(threshold int) bool {
	if len(c.entries) <= threshold {
		return false
	}
	if c.remaining != len(c.entries) {
		logicViolation("catalog reordered after %d blocks were consumed", len(c.entries)-c.remaining)
	}
	// Largest first: big blocks have the fewest valid anchors, so they prune earliest
	sort.SliceStable(c.entries, func(i, j int) bool {
		return c.entries[i].block.Area() > c.entries[j].block.Area()
	})
	return true
}

// Len returns the number of block instances.
func (c *Catalog) Len() int { return len(c.entries) }

// Remaining returns the number of blocks not yet consumed.
func (c *Catalog) Remaining() int { return c.remaining }

// Block returns the block at catalog position i.
func (c *Catalog) Block(i int) model.Block { return c.entries[i].block }

// InputIndex maps catalog position i back to the original block list.
func (c *Catalog) InputIndex(i int) int { return c.entries[i].input }

// IsConsumed reports whether the block at position i is in use.
func (c *Catalog) IsConsumed(i int) bool { return c.entries[i].consumed }

// Available yields (position, block) for every unconsumed block in catalog
// order. Consumption is checked lazily, so blocks consumed and released by
// the loop body or deeper frames are seen in their current state.
func (c *Catalog) Available() iter.Seq2[int, model.Block] {
	return func(yield func(int, model.Block) bool) {
		for i := range c.entries {
			if c.entries[i].consumed {
				continue
			}
			if !yield(i, c.entries[i].block) {
				return
			}
		}
	}
}

// Consume marks position i as in use.
func (c *Catalog) Consume(i int) {
	if c.entries[i].consumed {
		logicViolation("block %d (%s) consumed twice", i, c.entries[i].block)
	}
	c.entries[i].consumed = true
	c.remaining--
}

// Release makes position i available again.
func (c *Catalog) Release(i int) {
	if !c.entries[i].consumed {
		logicViolation("block %d (%s) released while available", i, c.entries[i].block)
	}
	c.entries[i].consumed = false
	c.remaining++
}

// Blocks returns the blocks in current catalog order.
func (c *Catalog) Blocks() []model.Block {
	out := make([]model.Block, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.block
	}
	return out
}
