package circuit

// PropagateWidths widens every Bus in the Circuit to the widest width
// observed within its connected group, per spec.md §6: buses joined by
// Connect (directly or transitively) must agree on a single width before
// simulation begins. A Splitter does not Connect its wide and narrow buses,
// so they are not widened to each other. Grounded on
// the same iterative worklist traversal as Bus.connectedGroup, applied here
// at the Circuit level so every disjoint group is visited exactly once.
//
// Errors: none directly, but SetWidth's ErrNarrowWidth can never trigger
// here since every target width is already the group's observed maximum.
func (c *Circuit) PropagateWidths() error {
	visited := make(map[*Bus]bool, len(c.buses))
	for _, b := range c.buses {
		if visited[b] {
			continue
		}
		group := b.connectedGroup()
		max := 0
		for _, g := range group {
			if g.width > max {
				max = g.width
			}
		}
		for _, g := range group {
			visited[g] = true
			if g.width < max {
				if err := g.SetWidth(max); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
