package cegar

// productWithinLimit reports whether a*b would not exceed limit, without
// relying on an overflow that could happen while computing a*b directly.
func productWithinLimit(a, b, limit int) bool {
	if a == 0 || b == 0 {
		return true
	}
	if a > limit/b {
		return false
	}
	return a*b <= limit
}

// addPatternForVar seeds the collection with a new singleton pattern for
// v. Seed patterns are exempt from max_pdb_size/max_collection_size
// (spec §4.4 "Ties/edge cases", §9 "Seed-pattern size exemption"): goal
// variables must always be representable.
func (c *Cegar) addPatternForVar(v Variable) {
	projection := buildProjection(
		c.task, NewPattern(v), c.taskBuilder, c.pdbBuilder, c.planner,
		c.rng, c.options.WildcardPlans, c.log)
	slot := c.collection.append(projection)
	c.collection.registerVariable(v, slot)
}

// canMergePatterns reports whether merging the patterns at index1 and
// index2 would stay within both size budgets.
func (c *Cegar) canMergePatterns(index1, index2 int) bool {
	size1 := c.collection.at(index1).PDB().Size()
	size2 := c.collection.at(index2).PDB().Size()
	if !productWithinLimit(size1, size2, c.options.MaxPDBSize) {
		return false
	}
	addedSize := size1*size2 - size1 - size2
	return c.collection.size+addedSize <= c.options.MaxCollectionSize
}

// mergePatterns merges the pattern at index2 into the pattern at index1:
// the merged projection is installed at index1, and index2 is vacated.
// (The original source's own comment describes this as "merge projection
// at index2 into projection at index2", a typo; the preserved behavior —
// see spec §9 — merges into index1.)
func (c *Cegar) mergePatterns(index1, index2 int) {
	p1 := c.collection.at(index1)
	p2 := c.collection.at(index2)

	for _, v := range p2.Pattern() {
		c.collection.registerVariable(v, index1)
	}

	merged := MergePatterns(p1.Pattern(), p2.Pattern())
	newProjection := buildProjection(
		c.task, merged, c.taskBuilder, c.pdbBuilder, c.planner,
		c.rng, c.options.WildcardPlans, c.log)

	c.collection.replace(index1, newProjection)
	c.collection.vacate(index2)
}

// canAddVariableToPattern reports whether extending the pattern at index
// with v would stay within both size budgets.
func (c *Cegar) canAddVariableToPattern(index int, v Variable) bool {
	size := c.collection.at(index).PDB().Size()
	domainSize := c.task.DomainSize(v)
	if !productWithinLimit(size, domainSize, c.options.MaxPDBSize) {
		return false
	}
	addedSize := size*domainSize - size
	return c.collection.size+addedSize <= c.options.MaxCollectionSize
}

// addVariableToPattern extends the pattern at collectionIndex with v,
// rebuilding its projection in place.
func (c *Cegar) addVariableToPattern(collectionIndex int, v Variable) {
	projection := c.collection.at(collectionIndex)
	extended := ExtendPattern(projection.Pattern(), v)
	newProjection := buildProjection(
		c.task, extended, c.taskBuilder, c.pdbBuilder, c.planner,
		c.rng, c.options.WildcardPlans, c.log)

	c.collection.replace(collectionIndex, newProjection)
	c.collection.registerVariable(v, collectionIndex)
}

// handleFlaw implements C4 (spec §4.4): absorb the flaw by merging with
// v's current pattern, by extending the flaw's own pattern with v, or —
// if neither fits the size budgets — blacklist v.
func (c *Cegar) handleFlaw(flaw Flaw) {
	index := flaw.CollectionIndex
	v := flaw.Variable

	absorbed := false
	if otherIndex, ok := c.collection.slotOf(v); ok {
		c.log.Verbosef("var%d is already in pattern %v", v, c.collection.at(otherIndex).Pattern())
		if c.canMergePatterns(index, otherIndex) {
			c.log.Verbosef("merging the two patterns")
			c.mergePatterns(index, otherIndex)
			absorbed = true
		}
	} else {
		c.log.Verbosef("var%d is not in the collection yet", v)
		if c.canAddVariableToPattern(index, v) {
			c.log.Verbosef("adding it to the pattern")
			c.addVariableToPattern(index, v)
			absorbed = true
		}
	}

	if !absorbed {
		c.log.Verbosef("could not add var/merge patterns due to size limits; blacklisting var%d", v)
		c.blacklisted[v] = struct{}{}
	}
}
