package search

// extractBunsetsu walks the 1-best path (the first BOS-popped astarState
// passed to BackwardAStar) from BOS to EOS, recording a boundary at
// every independent-word arc that doesn't start the sentence (spec
// §4.10).
func extractBunsetsu(firstBOSState *astarState, independent *IndependentWordSet) []int {
	if firstBOSState == nil {
		return nil
	}
	var positions []int
	currentPos := 0
	cur := firstBOSState.next
	for cur != nil && cur.node.Len > 0 {
		if currentPos > 0 && independent.IsIndependentWord(cur.node.LeftID) {
			positions = append(positions, currentPos)
		}
		currentPos += cur.node.Len
		cur = cur.next
	}
	return positions
}
