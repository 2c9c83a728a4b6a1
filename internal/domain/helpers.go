package domain

// CardIDs returns the ids of cards in order.
func CardIDs(cards []Card) []int {
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

// CountConnected returns the number of seats still in the match.
func CountConnected(s *GameSession) int {
	n := 0
	for _, p := range s.Players {
		if p.Connected {
			n++
		}
	}
	return n
}

// PopCard removes and returns the top card of a pile.
func PopCard(pile []Card) ([]Card, Card, bool) {
	if len(pile) == 0 {
		return pile, Card{}, false
	}
	top := pile[len(pile)-1]
	return pile[:len(pile)-1], top, true
}
