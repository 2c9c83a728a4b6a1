package domain

// CentralBoard holds the three NPC arch armies players battle against.
type CentralBoard struct {
	armies map[ArmyType][]Card
}

// NewCentralBoard returns an empty board.
func NewCentralBoard() *CentralBoard {
	return &CentralBoard{armies: make(map[ArmyType][]Card, len(ArmyTypes))}
}

// AddArch appends an arch card to the army of its type.
func (b *CentralBoard) AddArch(card Card) bool {
	if !card.IsArch() || !card.Army.Valid() {
		return false
	}
	b.armies[card.Army] = append(b.armies[card.Army], card)
	return true
}

// Army returns a copy of the arch cards of one army in arrival order.
func (b *CentralBoard) Army(army ArmyType) []Card {
	return append([]Card(nil), b.armies[army]...)
}

// Count returns the number of archs in an army.
func (b *CentralBoard) Count(army ArmyType) int {
	return len(b.armies[army])
}

// Power is the total arch power of an army.
func (b *CentralBoard) Power(army ArmyType) int {
	total := 0
	for _, c := range b.armies[army] {
		total += c.Power
	}
	return total
}

// ClearArmy removes and returns every arch of an army.
func (b *CentralBoard) ClearArmy(army ArmyType) []Card {
	cleared := b.armies[army]
	delete(b.armies, army)
	return cleared
}
