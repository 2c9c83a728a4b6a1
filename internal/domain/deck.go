package domain

import (
	"math/rand"
	"sort"
)

// Card id layout: army*100 + offset. Offsets 1..4 are heads, 11..14 chests,
// 21..24 left arms, 31..34 right arms, 41..44 legs and 51..56 archs.
const (
	copiesPerPart = 4
	archsPerArmy  = 6

	headOffset     = 1
	chestOffset    = 11
	leftArmOffset  = 21
	rightArmOffset = 31
	legsOffset     = 41
	archOffset     = 51

	headPower  = 2
	chestPower = 3
	armPower   = 2
	legsPower  = 3
	archPower  = 3 // weakest arch; each following one is one stronger
)

var catalog = buildCatalog()

func buildCatalog() map[int]Card {
	cards := make(map[int]Card, len(ArmyTypes)*(copiesPerPart*5+archsPerArmy))
	add := func(c Card) { cards[c.ID] = c }

	for _, army := range ArmyTypes {
		base := int(army) * 100
		for i := 0; i < copiesPerPart; i++ {
			add(Card{ID: base + headOffset + i, Category: CategoryDinoHead, Army: army, Power: headPower})
			add(Card{ID: base + chestOffset + i, Category: CategoryBodyPart, Part: PartChest, Army: army, Power: chestPower})
			add(Card{ID: base + leftArmOffset + i, Category: CategoryBodyPart, Part: PartLeftArm, Army: army, Power: armPower})
			add(Card{ID: base + rightArmOffset + i, Category: CategoryBodyPart, Part: PartRightArm, Army: army, Power: armPower})
			add(Card{ID: base + legsOffset + i, Category: CategoryBodyPart, Part: PartLegs, Army: army, Power: legsPower})
		}
		for i := 0; i < archsPerArmy; i++ {
			add(Card{ID: base + archOffset + i, Category: CategoryArch, Army: army, Power: archPower + i})
		}
	}
	return cards
}

// LookupCard returns the static definition for a card id.
func LookupCard(id int) (Card, bool) {
	c, ok := catalog[id]
	return c, ok
}

// NewDeck returns every card of the catalog ordered by id.
func NewDeck() []Card {
	deck := make([]Card, 0, len(catalog))
	for _, c := range catalog {
		deck = append(deck, c)
	}
	sort.Slice(deck, func(i, j int) bool { return deck[i].ID < deck[j].ID })
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	if rng == nil {
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
