package domain

import "errors"

var (
	ErrNotBodyPart   = errors.New("card is not a body part")
	ErrArmyMismatch  = errors.New("body part army does not match dino head")
	ErrChestRequired = errors.New("chest must be attached first")
	ErrSlotTaken     = errors.New("body part slot already filled")
)

// Dino is a creature assembled by a player: one head plus up to four parts.
type Dino struct {
	Head     Card
	Chest    *Card
	LeftArm  *Card
	RightArm *Card
	Legs     *Card
}

// NewDino starts a dino from a head card.
func NewDino(head Card) *Dino {
	return &Dino{Head: head}
}

// Army is the army type fixed by the head.
func (d *Dino) Army() ArmyType {
	return d.Head.Army
}

func (d *Dino) slot(part BodyPart) **Card {
	switch part {
	case PartChest:
		return &d.Chest
	case PartLeftArm:
		return &d.LeftArm
	case PartRightArm:
		return &d.RightArm
	case PartLegs:
		return &d.Legs
	default:
		return nil
	}
}

// CanAttach reports why a card cannot be attached, or nil if it can.
func (d *Dino) CanAttach(card Card) error {
	if card.Category != CategoryBodyPart {
		return ErrNotBodyPart
	}
	slot := d.slot(card.Part)
	if slot == nil {
		return ErrNotBodyPart
	}
	if card.Army != d.Head.Army {
		return ErrArmyMismatch
	}
	if card.Part.NeedsChest() && d.Chest == nil {
		return ErrChestRequired
	}
	if *slot != nil {
		return ErrSlotTaken
	}
	return nil
}

// Attach places card in its slot. The dino is unchanged when an error is returned.
func (d *Dino) Attach(card Card) error {
	if err := d.CanAttach(card); err != nil {
		return err
	}
	c := card
	*d.slot(card.Part) = &c
	return nil
}

// Cards returns the head followed by every attached part.
func (d *Dino) Cards() []Card {
	cards := []Card{d.Head}
	for _, part := range []*Card{d.Chest, d.LeftArm, d.RightArm, d.Legs} {
		if part != nil {
			cards = append(cards, *part)
		}
	}
	return cards
}

// TotalPower sums the power of the head and every attached part.
func (d *Dino) TotalPower() int {
	total := 0
	for _, c := range d.Cards() {
		total += c.Power
	}
	return total
}

// Complete reports whether every slot is filled.
func (d *Dino) Complete() bool {
	return d.Chest != nil && d.LeftArm != nil && d.RightArm != nil && d.Legs != nil
}
