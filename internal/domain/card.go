package domain

import (
	"fmt"
	"strings"
)

// CardCategory classifies what a card does when played.
type CardCategory int

const (
	CategoryUnknown CardCategory = iota
	CategoryDinoHead
	CategoryBodyPart
	CategoryArch
)

func (c CardCategory) String() string {
	switch c {
	case CategoryDinoHead:
		return "dino_head"
	case CategoryBodyPart:
		return "body_part"
	case CategoryArch:
		return "arch"
	default:
		return "unknown"
	}
}

// BodyPart is the slot a body part card occupies on a dino.
type BodyPart int

const (
	PartNone BodyPart = iota
	PartChest
	PartLeftArm
	PartRightArm
	PartLegs
)

func (p BodyPart) String() string {
	switch p {
	case PartChest:
		return "chest"
	case PartLeftArm:
		return "left_arm"
	case PartRightArm:
		return "right_arm"
	case PartLegs:
		return "legs"
	default:
		return "none"
	}
}

// NeedsChest reports whether the slot can only be filled once a chest is attached.
func (p BodyPart) NeedsChest() bool {
	return p == PartLeftArm || p == PartRightArm || p == PartLegs
}

// ArmyType is the element axis shared by dino heads, body parts and arch armies.
type ArmyType int

const (
	ArmyNone ArmyType = iota
	ArmySand
	ArmyWater
	ArmyWind
)

// ArmyTypes lists the three board armies in board order.
var ArmyTypes = []ArmyType{ArmySand, ArmyWater, ArmyWind}

func (a ArmyType) String() string {
	switch a {
	case ArmySand:
		return "sand"
	case ArmyWater:
		return "water"
	case ArmyWind:
		return "wind"
	default:
		return "none"
	}
}

// Valid reports whether a is one of the three board armies.
func (a ArmyType) Valid() bool {
	return a == ArmySand || a == ArmyWater || a == ArmyWind
}

// ParseArmyType accepts both element and terrain names ("sand"/"land",
// "water"/"sea", "wind"/"sky"), case-insensitively.
func ParseArmyType(s string) (ArmyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sand", "land":
		return ArmySand, nil
	case "water", "sea":
		return ArmyWater, nil
	case "wind", "sky":
		return ArmyWind, nil
	default:
		return ArmyNone, fmt.Errorf("unknown army type %q", s)
	}
}

// Card is an immutable card instance in play.
type Card struct {
	ID       int
	Category CardCategory
	Part     BodyPart // only for CategoryBodyPart
	Army     ArmyType
	Power    int
}

func (c Card) String() string {
	if c.Category == CategoryBodyPart {
		return fmt.Sprintf("#%d(%s %s %s p%d)", c.ID, c.Army, c.Category, c.Part, c.Power)
	}
	return fmt.Sprintf("#%d(%s %s p%d)", c.ID, c.Army, c.Category, c.Power)
}

// IsArch reports whether the card belongs on the central board.
func (c Card) IsArch() bool {
	return c.Category == CategoryArch
}
