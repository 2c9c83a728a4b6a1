package domain

import (
	"testing"
	"time"
)

func TestRules(t *testing.T) {
	s := newTestSession("u1", "u2")

	if CanDrawCard(s, "u1") || CanEndTurn(s, "u1") {
		t.Fatalf("actions allowed before start")
	}
	s.Start("u1", time.Now())

	tests := []struct {
		name string
		fn   func(*GameSession, string) bool
	}{
		{"draw", CanDrawCard},
		{"play", CanPlayCard},
		{"provoke", CanProvoke},
		{"end turn", CanEndTurn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.fn(s, "u1") {
				t.Fatalf("turn owner rejected")
			}
			if tt.fn(s, "u2") {
				t.Fatalf("other player allowed")
			}
			if tt.fn(s, "") {
				t.Fatalf("empty user allowed")
			}
		})
	}

	s.HasDrawnThisTurn = true
	if CanDrawCard(s, "u1") {
		t.Fatalf("second draw allowed")
	}
	s.CardsPlayedThisTurn = DefaultMaxCardsPerTurn
	if CanPlayCard(s, "u1") {
		t.Fatalf("third card allowed")
	}
	s.MainActionTaken = true
	if CanProvoke(s, "u1") {
		t.Fatalf("second provoke allowed")
	}
	if !CanEndTurn(s, "u1") {
		t.Fatalf("end turn should stay allowed")
	}
	if CanDrawCard(nil, "u1") {
		t.Fatalf("nil session allowed")
	}
}

func TestCardKindRules(t *testing.T) {
	head := mustCard(t, 301)
	chest := mustCard(t, 311)
	arch := mustCard(t, 351)

	if !IsValidDinoHead(head) || IsValidDinoHead(chest) || IsValidDinoHead(arch) {
		t.Fatalf("dino head rule wrong")
	}
	if !IsValidBodyPart(chest) || IsValidBodyPart(head) || IsValidBodyPart(arch) {
		t.Fatalf("body part rule wrong")
	}
	if IsValidDinoHead(Card{ID: 1, Category: CategoryDinoHead}) {
		t.Fatalf("head without army accepted")
	}
}
