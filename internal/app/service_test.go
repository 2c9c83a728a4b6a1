package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"archsdinos/internal/domain"
)

var ctx = context.Background()

func TestStartGameNotifies(t *testing.T) {
	f := newFixture(t, "u1", "u2")

	for id, cb := range f.cbs {
		if cb.count(EventGameInitialized) != 1 || cb.count(EventGameStarted) != 1 {
			t.Fatalf("%s: init=%d started=%d", id, cb.count(EventGameInitialized), cb.count(EventGameStarted))
		}
		payload, _ := cb.last(EventGameInitialized)
		dealt := payload.(GameInitializedPayload)
		if dealt.UserID != id || len(dealt.Hand) != DefaultHandSize {
			t.Fatalf("%s received init for %s with %d cards", id, dealt.UserID, len(dealt.Hand))
		}
	}
	if f.s.CurrentTurn != "u1" || f.s.RemainingMoves() != domain.DefaultMovesPerTurn {
		t.Fatalf("first turn = %s with %d moves", f.s.CurrentTurn, f.s.RemainingMoves())
	}

	if _, err := f.svc.StartGame(ctx, testMatch, []Seat{{UserID: "a"}, {UserID: "b"}}); !errors.Is(err, ErrSessionExists) {
		t.Fatalf("duplicate match err = %v", err)
	}
	if _, err := f.svc.StartGame(ctx, "m2", []Seat{{UserID: "a"}}); !errors.Is(err, ErrTooFewPlayers) {
		t.Fatalf("solo start err = %v", err)
	}
}

func TestDrawHeadAttachAdvancesTurn(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	u1 := f.player(t, "u1")
	u1.Hand = cards(t, 101)
	f.s.DrawPiles[0] = cards(t, 102, 111) // chest on top

	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u1", 0), CodeSuccess)
	expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u1", 101), CodeSuccess)
	if f.s.CurrentTurn != "u1" || f.s.RemainingMoves() != 1 {
		t.Fatalf("turn advanced early: %s with %d moves", f.s.CurrentTurn, f.s.RemainingMoves())
	}
	expectCode(t, AttachCodes, f.svc.AttachBodyPartToDino(ctx, testMatch, "u1", 111, 101), CodeSuccess)

	dino := u1.Dinos[101]
	if dino == nil || dino.Chest == nil || dino.Chest.ID != 111 {
		t.Fatalf("dino = %+v", dino)
	}
	if len(u1.Hand) != 0 {
		t.Fatalf("hand = %v", domain.CardIDs(u1.Hand))
	}
	if f.s.CurrentTurn != "u2" || f.s.RemainingMoves() != domain.DefaultMovesPerTurn || f.s.TurnNumber != 2 {
		t.Fatalf("after budget spent: turn %s #%d moves %d", f.s.CurrentTurn, f.s.TurnNumber, f.s.RemainingMoves())
	}
	payload, ok := f.cbs["u2"].last(EventTurnChanged)
	if !ok || payload.(TurnChangedPayload).CurrentUserID != "u2" {
		t.Fatalf("u2 not told about the turn change: %v", payload)
	}
}

func TestDrawValidation(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	before := f.s.PileSizes()

	tests := []struct {
		name string
		user string
		pile int
		want Code
	}{
		{"other player", "u2", 0, CodeNotYourTurn},
		{"negative pile", "u1", -1, CodeInvalidDrawPile},
		{"pile past end", "u1", domain.DrawPileCount, CodeInvalidDrawPile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, tt.user, tt.pile), tt.want)
		})
	}
	for i, n := range f.s.PileSizes() {
		if n != before[i] {
			t.Fatalf("pile %d changed: %d -> %d", i, before[i], n)
		}
	}
	if f.s.RemainingMoves() != domain.DefaultMovesPerTurn || f.s.HasDrawnThisTurn {
		t.Fatalf("rejected draws mutated the turn")
	}

	f.s.DrawPiles[2] = nil
	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u1", 2), CodeDrawPileEmpty)

	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u1", 0), CodeSuccess)
	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u1", 1), CodeAlreadyDrewThisTurn)
	// The once-per-turn check runs before the pile index is looked at.
	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u1", -1), CodeAlreadyDrewThisTurn)
}

func TestTurnOwnershipCheckedBeforeBudget(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	f.s.HasDrawnThisTurn = true
	f.s.CardsPlayedThisTurn = domain.DefaultMaxCardsPerTurn
	f.s.MainActionTaken = true

	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u2", 0), CodeNotYourTurn)
	expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u2", 101), CodeNotYourTurn)
	expectCode(t, ProvokeCodes, f.svc.ProvokeArchArmy(ctx, testMatch, "u2", "sand"), CodeNotYourTurn)
	expectCode(t, EndTurnCodes, f.svc.EndTurn(ctx, testMatch, "u2"), CodeNotYourTurn)
}

func TestMissingSessionIsUnexpected(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, "nope", "u1", 0), CodeUnexpectedError)
	expectCode(t, EndTurnCodes, f.svc.EndTurn(ctx, testMatch, "stranger"), CodeUnexpectedError)
}

func TestDrawnArchGoesToBoard(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	f.s.DrawPiles[0] = cards(t, 102, 152)

	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u1", 0), CodeSuccess)
	if len(f.player(t, "u1").Hand) != 0 {
		t.Fatalf("arch landed in hand")
	}
	if f.s.Board.Count(domain.ArmySand) != 1 {
		t.Fatalf("board sand count = %d", f.s.Board.Count(domain.ArmySand))
	}
	payload, _ := f.cbs["u2"].last(EventCardDrawn)
	if drawn := payload.(CardDrawnPayload); drawn.Card == nil || drawn.Card.ID != 152 || !drawn.ToBoard {
		t.Fatalf("other player should see the arch: %+v", drawn)
	}
}

func TestDrawnCardHiddenFromOthers(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	f.s.DrawPiles[0] = cards(t, 102, 111)

	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u1", 0), CodeSuccess)
	own, _ := f.cbs["u1"].last(EventCardDrawn)
	if c := own.(CardDrawnPayload).Card; c == nil || c.ID != 111 {
		t.Fatalf("drawer payload = %+v", own)
	}
	other, _ := f.cbs["u2"].last(EventCardDrawn)
	if other.(CardDrawnPayload).Card != nil {
		t.Fatalf("card leaked to other player: %+v", other)
	}
	if f.cbs["u2"].count(EventCardDrawn) != 1 || f.cbs["u1"].count(EventCardDrawn) != 1 {
		t.Fatalf("card drawn delivered more than once")
	}
}

func TestPlayCardLimits(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	u1 := f.player(t, "u1")
	u1.Hand = cards(t, 101, 102, 103, 111, 151)

	expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u1", 999), CodeCardNotInHand)
	expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u1", 111), CodeInvalidDinoHead)
	expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u1", 151), CodeInvalidDinoHead)
	expectCode(t, AttachCodes, f.svc.AttachBodyPartToDino(ctx, testMatch, "u1", 111, 101), CodeMustAttachToHead)
	expectCode(t, AttachCodes, f.svc.AttachBodyPartToDino(ctx, testMatch, "u1", 102, 101), CodeInvalidCardType)

	expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u1", 101), CodeSuccess)
	expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u1", 102), CodeSuccess)
	expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u1", 103), CodeAlreadyPlayedTwoCards)
	expectCode(t, AttachCodes, f.svc.AttachBodyPartToDino(ctx, testMatch, "u1", 111, 101), CodeAlreadyPlayedTwoCards)
	if len(u1.Dinos) != 2 {
		t.Fatalf("dinos = %d", len(u1.Dinos))
	}
}

func TestAttachArmyMismatch(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	u1 := f.player(t, "u1")
	u1.Hand = cards(t, 101, 211)

	expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u1", 101), CodeSuccess)
	expectCode(t, AttachCodes, f.svc.AttachBodyPartToDino(ctx, testMatch, "u1", 211, 101), CodeArmyTypeMismatch)

	if d := u1.Dinos[101]; d.Chest != nil || len(d.Cards()) != 1 {
		t.Fatalf("dino changed: %+v", d)
	}
	if _, ok := u1.HandCard(211); !ok {
		t.Fatalf("rejected part left the hand")
	}
}

func TestAttachLimbBeforeChest(t *testing.T) {
	for _, limb := range []int{121, 131, 141} {
		f := newFixture(t, "u1", "u2")
		u1 := f.player(t, "u1")
		u1.Hand = cards(t, 101, limb)

		expectCode(t, PlayHeadCodes, f.svc.PlayDinoHead(ctx, testMatch, "u1", 101), CodeSuccess)
		expectCode(t, AttachCodes, f.svc.AttachBodyPartToDino(ctx, testMatch, "u1", limb, 101), CodeInvalidCardType)
		if len(u1.Dinos[101].Cards()) != 1 {
			t.Fatalf("limb %d attached without chest", limb)
		}
	}
}

func TestProvokeWinAndLoss(t *testing.T) {
	tests := []struct {
		name       string
		archPower  int
		wantWin    bool
		wantPoints int
	}{
		{"dinos stronger", 50, true, 50},
		{"archs stronger", 70, false, 0},
		{"tie goes to archs", 60, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "u1", "u2")
			u1 := f.player(t, "u1")
			u1.Dinos[9001] = domain.NewDino(domain.Card{ID: 9001, Category: domain.CategoryDinoHead, Army: domain.ArmySand, Power: 60})
			f.s.Board.AddArch(domain.Card{ID: 9101, Category: domain.CategoryArch, Army: domain.ArmySand, Power: tt.archPower})

			expectCode(t, ProvokeCodes, f.svc.ProvokeArchArmy(ctx, testMatch, "u1", "land"), CodeSuccess)

			if u1.Points != tt.wantPoints {
				t.Fatalf("points = %d, want %d", u1.Points, tt.wantPoints)
			}
			_, dinoLeft := u1.Dinos[9001]
			if tt.wantWin == dinoLeft {
				t.Fatalf("dino kept = %v after win=%v", dinoLeft, tt.wantWin)
			}
			if archsLeft := f.s.Board.Count(domain.ArmySand); tt.wantWin == (archsLeft > 0) {
				t.Fatalf("archs left = %d after win=%v", archsLeft, tt.wantWin)
			}

			payload, ok := f.cbs["u2"].last(EventBattleResolved)
			if !ok {
				t.Fatalf("battle result not broadcast")
			}
			if res := payload.(BattleResolvedPayload); res.DinosWon != tt.wantWin || res.PointsAwarded != tt.wantPoints {
				t.Fatalf("battle payload = %+v", res)
			}
			if f.cbs["u2"].count(EventArchArmyProvoked) != 1 {
				t.Fatalf("provocation not broadcast")
			}
		})
	}
}

func TestProvokeValidation(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	f.s.Board.AddArch(card(t, 151))

	expectCode(t, ProvokeCodes, f.svc.ProvokeArchArmy(ctx, testMatch, "u1", "fire"), CodeInvalidArmyType)
	expectCode(t, ProvokeCodes, f.svc.ProvokeArchArmy(ctx, testMatch, "u1", "water"), CodeNoArchsInArmy)
	expectCode(t, ProvokeCodes, f.svc.ProvokeArchArmy(ctx, testMatch, "u1", "sand"), CodeSuccess)
	expectCode(t, ProvokeCodes, f.svc.ProvokeArchArmy(ctx, testMatch, "u1", "sand"), CodeAlreadyTookAction)
}

func TestConcurrentDoubleDraw(t *testing.T) {
	for round := 0; round < 20; round++ {
		f := newFixture(t, "u1", "u2")

		var wg sync.WaitGroup
		results := make([]Code, 2)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = f.svc.DrawCard(ctx, testMatch, "u1", i)
			}(i)
		}
		wg.Wait()

		counts := map[Code]int{}
		for _, c := range results {
			counts[c]++
		}
		if counts[CodeSuccess] != 1 || counts[CodeAlreadyDrewThisTurn] != 1 {
			t.Fatalf("round %d: results = %v", round, results)
		}
		if len(f.player(t, "u1").Hand) != 1 {
			t.Fatalf("round %d: hand = %d cards", round, len(f.player(t, "u1").Hand))
		}
	}
}

func TestEndTurnSkipsDisconnected(t *testing.T) {
	f := newFixture(t, "u1", "u2", "u3")
	f.player(t, "u2").Connected = false

	expectCode(t, EndTurnCodes, f.svc.EndTurn(ctx, testMatch, "u1"), CodeSuccess)
	if f.s.CurrentTurn != "u3" {
		t.Fatalf("turn = %s, want u3", f.s.CurrentTurn)
	}
	expectCode(t, EndTurnCodes, f.svc.EndTurn(ctx, testMatch, "u3"), CodeSuccess)
	if f.s.CurrentTurn != "u1" {
		t.Fatalf("turn = %s, want wrap to u1", f.s.CurrentTurn)
	}
}

func TestRemovePlayerEndsGame(t *testing.T) {
	f := newFixture(t, "u1", "u2", "u3")
	f.player(t, "u3").Points = 7

	expectCode(t, EndTurnCodes, f.svc.RemovePlayer(ctx, testMatch, "u1", "left"), CodeSuccess)
	if f.s.CurrentTurn != "u2" {
		t.Fatalf("turn = %s after removing the current player", f.s.CurrentTurn)
	}
	if f.cbs["u2"].count(EventPlayerExpelled) != 1 || f.cbs["u1"].count(EventPlayerExpelled) != 0 {
		t.Fatalf("expulsion delivered to the wrong players")
	}

	expectCode(t, EndTurnCodes, f.svc.RemovePlayer(ctx, testMatch, "u2", "left"), CodeGameEnded)
	if f.svc.Sessions().Count() != 0 {
		t.Fatalf("ended session still registered")
	}
	payload, ok := f.cbs["u3"].last(EventGameEnded)
	if !ok {
		t.Fatalf("u3 not told about the end")
	}
	end := payload.(GameEndedPayload)
	if end.Reason != EndReasonNotEnoughPlayers || end.WinnerUserID != "u3" || end.WinnerPoints != 7 {
		t.Fatalf("end payload = %+v", end)
	}
	if len(f.stats.records) != 1 || f.stats.records[0].WinnerID != "u3" {
		t.Fatalf("stats = %+v", f.stats.records)
	}

	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u3", 0), CodeUnexpectedError)
}

func TestStatisticsFailureIsDatabaseError(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	f.stats.err = errors.New("disk full")

	expectCode(t, EndTurnCodes, f.svc.RemovePlayer(ctx, testMatch, "u2", "left"), CodeDatabaseError)
	if f.svc.Sessions().Count() != 0 {
		t.Fatalf("match left open after statistics failure")
	}
}

func TestTimeLimitEndsGame(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	f.clock.Advance(domain.DefaultMatchDuration + time.Second)

	expectCode(t, EndTurnCodes, f.svc.EndTurn(ctx, testMatch, "u1"), CodeGameEnded)
	if f.stats.records[0].Reason != EndReasonTimeLimit {
		t.Fatalf("reason = %s", f.stats.records[0].Reason)
	}
}

func TestExpireTimedOut(t *testing.T) {
	f := newFixture(t, "u1", "u2")

	if n := f.svc.ExpireTimedOut(ctx); n != 0 {
		t.Fatalf("expired %d matches early", n)
	}
	f.clock.Advance(domain.DefaultMatchDuration)
	if n := f.svc.ExpireTimedOut(ctx); n != 1 {
		t.Fatalf("expired = %d, want 1", n)
	}
	if f.svc.Sessions().Count() != 0 || f.s.Phase != domain.PhaseEnded {
		t.Fatalf("timed out match still open")
	}
}

func TestLastCardDrawnEndsGame(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	f.s.DrawPiles = [][]domain.Card{cards(t, 111), nil, nil}

	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u1", 0), CodeSuccess)
	if f.s.Phase != domain.PhaseEnded || f.stats.records[0].Reason != EndReasonDecksExhausted {
		t.Fatalf("phase = %s, records = %+v", f.s.Phase, f.stats.records)
	}
}

func TestGameStateView(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	f.player(t, "u1").Hand = cards(t, 101, 111)
	f.player(t, "u2").Hand = cards(t, 201)
	f.clock.Advance(5 * time.Minute)

	view, code := f.svc.GameState(testMatch, "u2")
	if code != CodeSuccess {
		t.Fatalf("code = %s", code)
	}
	if len(view.Hand) != 1 || view.Hand[0].ID != 201 {
		t.Fatalf("own hand = %+v", view.Hand)
	}
	if view.Players[0].HandSize != 2 || view.CurrentTurn != "u1" || view.RemainingMoves != 3 {
		t.Fatalf("view = %+v", view)
	}
	if view.RemainingSeconds != 15*60 {
		t.Fatalf("remaining seconds = %d", view.RemainingSeconds)
	}
	if _, code := f.svc.GameState(testMatch, "stranger"); code != CodeUnexpectedError {
		t.Fatalf("stranger code = %s", code)
	}
}

func TestReconnectPlayer(t *testing.T) {
	f := newFixture(t, "u1", "u2")
	fresh := &recorder{}

	if code := f.svc.ReconnectPlayer(testMatch, "u2", fresh); code != CodeSuccess {
		t.Fatalf("reconnect code = %s", code)
	}
	expectCode(t, EndTurnCodes, f.svc.EndTurn(ctx, testMatch, "u1"), CodeSuccess)
	if fresh.count(EventTurnChanged) != 1 {
		t.Fatalf("new callback not used")
	}
	if code := f.svc.ReconnectPlayer("nope", "u2", fresh); code != CodeUnexpectedError {
		t.Fatalf("unknown match code = %s", code)
	}
}

func TestRecoverBoundary(t *testing.T) {
	f := newFixture(t, "u1", "u2")

	code := f.svc.run(ctx, "broken", testMatch, "u1", CodeSuccess, func(s *domain.GameSession, _ runtime.Logger) Code {
		idx := len(s.DrawPiles) + 1
		_ = s.DrawPiles[idx]
		return CodeSuccess
	})
	if code != CodeInvalidDrawPile {
		t.Fatalf("code = %s, want invalid draw pile", code)
	}

	code = f.svc.run(ctx, "broken", testMatch, "u1", CodeSuccess, func(*domain.GameSession, runtime.Logger) Code {
		panic("boom")
	})
	if code != CodeUnexpectedError {
		t.Fatalf("code = %s, want unexpected", code)
	}

	// the session lock must have been released
	expectCode(t, DrawCodes, f.svc.DrawCard(ctx, testMatch, "u1", 0), CodeSuccess)
}
