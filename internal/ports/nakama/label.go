package nakama

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	phaseLobby   = "lobby"
	phasePlaying = "playing"
)

// MatchLabel is the searchable label of a match.
type MatchLabel struct {
	Open  int
	Phase string
}

// Marshal renders the label as the JSON object Nakama indexes.
func (l MatchLabel) Marshal() (string, error) {
	label, err := structpb.NewStruct(map[string]interface{}{
		"open":  l.Open,
		"game":  LabelGame,
		"phase": l.Phase,
	})
	if err != nil {
		return "", err
	}
	b, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(label)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (ms *MatchState) label() MatchLabel {
	phase := phaseLobby
	if ms.Playing {
		phase = phasePlaying
	}
	return MatchLabel{Open: ms.GetOpenSeatsCount(), Phase: phase}
}
