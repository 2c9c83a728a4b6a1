package nakama

import (
	"context"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/proto"

	"archsdinos/internal/app"
	"archsdinos/internal/ports"
)

// presenceCallback delivers app events to a single presence as protobuf messages.
type presenceCallback struct {
	dispatcher runtime.MatchDispatcher
	presence   runtime.Presence
}

func newPresenceCallback(dispatcher runtime.MatchDispatcher, presence runtime.Presence) *presenceCallback {
	return &presenceCallback{dispatcher: dispatcher, presence: presence}
}

func (c *presenceCallback) Deliver(_ context.Context, kind string, payload any) error {
	opCode, ok := eventOpCodes[app.EventKind(kind)]
	if !ok {
		return fmt.Errorf("no op code for event %q", kind)
	}
	message, err := toProtoEvent(payload)
	if err != nil {
		return fmt.Errorf("convert %s: %w", kind, err)
	}
	data, err := proto.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kind, err)
	}
	return c.dispatcher.BroadcastMessage(opCode, data, []runtime.Presence{c.presence}, nil, true)
}

var _ ports.PlayerCallback = (*presenceCallback)(nil)
