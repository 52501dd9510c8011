package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchTable(t *testing.T) {
	d := NewDispatchTable(
		HandleEvent(func(hc HandlerCtx, ev Event) error { return nil }),
		HandleCommand(func(hc HandlerCtx, cmd Command) error { return nil }),
	)

	assert.True(t, d.Handles(KindEvent))
	assert.True(t, d.Handles(KindCommand))
	assert.False(t, d.Handles(KindMessage))
	assert.Len(t, d.Kinds(), 2)
}

func TestDispatchTable_handleKind(t *testing.T) {
	var got Message
	d := NewDispatchTable(
		HandleKind("custom", func(hc HandlerCtx, msg Message) error {
			got = msg
			return nil
		}),
	)

	require.True(t, d.Handles("custom"))
	require.NoError(t, d.handlers["custom"](nil, NewEvent("payload")))
	require.Equal(t, "payload", got.Content())
}

func TestHandleMsg_typed(t *testing.T) {
	var got orderPlaced
	d := NewDispatchTable(
		HandleMsg[orderPlaced](func(hc HandlerCtx, msg orderPlaced) error {
			got = msg
			return nil
		}),
	)

	kind := DeriveKind(orderPlaced{})
	require.True(t, d.Handles(kind))

	require.NoError(t, d.handlers[kind](nil, orderPlaced{Base{Data: "o-1"}}))
	require.Equal(t, "o-1", got.Content())
}

func TestHandleMsg_wrongType(t *testing.T) {
	d := NewDispatchTable(
		HandleMsg[orderPlaced](func(hc HandlerCtx, msg orderPlaced) error { return nil }),
	)

	kind := DeriveKind(orderPlaced{})
	err := d.handlers[kind](nil, NewEvent("not an order"))
	require.ErrorContains(t, err, "unexpected type")
}

func TestInit_registersInitFunc(t *testing.T) {
	d := NewDispatchTable(
		Init(func(hc HandlerCtx) error { return nil }),
		Init(func(hc HandlerCtx) error { return nil }),
	)
	assert.Len(t, d.inits, 2)
	assert.Empty(t, d.Kinds())
}
