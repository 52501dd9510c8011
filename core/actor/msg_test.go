package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/troupe-go/core/typename"
)

type orderPlaced struct{ Base }

func (m orderPlaced) MessageKind() Kind { return DeriveKind(m) }

func TestMessage_kinds(t *testing.T) {
	assert.Equal(t, KindMessage, Base{}.MessageKind())
	assert.Equal(t, KindEvent, NewEvent(nil).MessageKind())
	assert.Equal(t, KindCommand, NewCommand(nil).MessageKind())
}

func TestMessage_content(t *testing.T) {
	ev := NewEvent("Content")
	require.Equal(t, "Content", ev.Content())

	cmd := NewCommand(42)
	require.Equal(t, 42, cmd.Content())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindEvent, KindOf(NewEvent("x")))
	assert.Equal(t, KindMessage, KindOf(Base{Data: "x"}))

	// Non-message values fall back to their type name.
	assert.Equal(t, Kind(typename.Of("")), KindOf("plain string"))
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, KindEvent, KindFor[Event]())
	assert.Equal(t, KindCommand, KindFor[Command]())
	assert.Equal(t, DeriveKind(orderPlaced{}), KindFor[orderPlaced]())
}

func TestDeriveKind(t *testing.T) {
	kind := DeriveKind(orderPlaced{})
	require.Equal(t, Kind(typename.Of(orderPlaced{})), kind)
	require.NotEqual(t, KindEvent, kind)
	require.NotEqual(t, KindMessage, kind)
}

func TestMessage_embeddedEventKeepsKind(t *testing.T) {
	type userSignedUp struct{ Event }
	m := userSignedUp{NewEvent("u1")}
	assert.Equal(t, KindEvent, KindOf(m))
	assert.Equal(t, "u1", m.Content())
}
