package menu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noop(context.Context) error { return nil }

func TestDeriveLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"air_nuke", "Air nuke"},
		{"continuous_bomb", "Continuous bomb"},
		{"wall", "Wall"},
		{"EXIT_program", "Exit program"},
		{"", ""},
		{"élan_vital", "Élan vital"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveLabel(tt.name))
		})
	}
}

func TestBuilder_PreservesOrderAndDescriptions(t *testing.T) {
	b := NewBuilder().
		Add("wall", noop).
		Add("air_nuke", noop, WithDescription("Nuke a player")).
		Add("continuous_bomb", noop).
		Add("exit_program", noop, WithDescription("Exit"), AsTerminal())

	actions := b.Actions()
	if assert.Len(t, actions, 4) {
		assert.Equal(t, "Wall", actions[0].Label)
		assert.Equal(t, "Nuke a player", actions[1].Label)
		assert.Equal(t, "Continuous bomb", actions[2].Label)
		assert.Equal(t, "Exit", actions[3].Label)
		assert.True(t, actions[3].Terminal)
		assert.False(t, actions[0].Terminal)
	}
}

func TestBuilder_SkipsReservedAndEntryPoint(t *testing.T) {
	b := NewBuilder().
		Add("_internal", noop).
		Add("__init__", noop).
		Add(EntryPoint, noop).
		Add("missing_op", nil).
		Add("wall", noop)

	actions := b.Actions()
	if assert.Len(t, actions, 1) {
		assert.Equal(t, "wall", actions[0].Name)
	}
}

func TestBuilder_ActionsIsACopy(t *testing.T) {
	b := NewBuilder().Add("wall", noop)
	actions := b.Actions()
	actions[0].Label = "changed"

	assert.Equal(t, "Wall", b.Actions()[0].Label)
}
