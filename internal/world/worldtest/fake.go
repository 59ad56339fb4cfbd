// Package worldtest provides an in-memory world.Client for tests.
package worldtest

import (
	"context"
	"fmt"

	"github.com/aretw0/troller/internal/world"
)

// Call is one recorded block placement.
type Call struct {
	Op    string
	From  world.Vec3
	To    world.Vec3
	Block world.Block
}

const (
	OpSetBlock  = "setBlock"
	OpSetBlocks = "setBlocks"
)

// Fake is a world.Client backed by maps. Players are listed in Names order.
type Fake struct {
	Names     []string
	IDs       map[string]int
	Positions map[int]world.Vec3

	// OnTilePos, when set, runs before each position lookup so tests can
	// move an entity between reads.
	OnTilePos func(entityID int)

	// Err, when set, is returned by every call.
	Err error

	Calls []Call
}

// New creates a Fake with one player per name. Ids start at 1 and every
// player stands at pos.
func New(pos world.Vec3, names ...string) *Fake {
	f := &Fake{
		Names:     names,
		IDs:       make(map[string]int, len(names)),
		Positions: make(map[int]world.Vec3, len(names)),
	}
	for i, name := range names {
		f.IDs[name] = i + 1
		f.Positions[i+1] = pos
	}
	return f
}

func (f *Fake) Usernames(ctx context.Context) ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]string, len(f.Names))
	copy(out, f.Names)
	return out, nil
}

func (f *Fake) PlayerEntityID(ctx context.Context, name string) (int, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	id, ok := f.IDs[name]
	if !ok {
		return 0, fmt.Errorf("player %q: %w", name, world.ErrServerFail)
	}
	return id, nil
}

func (f *Fake) TilePos(ctx context.Context, entityID int) (world.Vec3, error) {
	if f.Err != nil {
		return world.Vec3{}, f.Err
	}
	if f.OnTilePos != nil {
		f.OnTilePos(entityID)
	}
	pos, ok := f.Positions[entityID]
	if !ok {
		return world.Vec3{}, fmt.Errorf("entity %d: %w", entityID, world.ErrServerFail)
	}
	return pos, nil
}

func (f *Fake) SetBlock(ctx context.Context, pos world.Vec3, b world.Block) error {
	if f.Err != nil {
		return f.Err
	}
	f.Calls = append(f.Calls, Call{Op: OpSetBlock, From: pos, To: pos, Block: b})
	return nil
}

func (f *Fake) SetBlocks(ctx context.Context, from, to world.Vec3, b world.Block) error {
	if f.Err != nil {
		return f.Err
	}
	f.Calls = append(f.Calls, Call{Op: OpSetBlocks, From: from, To: to, Block: b})
	return nil
}

// CallsOf returns the recorded calls with the given op.
func (f *Fake) CallsOf(op string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

var _ world.Client = (*Fake)(nil)
