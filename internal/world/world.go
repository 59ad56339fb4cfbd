// Package world is the client side of the game's scripting API.
//
// Everything the effects need goes through the Client interface so that the
// menu and the effects can be exercised against a fake.
package world

import (
	"context"
	"fmt"
)

// DefaultPort is the port the scripting API listens on.
const DefaultPort = 4711

// Vec3 is an integer block-grid coordinate.
type Vec3 struct {
	X, Y, Z int
}

// Add offsets v by d.
func (v Vec3) Add(d Vec3) Vec3 {
	return Vec3{v.X + d.X, v.Y + d.Y, v.Z + d.Z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("%d,%d,%d", v.X, v.Y, v.Z)
}

// Block is a material id plus its state data.
type Block struct {
	ID   int
	Data int
}

// WithData returns b with its state data replaced.
func (b Block) WithData(data int) Block {
	b.Data = data
	return b
}

func (b Block) String() string {
	return fmt.Sprintf("%d,%d", b.ID, b.Data)
}

var (
	Air          = Block{ID: 0}
	Bedrock      = Block{ID: 7}
	WaterFlowing = Block{ID: 8}
	TNT          = Block{ID: 46}
)

// Client is the subset of the scripting API the tool consumes.
type Client interface {
	// Usernames lists the names of connected players.
	Usernames(ctx context.Context) ([]string, error)
	// PlayerEntityID resolves a username to its entity id.
	PlayerEntityID(ctx context.Context, name string) (int, error)
	// TilePos reads the block position of an entity.
	TilePos(ctx context.Context, entityID int) (Vec3, error)
	// SetBlock places one block.
	SetBlock(ctx context.Context, pos Vec3, b Block) error
	// SetBlocks fills the cuboid between two opposite corners.
	SetBlocks(ctx context.Context, from, to Vec3, b Block) error
}
