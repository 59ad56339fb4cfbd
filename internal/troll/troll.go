// Package troll implements the world effects offered by the menu.
package troll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/troller/internal/world"
	"github.com/aretw0/troller/pkg/menu"
	"github.com/aretw0/troller/pkg/prompt"
	"github.com/aretw0/troller/pkg/style"
)

// Effect bounds.
const (
	MinNukeSize = 3
	MaxNukeSize = 24

	MinBombSeconds = 4
	MaxBombSeconds = 60
	// BombDrop is how far below the player's feet each bomb is placed.
	BombDrop = 2

	MinFloodDepth = 1
	MaxFloodDepth = 16
)

// NukeWarning is printed before an air nuke asks anything.
const NukeWarning = "WARNING: AIR NUKE WILL CAUSE DAMAGE"

// Wall corners.
var (
	WallFrom = world.Vec3{X: -128, Y: -10, Z: -1}
	WallTo   = world.Vec3{X: 128, Y: 64, Z: 1}
)

// ErrNoPlayers is returned when no player is connected.
var ErrNoPlayers = errors.New("no players connected")

// Player is a connected player and its entity id.
type Player struct {
	Name     string
	EntityID int
}

// Controller runs effects against a single world connection.
type Controller struct {
	world    world.Client
	prompter *prompt.Prompter
	out      io.Writer
	styler   style.Styler
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the debug logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithClock replaces time.Now for the timed effects.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// New creates a Controller. Output goes to the prompter's writer.
func New(w world.Client, p *prompt.Prompter, opts ...Option) *Controller {
	c := &Controller{
		world:    w,
		prompter: p,
		out:      p.Writer(),
		styler:   p.Styler(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Menu declares the effects in display order, with Exit last.
func (c *Controller) Menu(opts ...menu.Option) (*menu.Menu, error) {
	return menu.NewBuilder().
		Add("air_nuke", c.AirNuke).
		Add("continuous_bomb", c.ContinuousBomb).
		Add("flood", c.Flood).
		Add("wall", c.Wall).
		Add("exit_program", c.Exit, menu.WithDescription("Exit"), menu.AsTerminal()).
		Build(c.prompter, opts...)
}

// SelectPlayer lists connected players and asks for one until the choice is
// in range.
func (c *Controller) SelectPlayer(ctx context.Context) (Player, error) {
	names, err := c.world.Usernames(ctx)
	if err != nil {
		return Player{}, fmt.Errorf("list players: %w", err)
	}
	if len(names) == 0 {
		return Player{}, ErrNoPlayers
	}

	fmt.Fprintln(c.out, c.styler.Strong("Players for which entity IDs were identified:"))
	for i, name := range names {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, c.styler.Accent(name))
	}

	for {
		choice, err := c.prompter.Integer(ctx, "Select a player", nil)
		if err != nil {
			return Player{}, err
		}
		if choice >= 1 && choice <= len(names) {
			name := names[choice-1]
			id, err := c.world.PlayerEntityID(ctx, name)
			if err != nil {
				return Player{}, fmt.Errorf("resolve %s: %w", name, err)
			}
			c.logger.Debug("player selected", "name", name, "entity_id", id)
			return Player{Name: name, EntityID: id}, nil
		}
		fmt.Fprintln(c.out, c.styler.Error(menu.InvalidChoice))
	}
}

// AirNuke clears (or, when trolling, fills with TNT) a cube around a player.
func (c *Controller) AirNuke(ctx context.Context) error {
	fmt.Fprintln(c.out, c.styler.Warning(NukeWarning))
	tnt, err := c.prompter.Boolean(ctx, "DO YOU WANT TO DO A LITTLE TROLLING?")
	if err != nil {
		return err
	}
	material := world.Air
	if tnt {
		material = world.TNT
	}

	player, err := c.SelectPlayer(ctx)
	if err != nil {
		return err
	}
	size, err := c.prompter.Integer(ctx, "Input size", prompt.Range(MinNukeSize, MaxNukeSize))
	if err != nil {
		return err
	}

	pos, err := c.world.TilePos(ctx, player.EntityID)
	if err != nil {
		return fmt.Errorf("locate %s: %w", player.Name, err)
	}
	from := pos.Add(world.Vec3{X: -size, Y: -size, Z: -size})
	to := pos.Add(world.Vec3{X: size, Y: size, Z: size})
	if err := c.world.SetBlocks(ctx, from, to, material.WithData(1)); err != nil {
		return fmt.Errorf("nuke: %w", err)
	}

	c.logger.Debug("air nuke", "player", player.Name, "size", size, "tnt", tnt)
	fmt.Fprintln(c.out, c.styler.Success(fmt.Sprintf("Nuked a radius of %d around %s.", size, player.Name)))
	return nil
}

// ContinuousBomb drops primed TNT under a player until the deadline passes.
func (c *Controller) ContinuousBomb(ctx context.Context) error {
	player, err := c.SelectPlayer(ctx)
	if err != nil {
		return err
	}
	seconds, err := c.prompter.Integer(ctx, "How long should this go on?", prompt.Range(MinBombSeconds, MaxBombSeconds))
	if err != nil {
		return err
	}

	deadline := c.now().Add(time.Duration(seconds) * time.Second)
	placed := 0
	for c.now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}
		pos, err := c.world.TilePos(ctx, player.EntityID)
		if err != nil {
			return fmt.Errorf("locate %s: %w", player.Name, err)
		}
		if err := c.world.SetBlock(ctx, pos.Add(world.Vec3{Y: -BombDrop}), world.TNT.WithData(1)); err != nil {
			return fmt.Errorf("place bomb: %w", err)
		}
		placed++
	}

	c.logger.Debug("continuous bomb finished", "player", player.Name, "seconds", seconds, "placed", placed)
	fmt.Fprintln(c.out, c.styler.Success(fmt.Sprintf("Dropped %d bombs on %s.", placed, player.Name)))
	return nil
}

// Flood fills a square pool of flowing water starting at a player's feet.
func (c *Controller) Flood(ctx context.Context) error {
	player, err := c.SelectPlayer(ctx)
	if err != nil {
		return err
	}
	size, err := c.prompter.Integer(ctx, "Input size", prompt.Range(MinNukeSize, MaxNukeSize))
	if err != nil {
		return err
	}
	depth, err := c.prompter.Integer(ctx, "Input depth", prompt.Range(MinFloodDepth, MaxFloodDepth))
	if err != nil {
		return err
	}

	pos, err := c.world.TilePos(ctx, player.EntityID)
	if err != nil {
		return fmt.Errorf("locate %s: %w", player.Name, err)
	}
	from := world.Vec3{X: pos.X - size, Y: pos.Y, Z: pos.Z - size}
	to := world.Vec3{X: pos.X + size, Y: pos.Y + depth - 1, Z: pos.Z + size}
	if err := c.world.SetBlocks(ctx, from, to, world.WaterFlowing); err != nil {
		return fmt.Errorf("flood: %w", err)
	}

	fmt.Fprintln(c.out, c.styler.Success(fmt.Sprintf("Flooded %s.", player.Name)))
	return nil
}

// Wall raises a bedrock wall across the origin.
func (c *Controller) Wall(ctx context.Context) error {
	fmt.Fprintln(c.out, c.styler.Warning("Building a bedrock wall across the map."))
	if err := c.world.SetBlocks(ctx, WallFrom, WallTo, world.Bedrock); err != nil {
		return fmt.Errorf("wall: %w", err)
	}
	fmt.Fprintln(c.out, c.styler.Success("Wall built."))
	return nil
}

// Exit prints the farewell. The menu ends the process afterwards.
func (c *Controller) Exit(ctx context.Context) error {
	fmt.Fprintln(c.out, c.styler.Info("Exiting the program."))
	return nil
}
