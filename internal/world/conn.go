package world

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"strconv"
	"strings"
	"syscall"
)

var (
	// ErrServerFail is returned when the server answers a query with "Fail".
	ErrServerFail = errors.New("server reported failure")
	// ErrMalformedReply is returned when a reply cannot be parsed.
	ErrMalformedReply = errors.New("malformed reply")
)

const failReply = "Fail"

// Conn speaks the line protocol over a single TCP connection.
// It is not safe for concurrent use.
type Conn struct {
	conn   net.Conn
	reader *bufio.Reader
	logger *slog.Logger
}

// ConnOption configures a Conn.
type ConnOption func(*Conn)

// WithLogger logs every command at debug level.
func WithLogger(logger *slog.Logger) ConnOption {
	return func(c *Conn) {
		c.logger = logger
	}
}

// Address joins host and port. An empty host means localhost.
func Address(host string, port int) string {
	if host == "" {
		host = "localhost"
	}
	if port <= 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Dial connects to the scripting API at addr.
func Dial(ctx context.Context, addr string, opts ...ConnOption) (*Conn, error) {
	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return NewConn(nc, opts...), nil
}

// NewConn wraps an established connection.
func NewConn(nc net.Conn, opts ...ConnOption) *Conn {
	c := &Conn{
		conn:   nc,
		reader: bufio.NewReader(nc),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsConnRefused reports whether err is a refused connection.
func IsConnRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}

// Close closes the connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Usernames sends world.getPlayerNames and splits the reply on "|".
// An empty reply means nobody is connected.
func (c *Conn) Usernames(ctx context.Context) ([]string, error) {
	reply, err := c.query(ctx, "world.getPlayerNames")
	if err != nil {
		return nil, err
	}
	if reply == "" {
		return nil, nil
	}
	return strings.Split(reply, "|"), nil
}

// PlayerEntityID sends world.getPlayerEntityId for name.
func (c *Conn) PlayerEntityID(ctx context.Context, name string) (int, error) {
	reply, err := c.query(ctx, "world.getPlayerEntityId", name)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(reply)
	if err != nil {
		return 0, fmt.Errorf("%w: entity id %q", ErrMalformedReply, reply)
	}
	return id, nil
}

// TilePos sends entity.getTile and parses the x,y,z reply.
func (c *Conn) TilePos(ctx context.Context, entityID int) (Vec3, error) {
	reply, err := c.query(ctx, "entity.getTile", entityID)
	if err != nil {
		return Vec3{}, err
	}
	return parseVec3(reply)
}

// SetBlock sends world.setBlock. The server does not reply.
func (c *Conn) SetBlock(ctx context.Context, pos Vec3, b Block) error {
	return c.send(ctx, "world.setBlock", pos.X, pos.Y, pos.Z, b.ID, b.Data)
}

// SetBlocks sends world.setBlocks for the cuboid between from and to.
// The server does not reply.
func (c *Conn) SetBlocks(ctx context.Context, from, to Vec3, b Block) error {
	return c.send(ctx, "world.setBlocks",
		from.X, from.Y, from.Z,
		to.X, to.Y, to.Z,
		b.ID, b.Data)
}

// send writes one command. Set operations have no reply.
func (c *Conn) send(ctx context.Context, method string, args ...any) error {
	if err := c.arm(ctx); err != nil {
		return err
	}
	line := formatCommand(method, args...)
	c.logger.Debug("world command", "command", strings.TrimSpace(line))
	if _, err := io.WriteString(c.conn, line); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// query writes one command and reads its single-line reply.
func (c *Conn) query(ctx context.Context, method string, args ...any) (string, error) {
	if err := c.send(ctx, method, args...); err != nil {
		return "", err
	}
	reply, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("%s: read reply: %w", method, err)
	}
	reply = strings.TrimRight(reply, "\r\n")
	c.logger.Debug("world reply", "method", method, "reply", reply)
	if reply == failReply {
		return "", fmt.Errorf("%s: %w", method, ErrServerFail)
	}
	return reply, nil
}

// arm applies the context deadline to the socket.
func (c *Conn) arm(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline, _ := ctx.Deadline()
	if err := c.conn.SetDeadline(deadline); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("set deadline: %w", err)
	}
	return nil
}

func formatCommand(method string, args ...any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return method + "(" + strings.Join(parts, ",") + ")\n"
}

func parseVec3(s string) (Vec3, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Vec3{}, fmt.Errorf("%w: position %q", ErrMalformedReply, s)
	}
	var xyz [3]int
	for i, f := range fields {
		n, err := parseCoord(strings.TrimSpace(f))
		if err != nil {
			return Vec3{}, fmt.Errorf("%w: position %q", ErrMalformedReply, s)
		}
		xyz[i] = n
	}
	return Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// parseCoord accepts integers and, for servers that send them, floats, which
// are floored onto the block grid.
func parseCoord(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(f)), nil
}

var _ Client = (*Conn)(nil)
