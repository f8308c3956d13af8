package oracle

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/arnegreen/mealylearn/symbol"
	"github.com/google/uuid"
)

// Default tuning values for Socket, chosen to match the 10-20ms
// inter-query delay spec §5 recommends and the short per-command
// timeouts a local FTP-like SUL needs.
const (
	DefaultDialTimeout     = 500 * time.Millisecond
	DefaultReadTimeout     = 500 * time.Millisecond
	DefaultInterQueryDelay = 15 * time.Millisecond
	DefaultOutputWidth     = 3
)

// SocketConfig holds Socket's resolved tunables. It is never constructed
// directly by callers; use NewSocket with SocketOption values instead.
type SocketConfig struct {
	dialTimeout     time.Duration
	readTimeout     time.Duration
	interQueryDelay time.Duration
	outputWidth     int
	consumeBanner   bool
	logger          *slog.Logger
}

func defaultSocketConfig() SocketConfig {
	return SocketConfig{
		dialTimeout:     DefaultDialTimeout,
		readTimeout:     DefaultReadTimeout,
		interQueryDelay: DefaultInterQueryDelay,
		outputWidth:     DefaultOutputWidth,
		consumeBanner:   true,
		logger:          slog.Default(),
	}
}

// SocketOption configures a Socket at construction time.
type SocketOption func(*SocketConfig)

// WithDialTimeout bounds how long a single session's connect attempt may
// take. Must be positive.
func WithDialTimeout(d time.Duration) SocketOption {
	if d <= 0 {
		panic("oracle: WithDialTimeout requires a positive duration")
	}
	return func(c *SocketConfig) { c.dialTimeout = d }
}

// WithReadTimeout bounds how long a single command's reply may take.
// Must be positive.
func WithReadTimeout(d time.Duration) SocketOption {
	if d <= 0 {
		panic("oracle: WithReadTimeout requires a positive duration")
	}
	return func(c *SocketConfig) { c.readTimeout = d }
}

// WithInterQueryDelay sets the pause Ask sleeps before opening each
// session, to avoid exhausting ephemeral ports under load (spec §5).
// Zero is allowed (no delay); negative values panic.
func WithInterQueryDelay(d time.Duration) SocketOption {
	if d < 0 {
		panic("oracle: WithInterQueryDelay requires a non-negative duration")
	}
	return func(c *SocketConfig) { c.interQueryDelay = d }
}

// WithOutputWidth sets how many leading bytes of each reply line are kept
// as the Output token (3, for an FTP status code). Must be positive.
func WithOutputWidth(n int) SocketOption {
	if n <= 0 {
		panic("oracle: WithOutputWidth requires a positive width")
	}
	return func(c *SocketConfig) { c.outputWidth = n }
}

// WithConsumeBanner controls whether Ask reads and discards one line
// immediately after connecting, before sending the first symbol — the
// FTP-like teacher SUL sends a greeting banner that is not a reply to
// any command. Default true.
func WithConsumeBanner(consume bool) SocketOption {
	return func(c *SocketConfig) { c.consumeBanner = consume }
}

// WithLogger sets the structured logger Socket uses for session
// lifecycle events. A nil logger is replaced by slog.Default().
func WithLogger(l *slog.Logger) SocketOption {
	return func(c *SocketConfig) {
		if l == nil {
			l = slog.Default()
		}
		c.logger = l
	}
}

// Socket is a generic newline-delimited TCP membership-oracle adapter: it
// opens one fresh connection per Ask call, writes each symbol as a line,
// reads one reply line per symbol, and absorbs any transport failure into
// a trailing run of OFF outputs (spec §4.8/§7 — "absorbed by oracle
// wrapper into OFF tail"). It is the only component in this module aware
// of sockets, timing, or connection lifecycle; the learner calls only the
// Oracle interface, though importing package oracle also links this
// file's dependencies.
type Socket struct {
	addr string
	cfg  SocketConfig
}

// NewSocket returns a Socket dialing addr (host:port) for every session.
func NewSocket(addr string, opts ...SocketOption) (*Socket, error) {
	if addr == "" {
		return nil, ErrEmptyAddr
	}
	cfg := defaultSocketConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Socket{addr: addr, cfg: cfg}, nil
}

// Ask implements Oracle by opening one session against s.addr and
// replaying word symbol by symbol, with no caller-supplied cancellation
// beyond the configured timeouts. It is equivalent to
// AskContext(context.Background(), word).
func (s *Socket) Ask(word symbol.Word) symbol.OutputSeq {
	return s.AskContext(context.Background(), word)
}

// AskContext behaves like Ask but additionally bounds the whole session —
// the inter-query delay, the dial, and every write/read — to ctx: if ctx
// is cancelled or its deadline elapses mid-query, the session is torn
// down and every remaining position is filled with OFF, exactly as on any
// other transport failure (spec §5 — cancellation is a property of the
// Socket wrapper, not the core learner).
func (s *Socket) AskContext(ctx context.Context, word symbol.Word) symbol.OutputSeq {
	if word.IsEmpty() {
		panic("oracle: Ask called with the empty word")
	}

	n := word.Len()
	out := make(symbol.OutputSeq, n)

	if err := sleepContext(ctx, s.cfg.interQueryDelay); err != nil {
		fillOFF(out)
		return out
	}

	sessionID := uuid.New()
	log := s.cfg.logger.With("session_id", sessionID.String(), "addr", s.addr)

	dialer := net.Dialer{Timeout: s.cfg.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		log.Debug("oracle session: dial failed", "error", err)
		fillOFF(out)
		return out
	}
	defer conn.Close()
	log.Debug("oracle session: opened")

	// A context cancelled mid-session has no effect on an already-blocked
	// read/write deadline; close the connection to unblock it, exactly as
	// net/http's transport does for a cancelled request.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	reader := bufio.NewReader(conn)
	if s.cfg.consumeBanner {
		if err := s.readLine(conn, reader, nil); err != nil {
			log.Debug("oracle session: banner read failed", "error", err)
			fillOFF(out)
			return out
		}
	}

	alive := true
	for i := 0; i < n; i++ {
		if !alive {
			out[i] = symbol.OFF
			continue
		}
		line := string(word.At(i)) + "\r\n"
		if err := s.writeLine(conn, line); err != nil {
			log.Debug("oracle session: write failed", "error", err, "position", i)
			alive = false
			out[i] = symbol.OFF
			continue
		}
		var reply string
		if err := s.readLine(conn, reader, &reply); err != nil {
			log.Debug("oracle session: read failed", "error", err, "position", i)
			alive = false
			out[i] = symbol.OFF
			continue
		}
		out[i] = symbol.Output(truncate(reply, s.cfg.outputWidth))
	}

	log.Debug("oracle session: closed")
	return out
}

// sleepContext sleeps for d, returning early with ctx.Err() if ctx is
// done first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err() // non-blocking: only reports an already-cancelled ctx
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func fillOFF(out symbol.OutputSeq) {
	for i := range out {
		out[i] = symbol.OFF
	}
}

func (s *Socket) writeLine(conn net.Conn, line string) error {
	if err := conn.SetWriteDeadline(time.Now().Add(s.cfg.readTimeout)); err != nil {
		return err
	}
	_, err := conn.Write([]byte(line))
	return err
}

func (s *Socket) readLine(conn net.Conn, reader *bufio.Reader, out *string) error {
	if err := conn.SetReadDeadline(time.Now().Add(s.cfg.readTimeout)); err != nil {
		return err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("oracle: read line: %w", err)
	}
	if out != nil {
		*out = line
	}
	return nil
}

func truncate(s string, width int) string {
	trimmed := trimCRLF(s)
	if len(trimmed) <= width {
		return trimmed
	}
	return trimmed[:width]
}

func trimCRLF(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
