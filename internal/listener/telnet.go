package listener

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"syscall"

	"github.com/iammegalith/telnet"
)

// TelnetListener serves one game per telnet connection.
type TelnetListener struct {
	addr string
	cm   *ConnectionManager
}

func NewTelnetListener(addr string, cm *ConnectionManager) *TelnetListener {
	return &TelnetListener{
		addr: addr,
		cm:   cm,
	}
}

func (l *TelnetListener) Start(ctx context.Context) error {
	// Connections outlive ctx until the server has stopped accepting, then
	// they are cancelled together.
	connCtx, cancelConns := context.WithCancel(context.Background())
	handler := &telnetHandler{
		cFunc:       l.cm.AcceptConnection,
		connCtx:     connCtx,
		cancelConns: cancelConns,
	}

	svr := telnet.NewServer(l.addr, handler)
	stop := context.AfterFunc(ctx, func() {
		svr.Stop()
		handler.Stop()
	})
	defer stop()

	slog.InfoContext(ctx, "listening for telnet", "addr", l.addr)
	err := svr.ListenAndServe()
	if err != nil && ctx.Err() == nil {
		cancelConns()
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%s is already in use (another server running?)", l.addr)
		}
		return fmt.Errorf("serving telnet on %s: %w", l.addr, err)
	}

	return nil
}

type telnetHandler struct {
	wg          sync.WaitGroup
	cFunc       func(context.Context, io.ReadWriter)
	connCtx     context.Context
	cancelConns context.CancelFunc
}

func (h *telnetHandler) HandleTelnet(conn *telnet.Connection) {
	h.wg.Add(1)
	defer h.wg.Done()
	defer func() {
		if err := conn.Close(); err != nil {
			slog.WarnContext(h.connCtx, "closing telnet connection", "error", err)
		}
	}()

	slog.InfoContext(h.connCtx, "telnet connection established")

	// Every connection shares one context so shutdown ends them together.
	h.cFunc(h.connCtx, newLineConn(conn))
}

func (h *telnetHandler) Stop() {
	h.cancelConns()
	h.wg.Wait()
}
