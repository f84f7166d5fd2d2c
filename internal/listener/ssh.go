package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

const sshBanner = "You are connecting to a survivor shelter. Anyone may enter.\n"

// SshListener serves one game per ssh connection. Any user name is accepted
// without authentication.
type SshListener struct {
	addr    string
	cm      *ConnectionManager
	hostKey ssh.Signer
}

func NewSshListener(addr string, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	return &SshListener{
		addr:    addr,
		cm:      cm,
		hostKey: hostKey,
	}
}

func (l *SshListener) serverConfig() *ssh.ServerConfig {
	config := &ssh.ServerConfig{
		NoClientAuth:  true,
		ServerVersion: "SSH-2.0-survive",
		BannerCallback: func(ssh.ConnMetadata) string {
			return sshBanner
		},
	}
	config.AddHostKey(l.hostKey)
	return config
}

func (l *SshListener) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", l.addr, err)
	}
	slog.InfoContext(ctx, "listening for ssh", "addr", l.addr)

	config := l.serverConfig()
	connCtx, cancelConns := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				cancelConns()
				wg.Wait()
				return nil
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Go(func() {
			l.serve(connCtx, conn, config)
		})
	}
}

func (l *SshListener) serve(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	defer conn.Close()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.WarnContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer sshConn.Close()

	slog.InfoContext(ctx, "ssh connection established", "remote", conn.RemoteAddr(), "user", sshConn.User())

	// Unblocks the channel loop on shutdown.
	go func() {
		<-ctx.Done()
		_ = sshConn.Close()
	}()
	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			_ = newChan.Reject(ssh.UnknownChannelType, "only interactive sessions are supported")
			continue
		}

		ch, requests, err := newChan.Accept()
		if err != nil {
			slog.WarnContext(ctx, "accepting ssh channel", "error", err)
			continue
		}

		if !waitForShell(ctx, requests) {
			_ = ch.Close()
			continue
		}

		l.cm.AcceptConnection(ctx, newLineConn(ch))

		// The game is over for this connection; let the client exit cleanly.
		status := struct{ Status uint32 }{0}
		_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(&status))
		_ = ch.Close()
		return
	}
}

// waitForShell answers channel requests until the client asks for a shell.
// Clients hold back input until that reply arrives. Pty requests are refused
// so the client keeps local echo and line editing.
func waitForShell(ctx context.Context, requests <-chan *ssh.Request) bool {
	shell := make(chan struct{})
	go func() {
		opened := false
		for req := range requests {
			ok := req.Type == "shell" && !opened
			if req.WantReply {
				_ = req.Reply(ok, nil)
			}
			if ok {
				opened = true
				close(shell)
			}
		}
	}()

	select {
	case <-shell:
		return true
	case <-ctx.Done():
		return false
	}
}
