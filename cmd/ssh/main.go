package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/pong/internal/audio"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "pong-ssh",
		ReportTimestamp: true,
	})

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("config error", "err", err)
	}
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config",
		"host", settings.SSH.Host,
		"port", settings.SSH.Port,
		"hostKeyPath", settings.SSH.HostKey,
		"maxSessions", settings.SSH.MaxSessions,
		"idleTimeout", settings.SSH.IdleTimeout,
		"workingDir", workingDir,
	)

	hub := server.NewHub(settings.SSH.MaxSessions, logger)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSH.Host, settings.SSH.Port)),
		wish.WithMiddleware(
			gameMiddleware(hub, settings, logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if settings.SSH.HostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSH.HostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// End every match and wait for the sessions to say goodbye
	if remaining := hub.Shutdown(15 * time.Second); remaining > 0 {
		logger.Warn("closing with live sessions", "remaining", remaining)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs one hot-seat match per SSH session.
func gameMiddleware(hub *server.Hub, settings config.Settings, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			session, err := hub.Register(sess.Context(), sess.User())
			if err != nil {
				fmt.Fprintf(sess, "Sorry, cannot start a match: %v\n", err)
				return
			}
			defer hub.Unregister(session.ID)

			logger.Info("New game session",
				"id", session.ID, "user", sess.User(), "terminal", pty.Term,
				"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

			// Listen for window size changes in a goroutine
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			var player audio.Player = audio.Silent{}
			if settings.Audio != config.AudioOff {
				player = audio.Bell{W: sess}
			}

			renderer := loop.NewTerminalRenderer(sess, sizeTracker.getSize)
			driver := loop.NewDriver(input.StartStream(bufio.NewReader(sess)), renderer, loop.Options{
				Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
				Audio:       player,
				IdleTimeout: settings.SSH.IdleTimeout.Duration,
			})

			err = driver.Run(session.Context())
			renderer.Close()

			switch {
			case err == nil:
			case errors.Is(err, loop.ErrIdleTimeout):
				fmt.Fprintf(sess, "Disconnected after %s without input.\r\n", settings.SSH.IdleTimeout)
			case errors.Is(err, context.Canceled):
				if sess.Context().Err() == nil {
					fmt.Fprint(sess, "Server is shutting down. Thanks for playing!\r\n")
				}
			default:
				logger.Error("Game error", "id", session.ID, "user", sess.User(), "err", err)
			}

			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
