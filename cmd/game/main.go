package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/pong/internal/audio"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pong"})

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	player, closeAudio, err := audio.Open(settings.Audio, os.Stdout)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer closeAudio()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	renderer := loop.NewTerminalRenderer(os.Stdout, nil)
	driver := loop.NewDriver(input.StartStream(bufio.NewReader(os.Stdin)), renderer, loop.Options{
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Audio: player,
	})

	err = driver.Run(ctx)
	renderer.Close()
	stop()
	_ = term.Restore(fd, oldState)

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
