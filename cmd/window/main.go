package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/audio"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pong"})

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// The window has no terminal bell; bell mode falls back to silence.
	mode := settings.Audio
	if mode == config.AudioBell {
		mode = config.AudioOff
	}
	player, closeAudio, err := audio.Open(mode, nil)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer closeAudio()

	driver := loop.NewDriver(nil, nil, loop.Options{
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Audio: player,
	})
	faces := window.LoadFaces(window.DefaultFontPaths, logger)

	if err := window.Run(window.New(driver, faces)); err != nil {
		logger.Error("game error", "err", err)
		closeAudio()
		os.Exit(1)
	}
}
