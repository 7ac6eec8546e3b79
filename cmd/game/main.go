package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/asteroid-defense/internal/audio"
	"github.com/tomz197/asteroid-defense/internal/config"
	"github.com/tomz197/asteroid-defense/internal/display/ledmatrix"
	"github.com/tomz197/asteroid-defense/internal/loop"
	"golang.org/x/term"
)

func main() {
	config.Load()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{
		ProjectileTick: config.GetEnvDuration("PROJECTILE_TICK", loop.DefaultProjectileTick),
		AsteroidTick:   config.GetEnvDuration("ASTEROID_TICK", loop.DefaultAsteroidTick),
		Lives:          config.GetEnvInt("LIVES", loop.DefaultLives),
		Seed:           config.GetEnvInt64("GAME_SEED", 0),
	}

	// Sound is best-effort: no audio device just means a silent game.
	if synth, err := audio.NewSynth(); err == nil {
		opts.Audio = synth
	}

	// When a matrix transport is configured, mirror the game onto the
	// real 8x16 LED matrix as well.
	if dev := config.GetEnv("LED_SPI_DEV", ""); dev != "" {
		f, err := os.OpenFile(dev, os.O_WRONLY, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open LED matrix device %s: %v\n", dev, err)
		} else {
			defer f.Close()
			opts.Matrix = ledmatrix.New(f)
		}
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
