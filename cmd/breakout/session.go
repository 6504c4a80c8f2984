package main

import (
	"fmt"
	"os"
	"os/user"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagSound bool

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openServices opens the score store and, if asked, the audio device.
// Both are optional: failures are reported and the game runs without them.
func openServices() tui.Services {
	svc := tui.Services{
		Logger: appLogger,
		Player: currentPlayer(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		appLogger.Warn("scores disabled", "err", err)
	} else {
		svc.Store = store
	}

	if flagSound {
		sounds := audio.NewSoundManager(appLogger)
		if err := sounds.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			svc.Sounds = sounds
		}
	}

	return svc
}

func closeServices(svc tui.Services) {
	svc.Sounds.Cleanup()
	if svc.Store != nil {
		svc.Store.Close()
	}
}

func currentPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
