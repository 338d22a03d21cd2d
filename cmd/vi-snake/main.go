package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/vi-snake.log")
	muteFlag  = flag.Bool("mute", false, "Disable sound")
	seedFlag  = flag.Int64("seed", 0, "Food placement seed (0 picks one from the clock)")
	envFlag   = flag.String("env", ".env", "Dotenv file read before VI_SNAKE_* variables, if present")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := loadEnv(*envFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", *envFlag, err)
		return 1
	}

	if !terminal.IsTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "vi-snake needs an interactive terminal")
		return 1
	}

	bounds := core.Bounds{Width: constants.BoardWidth, Height: constants.BoardHeight}
	if w, h, err := terminal.Size(os.Stdout); err == nil && (w <= bounds.Width || h <= bounds.Height) {
		fmt.Fprintf(os.Stderr, "Terminal is %dx%d, need at least %dx%d\n", w, h, bounds.Width+1, bounds.Height+1)
		return 1
	}

	term, err := render.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.RegisterCrashScreen(term)
	defer func() {
		core.RegisterCrashScreen(nil)
		term.Fini()
	}()

	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	sounds.SetMuted(*muteFlag)
	if !*muteFlag {
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
	}
	defer sounds.Cleanup()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Food seed %d", seed)
	spawner := engine.NewRandSpawner(bounds, seed)

	var last *engine.Result
	for term.Prompt(last) {
		session := engine.NewSession(term, spawner,
			engine.WithBounds(bounds),
			engine.WithSounds(sounds),
		)
		result := session.Run()
		last = &result
	}

	return 0
}

// loadEnv reads path into the environment without overriding variables that
// are already set. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
