package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/vi-mandel/audio"
	"github.com/lixenwraith/vi-mandel/engine"
	"github.com/lixenwraith/vi-mandel/input"
	"github.com/lixenwraith/vi-mandel/status"
	"github.com/lixenwraith/vi-mandel/terminal"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/vi-mandel.log")
	keymapFlag = flag.String("keymap", "", "TOML keymap file overriding default bindings")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, ansi, truecolor")
	audioFlag  = flag.Bool("audio", false, "Enable audio cues (also VI_MANDEL_AUDIO_ENABLED)")
)

func main() {
	// Panic Recovery: restore the terminal before printing anything
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-MANDEL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("flags: keymap=%q color=%q audio=%v", *keymapFlag, *colorFlag, *audioFlag)

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "vi-mandel: %v\n", err)
		os.Exit(1)
	}
}

// run owns the screen; it is finalized before run returns so errors print to a restored terminal
func run() error {
	keys := input.DefaultKeyTable()
	if *keymapFlag != "" {
		kt, err := input.LoadKeyConfigFile(*keymapFlag)
		if err != nil {
			return fmt.Errorf("load keymap: %w", err)
		}
		keys = kt
		log.Printf("keymap loaded from %s", *keymapFlag)
	}

	colorMode, err := terminal.ParseColorMode(*colorFlag)
	if err != nil {
		return err
	}

	player := startAudio()
	defer player.Stop()

	screen, err := terminal.New(colorMode)
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()

	metrics := status.NewRegistry()
	defer dumpMetrics(metrics)

	var sound engine.Sound
	if player != nil {
		sound = player
	}

	eng := engine.New(engine.Config{
		Display: screen,
		Input:   screen,
		Keys:    keys,
		Sound:   sound,
		Metrics: metrics,
	})
	return eng.Run()
}

// startAudio returns a running cue player, or nil when audio is off or unavailable
func startAudio() *audio.Player {
	cfg := audio.LoadAudioConfig()
	if *audioFlag {
		cfg.Enabled = true
	}
	if !cfg.Enabled {
		return nil
	}

	player := audio.NewPlayer(cfg)
	if err := player.Start(); err != nil {
		log.Printf("audio start failed: %v (continuing without audio)", err)
		return nil
	}
	log.Printf("audio enabled: volume=%.2f rate=%d", cfg.MasterVolume, cfg.SampleRate)
	return player
}

func dumpMetrics(metrics *status.Registry) {
	var buf bytes.Buffer
	if err := metrics.Dump(&buf); err != nil {
		log.Printf("metrics dump: %v", err)
		return
	}
	log.Printf("metrics (%d):\n%s", metrics.TotalCount(), buf.String())
}
