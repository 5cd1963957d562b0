// Command mirrorvis-demo walks through the worked scenarios of spec.md
// §8 interactively: press n/p to cycle scenarios, a to toggle the
// alignment audio cue, q/Esc/Ctrl-C to quit. Logging and the main loop
// follow cmd/vi-fighter/main.go's shape: a -debug flag gating a
// rotating log file, and a tcell event channel merged with a render
// ticker.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mirrorvis/config"
	"github.com/lixenwraith/mirrorvis/trajectory"
)

const (
	logDir      = "logs"
	logFileName = "mirrorvis-demo.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create logs directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil {
		if info.Size() > maxLogSize {
			timestamp := time.Now().Format("2006-01-02-15-04-05")
			rotated := filepath.Join(logDir, fmt.Sprintf("mirrorvis-demo-%s.log", timestamp))
			if err := os.Rename(logPath, rotated); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to rotate log file: %v\n", err)
			}
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== mirrorvis-demo started ===")
	return logFile
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging to file")
	silent := flag.Bool("silent", false, "disable the alignment audio cue")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	scenarios, err := buildScenarios()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build scenarios: %v\n", err)
		os.Exit(1)
	}

	audioEnabled := !*silent
	if audioEnabled {
		if err := initAudio(); err != nil {
			log.Printf("audio disabled: %v", err)
			audioEnabled = false
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	cfg := config.DebugConfig()
	current := 0
	lastAligned := true

	evaluate := func() {
		scn := scenarios[current]
		engine := trajectory.NewEngine(scn.Scene)
		result, err := engine.Evaluate(scn.Player, scn.Cursor, scn.Planned, cfg.ToTrajectoryConfig())
		if err != nil {
			log.Printf("scenario %q: %v", scn.Name, err)
			return
		}
		if scn.PlayerAlt != nil {
			altResult, altErr := engine.Evaluate(*scn.PlayerAlt, scn.Cursor, scn.Planned, cfg.ToTrajectoryConfig())
			if altErr != nil {
				log.Printf("scenario %q (alt player): %v", scn.Name, altErr)
			} else {
				log.Printf("scenario %q: player divergence=%d alt divergence=%d",
					scn.Name, result.Alignment.DivergenceIndex, altResult.Alignment.DivergenceIndex)
			}
		}
		drawScenario(screen, scn, result)
		if audioEnabled && result.Alignment.FullyAligned != lastAligned {
			playAlignmentCue(result.Alignment.FullyAligned)
			lastAligned = result.Alignment.FullyAligned
		}
	}

	evaluate()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch e := ev.(type) {
			case *tcell.EventKey:
				switch {
				case e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q':
					return
				case e.Rune() == 'n':
					current = (current + 1) % len(scenarios)
					evaluate()
				case e.Rune() == 'p':
					current = (current - 1 + len(scenarios)) % len(scenarios)
					evaluate()
				case e.Rune() == 'a':
					audioEnabled = !audioEnabled
				}
			case *tcell.EventResize:
				screen.Sync()
				evaluate()
			}
		case <-ticker.C:
		}
	}
}
