package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifemap/model"
	"github.com/sheikhrachel/lifemap/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("%+v", err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	if config.Batch {
		if err = runBatch(os.Stdout, flag.Args(), config); err != nil {
			log.Fatalf("%+v", err)
		}
		return
	}

	game, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(config, game)

	fmt.Println("Initial State")
	if err = renderer.Display(game.Grid()); err != nil {
		log.Fatalf("%+v", err)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history       model.History
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for step := range config.Steps {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				game.Generation(), stats.Runtime().Seconds())
			return
		case <-time.After(config.FrameRate):
		}

		frameStart := time.Now()
		game.Step()

		if config.ClearScreen {
			renderer.Clear()
		}

		livingCells, density, status, isStagnant := updateGameState(game, &history, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		fmt.Printf("Step %d\n", step)
		displayGameStatus(livingCells, density, status, stats)
		if err = renderer.Display(game.Grid()); err != nil {
			log.Fatalf("%+v", err)
		}

		if stop, reason := checkStopConditions(livingCells, stagnantCount, config); stop {
			fmt.Printf("\n🏁 Stopping: %s\n", reason)
			break
		}
	}

	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
