package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifemap/model"
	"github.com/sheikhrachel/lifemap/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Game,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	game, err := newGame(config)
	if err != nil {
		return nil, nil, nil, err
	}
	if config.UseMemoryPool {
		game.WithPool(model.NewGridPool())
	}

	renderer := &model.TerminalRenderer{Out: os.Stdout}
	stats := utils.NewStats()

	return game, renderer, stats, nil
}

// newGame loads the configured map, or builds a blank grid optionally seeded with random life
func newGame(config utils.Config) (*model.Game, error) {
	if config.MapPath != "" {
		return model.LoadFromPath(config.MapPath)
	}

	game := model.NewGame(config.Width, config.Height)
	if config.RandomDensity > 0 {
		game.Grid().Randomize(rand.New(rand.NewSource(config.Seed)), config.RandomDensity)
	}
	return game, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, game *model.Game) {
	source := config.MapPath
	if source == "" {
		source = "blank grid"
	}
	grid := game.Grid()
	fmt.Printf("Starting Game manager ⭐ (%s, memory pool: %v)\n", source, config.UseMemoryPool)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates the run statistics and returns status information
func updateGameState(
	game *model.Game,
	history *model.History,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	grid := game.Grid()
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	stats.Update(game.Generation(), livingCells, time.Since(lastFrameTime))

	isStagnant := history.IsStagnant(grid)
	history.Record(grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		stats.TotalGenerations, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// checkStopConditions determines if the animation should end before its step count
func checkStopConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if config.StagnationThreshold == 0 {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// runBatch runs every map for config.Steps generations, one goroutine per map, and prints
// the final states in argument order
func runBatch(w io.Writer, paths []string, config utils.Config) error {
	if len(paths) == 0 {
		return errors.New("[runBatch] no map files given")
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	var (
		eg      errgroup.Group
		results = make([]string, len(paths))
	)
	eg.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		eg.Go(func() error {
			game, err := model.LoadFromPath(path)
			if err != nil {
				return err
			}
			game.WithPool(pool).Run(config.Steps)
			results[i] = game.ToText()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[runBatch] failed to run maps")
	}

	for i, path := range paths {
		if _, err := fmt.Fprintf(w, "%s after %d steps\n%s\n", path, config.Steps, results[i]); err != nil {
			return errors.Wrap(err, "[runBatch] failed to write result")
		}
	}
	return nil
}
