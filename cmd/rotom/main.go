package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dhulst/pokedex-tui/internal/pokeapi"
	"github.com/dhulst/pokedex-tui/internal/save"
	"github.com/dhulst/pokedex-tui/internal/ui"
	"github.com/dhulst/pokedex-tui/internal/util"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	api := flag.String("api", os.Getenv("ROTOM_API_URL"), "Catalog API base URL")
	savePath := flag.String("save", os.Getenv("ROTOM_SAVE_PATH"), "Caught-set file path")
	limit := flag.Int("limit", 1025, "Number of species to load")
	theme := flag.String("theme", "catppuccin", "Color theme")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rotom [--api URL] [--save PATH] [--limit N] [--theme NAME] | version\n")
	}
	flag.Parse()

	if len(flag.Args()) > 0 && flag.Args()[0] == "version" {
		fmt.Println("rotom", version)
		return
	}

	if *api == "" {
		*api = pokeapi.DefaultBaseURL
	}
	if *savePath == "" {
		*savePath = save.DefaultPath()
	}
	if *limit <= 0 {
		log.Fatal("--limit must be positive")
	}

	cfg := util.Config{
		APIBase:  *api,
		SavePath: *savePath,
		Limit:    *limit,
		Theme:    *theme,
	}

	client := pokeapi.New(cfg.APIBase)
	saves := save.NewStore(cfg.SavePath)

	if err := ui.Run(context.Background(), client, saves, cfg, version); err != nil {
		log.Fatal(err)
	}
}
