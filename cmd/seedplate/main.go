package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jask/seedplate/internal/config"
	"github.com/jask/seedplate/internal/logging"
	"github.com/jask/seedplate/internal/punch"
	"github.com/jask/seedplate/internal/render"
	"github.com/jask/seedplate/internal/session"
	"github.com/jask/seedplate/internal/tui"
	"github.com/jask/seedplate/internal/wordlist"
)

func main() {
	check := flag.Bool("check", false, "run the exhaustive bit-decomposition self-check and exit")
	flag.Parse()

	if *check {
		if err := punch.SelfCheck(); err != nil {
			log.Fatalf("self-check: %v", err)
		}
		fmt.Printf("OK: bit columns sum to the 1-based index for all 1..%d.\n", punch.MaxIndex)
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logger.Close()

	words, err := wordlist.Load(cfg.Wordlist.Path)
	if err != nil {
		log.Fatalf("wordlist: %v", err)
	}
	logger.Started(words.Len())

	sess := session.New(cfg.Session.Words)
	p := tea.NewProgram(tui.New(cfg, words, sess, logger))
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	if !sess.Complete() {
		// interrupted before the last word; nothing to engrave
		return
	}

	summary, err := render.Summary(sess.Entries())
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Println()
	fmt.Print(summary)

	blocks, err := sess.Blocks(cfg.Plate.Rows)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	markers := render.Markers{Punch: cfg.UI.PunchMarker, Empty: cfg.UI.EmptyMarker}
	for i, block := range blocks {
		indices := make([]int, len(block))
		for j, e := range block {
			indices[j] = e.Index
		}
		plate, err := render.Plate(indices, i+1, i*cfg.Plate.Rows+1, markers)
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		fmt.Println()
		fmt.Print(plate)
	}
}
