package main

import (
	"log"
	"os"

	"MyLocalPaint/internal/config"
	"MyLocalPaint/internal/scene"
	"MyLocalPaint/internal/state"
	"MyLocalPaint/internal/ui"
)

const DefaultConfigPath = "localpaint.toml"

func main() {
	path := DefaultConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	board, err := newBoard(cfg)
	if err != nil {
		log.Fatalf("Failed to set up canvas: %v", err)
	}
	log.Printf("Starting %s on %s", board.Name, path)
	ui.RunApp(cfg, board)
}

// newBoard builds the tool context and scene described by cfg. The canvas
// starts unfocused until the window hands it input focus.
func newBoard(cfg config.Config) (*ui.BoardWidget, error) {
	tools := state.NewToolState()
	cfg.Apply(tools)

	s := scene.New(tools)
	fill, err := config.ParsePaint(cfg.Canvas.Fill)
	if err != nil {
		return nil, err
	}
	s.SetFill(fill)
	if err := s.Resize(cfg.CanvasSize()); err != nil {
		return nil, err
	}
	s.Unfocus()
	return ui.NewBoardWidget(s), nil
}
