package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
)

// OptionsFromConfig builds game options from a validated configuration.
func OptionsFromConfig(cfg config.SnakeConfig) (Options, error) {
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}
	palette, err := cfg.Theme.Parse()
	if err != nil {
		return Options{}, err
	}

	def := DefaultOptions()
	return Options{
		Grid:  NewGrid(cfg.Grid.AreaWidth, cfg.Grid.AreaHeight, cfg.Grid.CellSize),
		Turns: DefaultTurns(),
		Theme: Theme{
			Background: palette.Background,
			Border:     palette.Border,
			Snake:      palette.Snake,
			Head:       palette.Head,
			Food:       palette.Food,
		},
		Glyphs: Glyphs{
			Snake: config.Glyph(cfg.Render.Glyphs.Snake, def.Glyphs.Snake),
			Head:  config.Glyph(cfg.Render.Glyphs.Head, def.Glyphs.Head),
			Food:  config.Glyph(cfg.Render.Glyphs.Food, def.Glyphs.Food),
		},
		CellChars: cfg.Render.CellChars,
	}, nil
}
