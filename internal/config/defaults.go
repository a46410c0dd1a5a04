package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			AreaWidth:  640,
			AreaHeight: 480,
			CellSize:   20,
		},
		Speed: SpeedConfig{
			TickRate: 20,
		},
		Render: RenderConfig{
			CellChars: 2,
			Glyphs: GlyphConfig{
				Snake: "█",
				Head:  "█",
				Food:  "●",
			},
		},
		Theme: ThemeConfig{
			Background: "#000000",
			Border:     "#5dd8e4",
			Snake:      "#00ff00",
			Head:       "#00ff00",
			Food:       "#ff0000",
		},
		PNG: PNGConfig{
			CellSize: 20,
			Scale:    1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
