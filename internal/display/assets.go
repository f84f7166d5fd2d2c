package display

import (
	_ "embed"
)

var (
	//go:embed assets/title.txt
	titleArt string

	//go:embed assets/intro.txt
	introText string

	//go:embed assets/game_over.txt
	gameOverArt string
)

// TitleArt is the opening title banner.
func TitleArt() string { return titleArt }

// IntroText is the opening story, wrapped to the default width.
func IntroText() string { return Wrap(introText) }

// GameOverArt heads the game over screen.
func GameOverArt() string { return gameOverArt }
