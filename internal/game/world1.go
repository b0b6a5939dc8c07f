package game

import "github.com/vovakirdan/tui-platformer/internal/core"

// World1Records returns the built-in "World 1-1" layout: three ground
// sections with gaps between them, floating platforms with coin runs,
// and a goal post at the far right. The level is 2000 units wide.
func World1Records() []Record {
	ground := core.ColorYellow
	grass := core.ColorGreen

	return []Record{
		// Ground sections
		PlatformRecord{X: 0, Y: 580, W: 600, H: 20, Color: ground},
		PlatformRecord{X: 700, Y: 580, W: 400, H: 20, Color: ground},
		PlatformRecord{X: 1200, Y: 580, W: 800, H: 20, Color: ground},

		// Floating platforms
		PlatformRecord{X: 200, Y: 500, W: 100, H: 20, Color: grass},
		PlatformRecord{X: 350, Y: 440, W: 100, H: 20, Color: grass},
		PlatformRecord{X: 550, Y: 480, W: 150, H: 20, Color: grass},

		// Coin runs over the first platforms
		CoinRecord{X: 225, Y: 465},
		CoinRecord{X: 375, Y: 405},
		CoinRecord{X: 575, Y: 445},
		CoinRecord{X: 600, Y: 445},
		CoinRecord{X: 625, Y: 445},

		// Platforms after the first gap
		PlatformRecord{X: 800, Y: 520, W: 120, H: 20, Color: grass},
		PlatformRecord{X: 1000, Y: 500, W: 120, H: 20, Color: grass},

		CoinRecord{X: 830, Y: 485},
		CoinRecord{X: 1030, Y: 465},

		// Final stretch and the goal post
		PlatformRecord{X: 1700, Y: 540, W: 100, H: 20, Color: grass},
		GoalRecord{X: 1950, Y: 480, W: 30, H: 100},
	}
}
