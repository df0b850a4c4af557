package render

import (
	"strconv"

	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/vmath"
)

// DrawHUD draws the score and one health segment per max health point
// Segments below health are white, lost ones red
func DrawHUD(s Surface, score, health, maxHealth int, height float64) {
	s.FillText("Score: "+strconv.Itoa(score), constants.ScoreX, constants.ScoreY, RGBWhite)

	for h := 0; h < maxHealth; h++ {
		c := RGBWhite
		if h >= health {
			c = RGBRed
		}
		s.FillRect(vmath.Rect{
			X: float64(constants.HealthBarX + h*constants.HealthSegmentGap),
			Y: height - constants.HealthBarBottom,
			W: constants.HealthSegmentW,
			H: constants.HealthSegmentH,
		}, c, 1)
	}
}

// DrawGameOver draws the terminal banner near the surface center
func DrawGameOver(s Surface, width, height float64) {
	s.FillText(constants.GameOverText, width/2-constants.GameOverOffsetX, height/2, RGBWhite)
}
