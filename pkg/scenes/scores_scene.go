package scenes

import (
	"fmt"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// scoreRowsVisible 一屏显示的分数行数
const scoreRowsVisible = 12

// ScoresScene 分数榜，按分数从高到低，可上下滚动
type ScoresScene struct {
	*Services

	offset int
	stars  starScroll
}

func NewScoresScene(svc *Services) *ScoresScene {
	return &ScoresScene{Services: svc}
}

// Reset 回到榜首
func (s *ScoresScene) Reset() {
	s.offset = 0
}

func (s *ScoresScene) Update(dt float64) {
	s.stars.update(dt)
	if s.Input == nil {
		return
	}

	switch {
	case s.Input.JustPressed(game.ActionBack), s.Input.JustPressed(game.ActionConfirm):
		s.sfx().PlaySFX(types.SFXEnter, 1)
		s.switchTo(SceneMainMenu)
	case s.Input.JustPressed(game.ActionUp):
		s.scroll(-1)
	case s.Input.JustPressed(game.ActionDown):
		s.scroll(1)
	}
}

func (s *ScoresScene) scroll(step int) {
	maxOffset := len(s.State.Scores.Scores()) - scoreRowsVisible
	next := min(max(s.offset+step, 0), max(maxOffset, 0))
	if next != s.offset {
		s.offset = next
		s.sfx().PlaySFX(types.SFXSelect, 1)
	}
}

// Offset 当前第一行对应的名次（从 0 开始）
func (s *ScoresScene) Offset() int {
	return s.offset
}

// VisibleRows 当前一屏的分数行文本
func (s *ScoresScene) VisibleRows() []string {
	scores := s.State.Scores.Scores()
	end := min(s.offset+scoreRowsVisible, len(scores))

	rows := make([]string, 0, end-s.offset)
	for i := s.offset; i < end; i++ {
		rows = append(rows, fmt.Sprintf("%3d. %-*s %7d", i+1, config.MaxNameLength, scores[i].Name, scores[i].Points))
	}
	return rows
}

func (s *ScoresScene) Draw(screen *ebiten.Image) {
	rm := s.State.Resources
	drawStarfield(screen, rm.StarLayers(), s.stars.offset)

	face := rm.Font()
	drawCentered(screen, face, "HIGH SCORES", 60, 5, colorHighlight)

	rows := s.VisibleRows()
	if len(rows) == 0 {
		drawCentered(screen, face, "NO SCORES YET", 300, 3, colorText)
	}
	for i, row := range rows {
		clr := colorText
		if s.offset+i == 0 {
			clr = colorHighlight
		}
		drawCentered(screen, face, row, 150+float64(i)*40, 3, clr)
	}
	drawCentered(screen, face, "UP / DOWN TO SCROLL", config.GameWindowHeight-50, 2, colorText)
}
