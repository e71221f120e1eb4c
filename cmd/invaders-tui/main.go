// invaders-tui 在终端里运行一局游戏
//
// 使用与桌面端相同的玩法代码，用字符格绘制精灵，
// 通过 beep speaker 播放合成音效。
//
// 使用方法:
//
//	go run ./cmd/invaders-tui [--config tuning.yaml] [--scores data/scores.dat] [--mute]
//	go run ./cmd/invaders-tui --show-tuning [--config tuning.yaml]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/types"
	"github.com/gdamore/tcell/v2"
)

const frameTime = time.Second / 60

// terminalGame 终端前端的状态
type terminalGame struct {
	screen tcell.Screen
	state  *game.GameState
	input  *game.InputState
	keys   *keyboard
	audio  *speakerAudio
	sfx    game.SFXPlayer
	mode   *systems.PlayMode

	// finished 本局结束后显示结算，等待再来一局或退出
	finished bool
}

func main() {
	configPath := flag.String("config", "", "调优文件路径（默认使用内置参数）")
	scoresPath := flag.String("scores", config.ScoreFilePath, "分数文件路径")
	mute := flag.Bool("mute", false, "关闭声音")
	logPath := flag.String("log", "", "日志文件路径（默认不输出日志）")
	showTuning := flag.Bool("show-tuning", false, "打印生效的调优参数后退出")
	flag.Parse()

	if *showTuning {
		cfg := config.DefaultWaveConfig()
		if *configPath != "" {
			var err error
			if cfg, err = config.LoadWaveConfig(*configPath); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
		}
		printTuning(os.Stdout, cfg)
		return
	}

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
		os.Exit(1)
	}

	tg, err := newTerminalGame(*configPath, *scoresPath, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer tg.cleanup()

	tg.run()
}

// printTuning 按字段名逐行打印调优参数
func printTuning(w io.Writer, cfg *config.WaveConfig) {
	for _, key := range config.TuningKeys {
		fmt.Fprintf(w, "%-22s %g\n", key+":", cfg.GetFloat(key, 0))
	}
}

// setupLog 终端被游戏画面占用，日志只能写到文件
func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

func newTerminalGame(configPath, scoresPath string, mute bool) (*terminalGame, error) {
	state, err := game.NewGameState(game.Options{
		ConfigPath: configPath,
		ScoresPath: scoresPath,
	})
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	tg := &terminalGame{
		screen: screen,
		state:  state,
		input:  game.NewInputState(),
		sfx:    game.NopSFX{},
	}
	tg.keys = newKeyboard(tg.input)

	if !mute {
		audio, err := newSpeakerAudio(state.Settings)
		if err != nil {
			// 没有声卡也能玩
			log.Printf("[TUI] Audio disabled: %v", err)
		} else {
			tg.audio = audio
			tg.sfx = audio
			audio.PlayMusic(types.MusicPlay)
		}
	}

	tg.mode = systems.NewPlayMode(systems.PlayModeDeps{
		Config: state.Config,
		Input:  tg.input,
		SFX:    tg.sfx,
		Scores: state.Scores,
		Rand:   state.Rand,
	})
	return tg, nil
}

func (tg *terminalGame) run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := tg.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !tg.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			tg.keys.expire(now)
			if !tg.update() {
				return
			}
			tg.input.EndFrame()
			tg.draw()
		}
	}
}

func (tg *terminalGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return !tg.keys.handle(ev, time.Now())
	case *tcell.EventResize:
		tg.screen.Sync()
	}
	return true
}

// update 推进一帧，返回 false 表示退出程序
func (tg *terminalGame) update() bool {
	if tg.finished {
		switch {
		case tg.input.JustPressed(game.ActionConfirm):
			tg.mode.Reset()
			tg.finished = false
		case tg.input.JustPressed(game.ActionBack):
			return false
		}
		return true
	}

	switch tg.mode.Update(frameTime.Seconds()) {
	case systems.OutcomeQuit, systems.OutcomeFinished:
		tg.finished = true
		tg.sfx.PlaySFX(types.SFXEnter, 1)
	}
	return true
}

func (tg *terminalGame) draw() {
	tg.screen.Clear()
	c := newCellCanvas(tg.screen)
	_, rows := tg.screen.Size()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	if tg.finished {
		c.drawText(-1, rows/2-2, "GAME OVER", red)
		c.drawText(-1, rows/2, fmt.Sprintf("FINAL SCORE: %d", tg.mode.FinalScore().Points), white)
		c.drawText(-1, rows/2+1, fmt.Sprintf("HIGHEST SCORE: %d", tg.state.Scores.HighestScore()), yellow)
		c.drawText(-1, rows/2+3, "ENTER: PLAY AGAIN   ESC: EXIT", white)
		tg.screen.Show()
		return
	}

	pm := tg.mode
	pm.Render(c, tg.state.Settings.GetSettings().ShowColliders)

	cols, _ := tg.screen.Size()
	c.drawText(0, 0, pm.LivesText(), white)
	c.drawText(-1, 0, fmt.Sprintf("SCORE: %d", pm.Score()), white)
	hi := fmt.Sprintf("HI: %d", pm.HighestScore())
	c.drawText(max(cols-len(hi), 0), 0, hi, white)

	if pm.ShowGameOverText() {
		c.drawText(-1, rows/2, "GAME OVER", red)
	}
	if pm.IsQuitPrompt() {
		c.drawText(-1, rows/2, pm.QuitPromptText(), yellow)
	}
	if entry := pm.ScoreEntry(); entry != nil {
		c.drawText(-1, rows/2-2, "ENTER YOUR NAME", white)
		c.drawText(-1, rows/2, entry.Name()+"_", yellow)
		style := white
		if entry.IsWarning() {
			style = red
		}
		c.drawText(-1, rows/2+2, entry.Message(), style)
	}
	tg.screen.Show()
}

func (tg *terminalGame) cleanup() {
	if tg.audio != nil {
		tg.audio.Close()
	}
	tg.screen.Fini()
	// 中途退出的一局不记分
	tg.state.Scores.DiscardCurrentScore()
	if err := tg.state.SaveAll(); err != nil {
		fmt.Fprintf(os.Stderr, "保存失败: %v\n", err)
	}
}
