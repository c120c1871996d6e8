package beast

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/beast-arcade/internal/core"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/beasts"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

const (
	tileWidth   = 2
	frameWidth  = board.Width*tileWidth + 2
	frameHeight = board.Height + 2
	footerLines = 1
	headerLines = 3
	// headerMinHeight is the screen height from which the logo is shown.
	headerMinHeight = frameHeight + footerLines + headerLines
)

var header = [headerLines]string{
	"█▀▀▄ █▀▀ ▄▀▀▄ ▄▀▀ ▀█▀",
	"█▀▀▄ █▀▀ █▀▀█  ▀▄  █ ",
	"▀▀▀  ▀▀▀ ▀  ▀ ▀▀   ▀ ",
}

var tileColors = map[board.Tile]core.Color{
	board.Block:        core.ColorGreen,
	board.StaticBlock:  core.ColorYellow,
	board.Player:       core.ColorCyan,
	board.CommonBeast:  core.ColorRed,
	board.SuperBeast:   core.ColorRed,
	board.Egg:          core.ColorRed,
	board.EggHatching:  core.ColorMagenta,
	board.HatchedBeast: core.ColorRed,
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	RenderEngine(g.engine, dst)
}

// RenderEngine draws the board, footer and any overlay for the engine's
// state. The layout is centered horizontally on dst.
func RenderEngine(e *Engine, dst *core.Screen) {
	if dst.Width() < frameWidth || dst.Height() < frameHeight+footerLines {
		renderTooSmall(dst)
		return
	}

	x0 := (dst.Width() - frameWidth) / 2
	y0 := 0
	if dst.Height() >= headerMinHeight {
		for i, line := range header {
			dst.DrawTextColored((dst.Width()-len([]rune(line)))/2, i, line, core.ColorYellow)
		}
		y0 = headerLines
	}

	renderFrame(dst, x0, y0)
	renderBoard(e, dst, x0+1, y0+1)
	renderFooter(e, dst, x0, y0+frameHeight)

	area := core.NewRect(x0+1, y0+1, frameWidth-2, board.Height)
	switch e.State() {
	case StateIntro:
		drawPanel(dst, area, introLines())
	case StateHelp:
		drawPanel(dst, area, helpLines(e.HelpPage()))
	case StateLevelComplete:
		drawPanel(dst, area, levelCompleteLines(e))
	case StateGameOver:
		drawPanel(dst, area, gameOverLines(e))
	case StateWon:
		drawPanel(dst, area, wonLines(e))
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", frameWidth, frameHeight+footerLines, dst.Width(), dst.Height()))
}

func renderFrame(dst *core.Screen, x0, y0 int) {
	inner := strings.Repeat("▀▀", board.Width)
	dst.DrawTextColored(x0, y0, "▛"+inner+"▜", core.ColorYellow)
	for row := 1; row <= board.Height; row++ {
		dst.DrawTextColored(x0, y0+row, "▌", core.ColorYellow)
		dst.DrawTextColored(x0+frameWidth-1, y0+row, "▐", core.ColorYellow)
	}
	dst.DrawTextColored(x0, y0+frameHeight-1, "▙"+strings.Repeat("▄▄", board.Width)+"▟", core.ColorYellow)
}

func renderBoard(e *Engine, dst *core.Screen, x0, y0 int) {
	b := e.Board()
	for row := 0; row < board.Height; row++ {
		for col := 0; col < board.Width; col++ {
			t := b.Get(board.C(col, row))
			dst.DrawTextColored(x0+col*tileWidth, y0+row, t.Symbol(), tileColors[t])
		}
	}
	if bg := FlashColor(e.State(), e.flashBeat); bg != core.ColorDefault {
		dst.FillBg(core.NewRect(x0, y0, board.Width*tileWidth, board.Height), bg)
	}
}

// FlashColor is the board background for a beat of the death or kill
// flash, or ColorDefault outside of one.
func FlashColor(s State, beat Beat) core.Color {
	switch s {
	case StateDying:
		if beat == BeatOne {
			return core.ColorFlashRed
		}
		return core.ColorOrange
	case StateKilling:
		return core.ColorDarkGray
	}
	return core.ColorDefault
}

func renderFooter(e *Engine, dst *core.Screen, x0, y int) {
	f := e.Footer()

	x := x0 + 2
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		x += len([]rune(text))
	}

	put(fmt.Sprintf("Beasts: %2d  Level: %2d  Time: ", f.Beasts, f.Level), core.ColorDefault)
	timeColor := core.ColorDefault
	if f.Remaining < 20*time.Second {
		timeColor = core.ColorRed
	}
	put(formatClock(f.Remaining), timeColor)
	put("  Lives: ", core.ColorDefault)
	livesColor := core.ColorDefault
	if f.Lives <= 1 {
		livesColor = core.ColorRed
	}
	put(fmt.Sprintf("%d", f.Lives), livesColor)
	put(fmt.Sprintf("  Score: %4d", f.Score), core.ColorDefault)
}

func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// drawPanel clears a box sized to lines, centered in area, and writes the
// lines into it.
func drawPanel(dst *core.Screen, area core.Rect, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w = min(w+6, area.W)
	h := min(len(lines)+4, area.H)

	r := core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetCell(x, y, core.Cell{Rune: ' '})
		}
	}
	dst.DrawBox(r)
	for i, l := range lines {
		if 2+i >= h-1 {
			break
		}
		dst.DrawText(r.X+3, r.Y+2+i, l)
	}
}

func introLines() []string {
	return []string{
		"BEAST",
		"",
		"Squish every beast between blocks before the time runs out.",
		"",
		fmt.Sprintf("You are %s. Push %s around; %s does not move.",
			board.Player.Symbol(), board.Block.Symbol(), board.StaticBlock.Symbol()),
		"",
		"[SPACE] Play   [H] Help   [Q] Quit",
	}
}

func helpLines(page HelpPage) []string {
	var lines []string
	switch page {
	case HelpGeneral:
		lines = []string{
			"HELP: GENERAL",
			"",
			"Beasts hunt you. The only way to fight back is to squish them between blocks.",
			"New kinds of beasts show up the longer you survive.",
			"",
			fmt.Sprintf("You are %s and you move with WASD or the arrow keys.", board.Player.Symbol()),
			fmt.Sprintf("You can push %s around the board, but %s stays put.", board.Block.Symbol(), board.StaticBlock.Symbol()),
			"",
			"Clear all beasts of a level before its timer runs out.",
		}
	case HelpBeasts:
		lines = []string{
			"HELP: BEASTS",
			"",
			fmt.Sprintf("Common Beast %s", board.CommonBeast.Symbol()),
			"  Comes in numbers but gets stuck easily. Squish it against any block or the frame.",
			fmt.Sprintf("Super Beast %s", board.SuperBeast.Symbol()),
			"  Finds a path to you. Only dies against a " + board.StaticBlock.Symbol() + ".",
			fmt.Sprintf("Egg %s and Hatched Beast %s", board.Egg.Symbol(), board.HatchedBeast.Symbol()),
			"  Eggs hatch after a while. Hatched beasts push blocks and try to squish you.",
			"  They die like common beasts.",
		}
	case HelpScoring:
		lines = []string{
			"HELP: SCORING",
			"",
			"Score comes from squishing beasts and reaching new levels.",
			"Every ten seconds left when a level is cleared add one point.",
			"",
			"Beast  | Score",
			"-------+------",
			fmt.Sprintf("%s     | %d", board.CommonBeast.Symbol(), beasts.CommonBeastScore),
			fmt.Sprintf("%s     | %d", board.SuperBeast.Symbol(), beasts.SuperBeastScore),
			fmt.Sprintf("%s     | %d", board.Egg.Symbol(), beasts.EggScore),
			fmt.Sprintf("%s     | %d", board.HatchedBeast.Symbol(), beasts.HatchedBeastScore),
		}
	}
	return append(lines, "", pagination(page), "", "[SPACE] Back   [A]/[D] Page   [Q] Quit")
}

func pagination(page HelpPage) string {
	dots := make([]string, helpPages)
	for i := range dots {
		dots[i] = "○"
		if HelpPage(i) == page {
			dots[i] = "●"
		}
	}
	return strings.Join(dots, " ")
}

func statsLines(e *Engine) []string {
	p := e.Player()
	return []string{
		fmt.Sprintf("Score:             %d", p.Score),
		fmt.Sprintf("Beasts killed:     %d", p.BeastsKilled),
		fmt.Sprintf("Blocks moved:      %d", p.BlocksMoved),
		fmt.Sprintf("Distance traveled: %d", p.DistanceTraveled),
	}
}

func levelCompleteLines(e *Engine) []string {
	lines := []string{fmt.Sprintf("LEVEL %d COMPLETE", e.Level()), ""}
	lines = append(lines, statsLines(e)...)
	return append(lines, "", "[SPACE] Next level   [Q] Quit")
}

func gameOverLines(e *Engine) []string {
	title := "YOUR TIME RAN OUT"
	if e.Player().Lives <= 0 {
		title = "YOU DIED"
	}
	lines := []string{title, "", fmt.Sprintf("Level reached:     %d", e.Level())}
	lines = append(lines, statsLines(e)...)
	return append(lines, "", "[SPACE] Restart   [N] Save score   [C] Copy replay   [Q] Quit")
}

func wonLines(e *Engine) []string {
	lines := []string{"YOU WON", "", fmt.Sprintf("All %d levels cleared.", e.LevelCount())}
	lines = append(lines, statsLines(e)...)
	return append(lines, "", "[SPACE] Restart   [N] Save score   [C] Copy replay   [Q] Quit")
}
