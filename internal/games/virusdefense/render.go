package virusdefense

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/virus-defense/internal/core"
)

// Glyphs
const (
	PlayerGlyph    = "<O>"
	LaneGlyph      = '┆'
	ScrollGlyph    = '·'
	HeartFull      = '♥'
	HeartEmpty     = '♡'
	hudWidth       = 26
	inputCursor    = '_'
	questionIndent = 2
)

var virusGlyphs = [virusTypeCount]rune{
	VirusSpiky: '✸',
	VirusRound: '●',
	VirusStar:  '★',
	VirusArrow: '▼',
}

// Healthy viruses use the bright color, wounded ones the plain one.
var virusColors = [virusTypeCount][2]core.Color{
	VirusSpiky: {core.ColorBrightRed, core.ColorRed},
	VirusRound: {core.ColorBrightGreen, core.ColorGreen},
	VirusStar:  {core.ColorBrightBlue, core.ColorBlue},
	VirusArrow: {core.ColorOrange, core.ColorYellow},
}

var projectileGlyphs = [weaponTypeCount]rune{
	WeaponBall:      'o',
	WeaponStar:      '*',
	WeaponSpikyBall: '✱',
	WeaponArrow:     '↑',
}

// field maps playfield coordinates onto the screen area inside the border.
type field struct {
	box    core.Rect
	width  int
	height int
	shake  int
}

func (f field) col(x float64) int {
	inner := f.box.W - 2
	return f.box.X + 1 + int(x*float64(inner)/float64(f.width)) + f.shake
}

func (f field) row(y float64) int {
	inner := f.box.H - 2
	return f.box.Y + 1 + int(y*float64(inner)/float64(f.height))
}

func (f field) contains(x, y int) bool {
	return x > f.box.X && x < f.box.Right()-1 && y > f.box.Y && y < f.box.Bottom()-1
}

func (f field) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if f.contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	if g.engine == nil {
		return
	}

	snap := g.engine.Snapshot()
	if snap.Mode == ModeHome {
		renderHome(dst)
		return
	}

	f := field{
		box:    core.NewRect(0, 0, dst.Width()-hudWidth, dst.Height()),
		width:  snap.Width,
		height: snap.Height,
		shake:  snap.Overlay.ShakeOffset,
	}

	renderField(dst, f, &snap)
	renderHUD(dst, f.box.Right()+1, &snap)

	switch snap.Mode {
	case ModeQuiz:
		renderQuiz(dst, f.box, &snap)
	case ModeGameOver:
		drawCenteredBox(dst, f.box, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d  Round: %d", snap.Score, snap.Round),
			"R restart  |  Esc home")
	}
}

func renderField(dst *core.Screen, f field, snap *Snapshot) {
	border := core.ColorGray
	switch {
	case snap.Overlay.LifeLossFlash > 0:
		border = core.ColorBrightRed
	case snap.Overlay.RoundFlash > 0:
		border = core.ColorBrightWhite
	}
	dst.DrawBox(f.box, border)

	// Scrolling background burst
	if snap.Overlay.Scroll > 0 {
		offset := int(snap.Tick / 2)
		for y := f.box.Y + 1; y < f.box.Bottom()-1; y++ {
			if (y+offset)%4 != 0 {
				continue
			}
			for x := f.box.X + 2; x < f.box.Right()-1; x += 6 {
				f.set(dst, x+f.shake, y, ScrollGlyph, core.ColorDim)
			}
		}
	}

	for i := 1; i < snap.Lanes; i++ {
		x := f.col(float64(i * snap.LaneWidth))
		for y := f.box.Y + 1; y < f.box.Bottom()-1; y++ {
			f.set(dst, x, y, LaneGlyph, core.ColorGray)
		}
	}

	for _, v := range snap.Viruses {
		c := virusColors[v.Type][0]
		if v.Hits > 0 {
			c = virusColors[v.Type][1]
		}
		f.set(dst, f.col(float64(v.X)), f.row(v.Y), virusGlyphs[v.Type], c)
	}

	for _, p := range snap.Projectiles {
		f.set(dst, f.col(p.X), f.row(p.Y), projectileGlyphs[p.Weapon], core.ColorBrightYellow)
	}

	px, py := f.col(float64(snap.Player.X)), f.row(float64(snap.Player.Y))
	for i, r := range PlayerGlyph {
		f.set(dst, px-1+i, py, r, core.ColorBrightCyan)
	}

	if snap.Overlay.RoundFlash > 0 {
		msg := fmt.Sprintf(" ROUND %d ", snap.Round)
		x := f.box.X + (f.box.W-len(msg))/2
		dst.DrawTextColored(x, f.box.Y+f.box.H/3, msg, core.ColorBrightWhite)
	}

	if snap.Mode == ModeQuiz || snap.Overlay.Darken > 0.3 {
		dimArea(dst, f.box)
	}
}

func dimArea(dst *core.Screen, r core.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			cell := dst.GetCell(x, y)
			dst.SetColored(x, y, cell.Rune, cell.Color.Dimmed())
		}
	}
}

func renderHUD(dst *core.Screen, x int, snap *Snapshot) {
	y := 0
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	line("VIRUS DEFENSE", core.ColorBrightCyan)
	y++

	var hearts strings.Builder
	for i := 0; i < max(snap.Lives, 0); i++ {
		hearts.WriteRune(HeartFull)
	}
	for i := snap.Lives; i < 3; i++ {
		hearts.WriteRune(HeartEmpty)
	}
	dst.DrawText(x, y, "Lives: ")
	dst.DrawTextColored(x+7, y, hearts.String(), core.ColorBrightRed)
	y++

	line(fmt.Sprintf("Score: %d", snap.Score), core.ColorDefault)
	line(fmt.Sprintf("Round: %d", snap.Round), core.ColorDefault)
	line(fmt.Sprintf("Viruses: %d/%d", snap.Required-snap.Spawned, snap.Required), core.ColorDefault)
	line(fmt.Sprintf("Speed: %.1f", snap.Speed), core.ColorDefault)
	line(fmt.Sprintf("Weapon: %s", snap.Weapon), core.ColorCyan)
	y++

	line("Space shoot  ←/→ move", core.ColorGray)
	line("Tab next weapon  I key", core.ColorGray)
	line("Esc home", core.ColorGray)

	if !snap.ShowKey {
		return
	}
	y++
	line("Weapon key:", core.ColorDefault)
	keys := []struct {
		key    string
		weapon WeaponType
	}{
		{"1", WeaponSpikyBall},
		{"2", WeaponBall},
		{"3", WeaponStar},
		{"4", WeaponArrow},
	}
	for _, k := range keys {
		var target VirusType
		for _, v := range VirusTypes() {
			if v.Weakness() == k.weapon {
				target = v
			}
		}
		c := core.ColorGray
		if k.weapon == snap.Weapon {
			c = core.ColorBrightWhite
		}
		dst.DrawTextColored(x, y, fmt.Sprintf("%s %-10s", k.key, k.weapon), c)
		dst.SetColored(x+13, y, virusGlyphs[target], virusColors[target][0])
		dst.DrawTextColored(x+15, y, target.String(), c)
		y++
	}
}

func renderQuiz(dst *core.Screen, area core.Rect, snap *Snapshot) {
	w := core.Clamp(area.W-6, 20, 60)
	lines := wrap(snap.Question, w-2*questionIndent)

	h := len(lines) + 7
	box := core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightYellow)

	title := " QUIZ "
	dst.DrawTextColored(box.X+(box.W-len(title))/2, box.Y, title, core.ColorBrightYellow)

	y := box.Y + 2
	for _, l := range lines {
		dst.DrawText(box.X+questionIndent, y, l)
		y++
	}
	y++

	switch snap.QuizPhase {
	case QuizAwaitingAnswer:
		input := "> " + snap.Input + string(inputCursor)
		if n := len([]rune(input)); n > w-2*questionIndent {
			input = string([]rune(input)[n-(w-2*questionIndent):])
		}
		dst.DrawTextColored(box.X+questionIndent, y, input, core.ColorBrightWhite)
		dst.DrawTextColored(box.X+questionIndent, box.Bottom()-2, "Enter submit", core.ColorGray)
	case QuizShowingResult:
		if snap.LastCorrect {
			dst.DrawTextColored(box.X+questionIndent, y, "Correct!", core.ColorBrightGreen)
		} else {
			dst.DrawTextColored(box.X+questionIndent, y, "Wrong! You lost a life.", core.ColorBrightRed)
		}
	}
}

func renderHome(dst *core.Screen) {
	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	drawCenteredBox(dst, area, core.ColorBrightCyan, "VIRUS DEFENSE",
		"Stop the viruses before they reach the bottom.",
		"Each virus falls to one weapon: match it twice.",
		"Answer the quiz questions or lose a life.",
		"",
		"Press ENTER to start  |  Q to quit")
}

// drawCenteredBox draws a bordered message box centered in area.
func drawCenteredBox(dst *core.Screen, area core.Rect, c core.Color, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 4

	box := core.NewRect(area.X+(area.W-w)/2, area.Y+(area.H-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(w-len([]rune(title)))/2, box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawText(box.X+(w-len([]rune(l)))/2, box.Y+3+i, l)
	}
}

// wrap splits text into lines no longer than width, breaking on spaces.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var (
		lines []string
		cur   string
	)
	for _, word := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = word
		case len([]rune(cur))+1+len([]rune(word)) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}
