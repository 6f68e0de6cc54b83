package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/hearts/internal/game"
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/game/trick"
	"github.com/palemoky/hearts/internal/player"
	"github.com/palemoky/hearts/internal/ui/common"
)

// Board 渲染牌桌所需的全部数据
type Board struct {
	State *game.GameState
	// Human 人类座位，-1 表示观战
	Human   seat.Seat
	Counter *player.CardCounter
	Input   string
	Message string
	Err     error
	Width   int
	Height  int
}

func (b Board) hasHuman() bool {
	return b.Human.Valid()
}

func (b Board) humanTurn() bool {
	return b.hasHuman() && b.State.Current == b.Human && b.State.Phase != game.PhaseGameEnd
}

// GameView renders the table for the passing, playing and round-end phases.
func GameView(b Board) string {
	width := b.Width
	g := b.State

	var sb strings.Builder

	top := RenderScores(g, b.Human)
	if b.Counter != nil {
		top = lipgloss.JoinHorizontal(lipgloss.Top, top, "  ", RenderCardCounter(b.Counter))
	}
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, top))
	sb.WriteString("\n")

	tr, _ := g.CurrentTrick()
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderTrick(tr, g.Phase == game.PhasePlaying, b.Human)))
	sb.WriteString("\n")

	if b.hasHuman() {
		var legal card.Hand
		if b.humanTurn() {
			switch g.Phase {
			case game.PhasePassing:
				legal = g.Hand(b.Human)
			case game.PhasePlaying:
				legal = g.LegalPlays()
			}
		}
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderHand(g.Hand(b.Human), legal)))
		sb.WriteString("\n")
	}

	sb.WriteString(renderPrompt(b))

	return lipgloss.Place(width, b.Height, lipgloss.Center, lipgloss.Center, sb.String())
}

// GameOverView renders the final scores and the winners.
func GameOverView(g *game.GameState, human seat.Seat, width int) string {
	var names []string
	for _, s := range g.Winners() {
		names = append(names, common.SeatName(s, human))
	}

	msg := fmt.Sprintf("🎮 游戏结束!\n\n%s %s 获胜! (%d 分)\n\n%s\n\n按 ESC 退出",
		common.TrophyIcon, strings.Join(names, ", "), g.Score(g.Winners()[0]), RenderScores(g, human))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(msg)
}

// RenderCard renders one card, e.g. "10♥".
func RenderCard(c card.Card) string {
	return common.CardStyle(c).Render(c.String())
}

// RenderHand renders the hand one suit per row. Cards in legal are
// highlighted and the rest greyed out; a nil legal renders every card plainly.
func RenderHand(hand card.Hand, legal card.Hand) string {
	if len(hand) == 0 {
		return common.BoxStyle.Render("(无手牌)")
	}

	groups := hand.GroupBySuit()
	var rows []string
	for _, s := range card.Suits {
		cards := groups[s].Sorted()
		if len(cards) == 0 {
			continue
		}
		var parts []string
		for _, c := range cards {
			style := common.CardStyle(c)
			if legal != nil && !legal.Contains(c) {
				style = common.GrayStyle
			} else if legal != nil {
				style = style.Underline(true)
			}
			parts = append(parts, style.Render(fmt.Sprintf("%-2s", c.Rank.String())))
		}
		rows = append(rows, fmt.Sprintf("%s %s", s, strings.Join(parts, " ")))
	}

	title := fmt.Sprintf("我的手牌 (%d张)", len(hand))
	if legal != nil {
		title = fmt.Sprintf("我的手牌 (%d张, 可出 %d张)", len(hand), len(legal))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
	return common.BoxStyle.Render(content)
}

// RenderTrick renders the trick clockwise from its lead, marking the lead
// and showing a placeholder for seats still to play.
func RenderTrick(t trick.Trick, active bool, human seat.Seat) string {
	if !active {
		return common.BoxStyle.Width(30).Render("(等待出牌...)")
	}

	var parts []string
	for i := range seat.Count {
		s := t.Lead.Offset(i)
		name := common.SeatName(s, human)
		if i == 0 {
			name = common.LeadMarker + name
		}
		shown := common.Placeholder
		if c, ok := t.CardOf(s); ok {
			shown = RenderCard(c)
		}
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Center, name, shown))
	}
	return common.BoxStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(parts, "  ")...))
}

func joinWithGap(parts []string, gap string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, p)
	}
	return out
}

// RenderScores renders round info and one line per seat.
func RenderScores(g *game.GameState, human seat.Seat) string {
	var sb strings.Builder

	broken := "否"
	if g.HeartsBroken {
		broken = "是"
	}
	fmt.Fprintf(&sb, "第 %d 局 | 传牌: %s | 红心已破: %s\n", g.Round+1, passDirectionName(g.PassDirection()), broken)
	sb.WriteString(strings.Repeat("─", 36) + "\n")

	for _, s := range seat.All {
		name := fmt.Sprintf("%-4s", common.TruncateName(common.SeatName(s, human), 4))
		line := fmt.Sprintf("%s 总分 %3d | 本局 %2d | 手牌 %2d", name, g.Score(s), roundPoints(g, s), len(g.Hand(s)))
		if s == g.Current && g.Phase != game.PhaseGameEnd {
			line = common.HighlightStyle.Render(common.LeadMarker + line)
		} else {
			line = " " + line
		}
		sb.WriteString(line)
		if s != seat.All[seat.Count-1] {
			sb.WriteString("\n")
		}
	}

	return common.BoxStyle.Render(sb.String())
}

// roundPoints 本局已吃到的分；局结束后为结算分
func roundPoints(g *game.GameState, s seat.Seat) int {
	if g.Phase == game.PhaseGameEnd {
		return g.RoundScore(s)
	}
	return rule.RoundPoints(g.TricksWon(s))
}

var passDirectionNames = map[rule.PassDirection]string{
	rule.PassLeft:   "左",
	rule.PassRight:  "右",
	rule.PassAcross: "对家",
	rule.PassHold:   "不传",
}

func passDirectionName(d rule.PassDirection) string {
	if name, ok := passDirectionNames[d]; ok {
		return name
	}
	return d.String()
}

// RenderCardCounter renders how many unseen cards remain per suit.
func RenderCardCounter(cc *player.CardCounter) string {
	if cc == nil {
		return ""
	}

	remaining := cc.Remaining()
	var names, counts []string
	for _, s := range card.Suits {
		names = append(names, fmt.Sprintf("%-2s", s.String()))
		counts = append(counts, fmt.Sprintf("%-2d", remaining[s]))
	}

	var sb strings.Builder
	sb.WriteString("记牌器\n")
	sb.WriteString(strings.Join(names, "│") + "\n")
	sb.WriteString(strings.Repeat("─", 11) + "\n")
	sb.WriteString(strings.Join(counts, "│"))
	if cc.IsOut(card.QueenOfSpades) {
		sb.WriteString("\nQ♠ 未出")
	}

	return common.BoxStyle.Render(sb.String())
}

// RenderMoonPrompt renders the choice offered to the moon shooter.
func RenderMoonPrompt(shooter, human seat.Seat) string {
	if shooter != human {
		return fmt.Sprintf("%s %s 射月成功! 等待选择...", common.MoonIcon, common.SeatName(shooter, human))
	}
	return fmt.Sprintf("%s 你射月成功! 输入 others (其他人各加 %d 分) 或 self (自己减 %d 分)",
		common.MoonIcon, rule.MoonPoints, rule.MoonPoints)
}

func renderPrompt(b Board) string {
	var sb strings.Builder
	g := b.State

	switch {
	case g.Phase == game.PhaseRoundEnd:
		sb.WriteString(RenderMoonPrompt(g.Current, b.Human) + "\n")
	case !b.humanTurn():
		fmt.Fprintf(&sb, "等待 %s ...\n", common.SeatName(g.Current, b.Human))
	case g.Phase == game.PhasePassing:
		target := rule.PassTarget(b.Human, g.PassDirection())
		fmt.Fprintf(&sb, "选择 3 张牌传给 %s (例如: 2c 10h qs)\n", common.SeatName(target, b.Human))
	case g.Phase == game.PhasePlaying:
		sb.WriteString("轮到你出牌! (例如: qs)\n")
	}

	if b.Message != "" {
		sb.WriteString(b.Message + "\n")
	}
	if b.Err != nil {
		sb.WriteString(common.ErrorStyle.Render("❌ "+b.Err.Error()) + "\n")
	}

	if b.humanTurn() {
		sb.WriteString(b.Input)
	} else {
		sb.WriteString(common.HintStyle.Render("TAB 记牌器, F1 帮助, ESC 退出"))
	}

	centered := lipgloss.NewStyle().
		Width(b.Width).
		AlignHorizontal(lipgloss.Center).
		Render(sb.String())

	return common.PromptStyle.Render(centered)
}
