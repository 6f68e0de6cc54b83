// Package view provides UI rendering functions.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/hearts/internal/ui/common"
)

// Re-export styles for use in this package
var (
	BoxStyle    = common.BoxStyle
	RedStyle    = common.RedStyle
	BlackStyle  = common.BlackStyle
	TitleStyle  = common.TitleStyle
	PromptStyle = common.PromptStyle
)

// RenderGameRules renders the game rules.
func RenderGameRules() string {
	var sb string

	sb += "【游戏目标】\n"
	sb += "四人各 13 张牌，得分越低越好\n"
	sb += "任意玩家累计达到 100 分时游戏结束，最低分者获胜\n\n"

	sb += "【传牌规则】\n"
	sb += "1. 每局开始前选 3 张牌传出\n"
	sb += "2. 方向按局轮换：左 → 右 → 对家 → 不传\n\n"

	sb += "【出牌规则】\n"
	sb += "1. 持有 2♣ 的玩家首先出 2♣\n"
	sb += "2. 有首引花色时必须跟同花色\n"
	sb += "3. 第一轮不能垫分牌（红心、Q♠），除非别无选择\n"
	sb += "4. 红心被打出前不能首引红心，除非手里只剩红心\n"
	sb += "5. 首引花色中最大的牌赢得本轮，并引下一轮\n\n"

	sb += "【计分】\n"
	sb += "• 每张红心 1 分，Q♠ 13 分\n"
	sb += "• 射月：一局吃下全部 26 分，可选择其他人各加 26 分或自己减 26 分\n\n"

	sb += "【输入示例】\n"
	sb += "• 传牌：2c 10h qs\n"
	sb += "• 出牌：qs 或 play Q♠\n"
	sb += "• 射月：others 或 self\n\n"

	sb += "【快捷键】\n"
	sb += "• TAB：切换记牌器\n"
	sb += "• F1：显示/隐藏帮助\n"
	sb += "• ESC：退出\n"

	return BoxStyle.Render(sb)
}

// RulesView renders the full rules view.
func RulesView(width, height int) string {
	var sb string

	title := TitleStyle("📖 游戏规则")
	sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
	sb += "\n\n"

	rules := RenderGameRules()
	sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, rules)
	sb += "\n\n"

	hint := "按 F1 返回牌桌"
	sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, hint)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, sb)
}
