package common

import (
	"github.com/palemoky/hearts/internal/game/seat"
)

// TruncateName truncates a player name to the specified maximum length.
func TruncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}

// SeatName 人类座位显示为"你"，其余显示座位号
func SeatName(s, human seat.Seat) string {
	if human.Valid() && s == human {
		return "你"
	}
	return s.String()
}
