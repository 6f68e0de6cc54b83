package apperrors

import "errors"

// 错误码
const (
	ErrCodeUnknown        = 1000
	ErrCodeInvalidAction  = 1001
	ErrCodeWrongPhase     = 3001
	ErrCodeHoldRound      = 3002
	ErrCodeCardsNotInHand = 3003
	ErrCodeDuplicateCards = 3004
	ErrCodeInvalidPlay    = 3005
	ErrCodeNotMoonShooter = 3006
	ErrCodeGameOver       = 3007
)

// GameError 被拒绝的动作。状态保持不变，调用方可以修正后重试
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidAction  = &GameError{Code: ErrCodeInvalidAction, Message: "unknown action"}
	ErrNotPassing     = &GameError{Code: ErrCodeWrongPhase, Message: "not in passing phase"}
	ErrNotPlaying     = &GameError{Code: ErrCodeWrongPhase, Message: "not in playing phase"}
	ErrNotRoundEnd    = &GameError{Code: ErrCodeWrongPhase, Message: "not in round end phase"}
	ErrHoldRound      = &GameError{Code: ErrCodeHoldRound, Message: "hold round, no passing"}
	ErrCardsNotInHand = &GameError{Code: ErrCodeCardsNotInHand, Message: "cards not in hand"}
	ErrCardNotInHand  = &GameError{Code: ErrCodeCardsNotInHand, Message: "card not in hand"}
	ErrDuplicateCards = &GameError{Code: ErrCodeDuplicateCards, Message: "must select 3 different cards"}
	ErrInvalidPlay    = &GameError{Code: ErrCodeInvalidPlay, Message: "invalid play"}
	ErrNotMoonShooter = &GameError{Code: ErrCodeNotMoonShooter, Message: "not the moon shooter"}
	ErrGameOver       = &GameError{Code: ErrCodeGameOver, Message: "game is over"}
)

// Code returns the code of the GameError wrapped in err, or ErrCodeUnknown.
func Code(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ErrCodeUnknown
}
