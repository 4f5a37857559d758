package shuuro

import "errors"

// Error kinds reported by the fallible operations. Callers discriminate with
// errors.Is; the returned errors may wrap these with extra detail.
var (
	ErrInvalidSquareLabel  = errors.New("invalid square label")
	ErrInsufficientCredit  = errors.New("insufficient credit")
	ErrPieceLimitExceeded  = errors.New("piece limit exceeded")
	ErrSquareOccupied      = errors.New("square occupied")
	ErrPieceNotInHand      = errors.New("piece not in hand")
	ErrInvalidDeployZone   = errors.New("invalid deploy zone")
	ErrMissingKing         = errors.New("missing king")
	ErrNoPieceAtSource     = errors.New("no piece at source")
	ErrIllegalDestination  = errors.New("illegal destination")
	ErrPromotionNotAllowed = errors.New("promotion not allowed")
	ErrMovesIntoCheck      = errors.New("moves into check")
	ErrMalformedNotation   = errors.New("malformed notation")
	ErrWrongPhase          = errors.New("operation not valid in current phase")
)
