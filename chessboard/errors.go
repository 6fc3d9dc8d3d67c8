package chessboard

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("square out of bounds")
	ErrPieceNotFound = errors.New("piece not on board")
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrInvalidMove   = errors.New("invalid move notation")
)

// wrapf annotates a sentinel so callers can still match it with errors.Is.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
