package classic

import "errors"

var (
	// ErrSpinning rejects a spin while reels are still turning
	ErrSpinning = errors.New("reels are still spinning")
	// ErrInsufficientBalance rejects a spin the balance cannot cover
	ErrInsufficientBalance = errors.New("insufficient balance")
)
