package cards

import "errors"

var (
	ErrInvalidVariation = errors.New("invalid card variation")
	ErrUnranked         = errors.New("card has no hierarchy entry")
)
