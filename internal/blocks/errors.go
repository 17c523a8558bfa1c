package blocks

import "errors"

var (
	ErrBlockDecode   = errors.New("invalid block content")
	ErrInvalidOption = errors.New("invalid block option")
)
