package types

import "github.com/pkg/errors"

// types errors
var (
	ErrNotExistContract     = errors.New("not exist contract")
	ErrExistContractType    = errors.New("exist contract type")
	ErrInvalidClassID       = errors.New("invalid class id")
	ErrExistContractAddress = errors.New("exist contract address")
	ErrInsufficientCoin     = errors.New("insufficient coin balance")
	ErrInvalidSnapshot      = errors.New("invalid snapshot")
)
