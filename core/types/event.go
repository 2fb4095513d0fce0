package types

import (
	"github.com/coreswap/coreswap/common"
)

// Event is emitted by contracts during execution and collected
// per context in call order
type Event struct {
	Index    uint16
	Contract common.Address
	Name     string
	Args     []interface{}
}
