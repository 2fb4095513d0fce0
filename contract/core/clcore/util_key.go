package clcore

var (
	tagManager    = byte(0x01)
	tagSwapRouter = byte(0x02)
)
