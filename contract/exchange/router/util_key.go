package router

var (
	tagFactory = byte(0x01)
	tagWCoin   = byte(0x02)
)
