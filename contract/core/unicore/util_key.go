package unicore

var (
	tagRouter  = byte(0x01)
	tagFactory = byte(0x02)
	tagWCoin   = byte(0x03)
)
