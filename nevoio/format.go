package nevoio

const (
	magic   uint32 = 0x6e65766f // "nevo"
	version uint32 = 1
)
