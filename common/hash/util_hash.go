package hash

import (
	"crypto/sha256"
)

// Hash returns the Hash256 value of the data
func Hash(data []byte) Hash256 {
	h := sha256.New()
	if _, err := h.Write(data); err != nil {
		panic(err)
	}
	bs := h.Sum(nil)
	var hash Hash256
	copy(hash[:], bs)
	return hash
}

// Hashes returns the result of Hash(h1+h2+...)
func Hashes(hs ...Hash256) Hash256 {
	data := make([]byte, 0, Hash256Size*len(hs))
	for _, h := range hs {
		data = append(data, h[:]...)
	}
	return Hash(data)
}
