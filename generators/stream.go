package generators

import "crypto/cipher"

type bitStream struct {
	src BitSource
}

// NewStream adapts a bit source into a cipher.Stream. Each byte of input is
// XORed with the next 8 keystream bits, the first bit landing in the most
// significant position. Decryption is the same operation from the same
// starting state.
func NewStream(src BitSource) cipher.Stream {
	return &bitStream{src: src}
}

// XORKeyStream implements cipher.Stream.
func (s *bitStream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("generators: output smaller than input")
	}
	for i, b := range src {
		dst[i] = b ^ s.nextByte()
	}
}

func (s *bitStream) nextByte() byte {
	var k byte
	for range 8 {
		k = k<<1 | byte(s.src.Step())
	}
	return k
}

// Keystream draws n bytes of keystream from src.
func Keystream(src BitSource, n int) []byte {
	out := make([]byte, n)
	NewStream(src).XORKeyStream(out, out)
	return out
}
