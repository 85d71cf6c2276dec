package index

import "encoding/binary"

// Rank keys sort a cursor scan by descending count, then ascending word:
// key = invCount(4) + 0x00 + word.
func makeCountWordKey(count int, word string) []byte {
	buf := make([]byte, 0, 4+1+len(word))

	tmp := make([]byte, 4)
	binary.BigEndian.PutUint32(tmp, ^clampCount(count))
	buf = append(buf, tmp...)

	buf = append(buf, 0x00)
	buf = append(buf, []byte(word)...)
	return buf
}

func countWordFromKey(k []byte) (string, int) {
	// invCount(4) + 0x00 + word
	if len(k) < 4+2 {
		return "", 0
	}
	count := int(^binary.BigEndian.Uint32(k[:4]))
	return string(k[5:]), count
}

func clampCount(c int) uint32 {
	if c < 0 {
		c = 0
	}
	return uint32(c)
}

func putCount(c int) []byte {
	tmp := make([]byte, 4)
	binary.BigEndian.PutUint32(tmp, clampCount(c))
	return tmp
}

func getCount(v []byte) int {
	if len(v) != 4 {
		return 0
	}
	return int(binary.BigEndian.Uint32(v))
}
