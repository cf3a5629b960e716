package undo

// bitset is a growable bit vector keyed by line number, default false.
// One is allocated per direction of a save-reconciliation pass so that
// each line number is promoted at most once per pass.
type bitset struct {
	words []uint64
}

func (b *bitset) grow(n int) {
	need := n/64 + 1
	for len(b.words) < need {
		b.words = append(b.words, 0)
	}
}

func (b *bitset) test(n int) bool {
	if n < 0 || n/64 >= len(b.words) {
		return false
	}
	return b.words[n/64]&(1<<(n%64)) != 0
}

func (b *bitset) set(n int) {
	b.grow(n)
	b.words[n/64] |= 1 << (n % 64)
}
