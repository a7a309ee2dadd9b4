package signature

// Similarity returns a ratio in [0,1] telling how alike a and b are.
//
// The longest common block is matched first, then the same search runs on
// the unmatched text to its left and to its right. With M matched runes the
// score is 2*M / (len(a)+len(b)). Two empty strings are identical.
//
// No rune is ever treated as junk. Python's difflib ignores characters that
// make up more than 1% of a sequence of 200 or more, so long deep-mode
// signatures can score differently here than they would there.
func Similarity(a, b string) float64 {
	// Tie-breaking depends on argument order; a fixed order keeps the score symmetric.
	if b < a {
		a, b = b, a
	}

	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	m := newMatcher(ra, rb)
	return 2.0 * float64(m.matchedCount()) / float64(total)
}

// block is one contiguous run shared by both sequences.
type block struct {
	a, b, size int
}

type matcher struct {
	a, b []rune
	b2j  map[rune][]int
}

func newMatcher(a, b []rune) *matcher {
	b2j := make(map[rune][]int)
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	return &matcher{a: a, b: b, b2j: b2j}
}

// longestMatch finds the longest block within a[alo:ahi] and b[blo:bhi].
// Among equally long blocks it picks the one starting earliest in a, and
// then earliest in b.
func (m *matcher) longestMatch(alo, ahi, blo, bhi int) block {
	best := block{a: alo, b: blo}

	// j2len[j] is the length of the match ending at a[i-1] and b[j].
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.size {
				best = block{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		j2len = next
	}
	return best
}

// matchedCount sums the sizes of all matching blocks.
func (m *matcher) matchedCount() int {
	type span struct{ alo, ahi, blo, bhi int }

	matched := 0
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		blk := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if blk.size == 0 {
			continue
		}
		matched += blk.size

		if s.alo < blk.a && s.blo < blk.b {
			queue = append(queue, span{s.alo, blk.a, s.blo, blk.b})
		}
		if blk.a+blk.size < s.ahi && blk.b+blk.size < s.bhi {
			queue = append(queue, span{blk.a + blk.size, s.ahi, blk.b + blk.size, s.bhi})
		}
	}
	return matched
}
