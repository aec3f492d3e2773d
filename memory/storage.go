package memory

import "github.com/katalvlaran/wiresim/bitval"

// storage is the flat word array shared by ROM and RAM: capacity words,
// each wordWidth bits wide, addressed 0..capacity-1.
type storage struct {
	words     []bitval.BitValue
	wordWidth int
}

func newStorage(capacity, wordWidth int) *storage {
	words := make([]bitval.BitValue, capacity)
	zero := bitval.Low(wordWidth)
	for i := range words {
		words[i] = zero
	}
	return &storage{words: words, wordWidth: wordWidth}
}

func (s *storage) capacity() int { return len(s.words) }

// read returns length words starting at address, or ok=false if the range
// falls outside capacity.
func (s *storage) read(address int, length int) (words []bitval.BitValue, ok bool) {
	if address < 0 || address+length > len(s.words) {
		return nil, false
	}
	out := make([]bitval.BitValue, length)
	copy(out, s.words[address:address+length])
	return out, true
}

// write overwrites words starting at address, truncating/padding each word
// to wordWidth bits. Returns ok=false if the range falls outside capacity.
func (s *storage) write(address int, words []bitval.BitValue) (ok bool, err error) {
	if address < 0 || address+len(words) > len(s.words) {
		return false, nil
	}
	for i, w := range words {
		resized, rerr := resizeWord(w, s.wordWidth)
		if rerr != nil {
			return true, rerr
		}
		s.words[address+i] = resized
	}
	return true, nil
}

// initialize loads value, sliced into wordWidth-bit words from the MSB end,
// into the storage starting at address 0.
//
// Errors: ErrWidthMismatch if value's width isn't a multiple of wordWidth.
func (s *storage) initialize(value bitval.BitValue) error {
	if s.wordWidth == 0 || value.Width()%s.wordWidth != 0 {
		return ErrWidthMismatch
	}
	n := value.Width() / s.wordWidth
	for i := 0; i < n && i < len(s.words); i++ {
		word, err := value.BitSlice(i*s.wordWidth, (i+1)*s.wordWidth)
		if err != nil {
			return err
		}
		s.words[i] = word
	}
	return nil
}

func (s *storage) clear() {
	zero := bitval.Low(s.wordWidth)
	for i := range s.words {
		s.words[i] = zero
	}
}

// resizeWord truncates (from the MSB) or zero-pads a word to exactly width
// bits, matching BitValue's own MSB-first resize convention.
func resizeWord(w bitval.BitValue, width int) (bitval.BitValue, error) {
	if w.Width() == width {
		return w, nil
	}
	if w.Width() > width {
		return w.Truncate(width)
	}
	return w.Pad(width)
}

// ceilLog2 returns the smallest k such that 2^k >= n (n >= 1).
func ceilLog2(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}
