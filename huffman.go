package bjpeg

import "sort"

const maxHuffLength = 16

// huffmanSpec mirrors the teacher's fixed-table shape (count/value arrays
// suitable for a DHT segment), but here it is the OUTPUT of BuildHuffmanTable
// rather than a hand-transcribed Annex K constant: count[i] is the number of
// codes of length i+1, and value lists the encoded symbols in the order
// their codes were assigned (ascending length, then ascending symbol value).
type huffmanSpec struct {
	count [maxHuffLength]byte
	value []byte
}

// huffmanTable is a built canonical Huffman code: code[s]/length[s] give the
// codeword assigned to symbol s (only meaningful where length[s] > 0).
type huffmanTable struct {
	code   [256]uint16
	length [256]uint8
}

// BuildHuffmanTable constructs a canonical, length-limited (<=16 bits)
// Huffman table from symbol frequencies using the package-merge algorithm
// (§5), and applies the standard JPEG reservation that forbids an all-ones
// codeword (Annex K.2, footnote on avoiding a stream of 0xFF).
//
// The all-ones reservation is implemented the way baseline encoders have
// always implemented it: a synthetic 257th symbol of minimal weight is
// folded into the frequency table before the length computation. Package-
// merge always assigns the longest code to the lightest-weight item, so the
// synthetic symbol lands at the maximum occupied length; discarding it
// after the fact leaves a gap at that length, so the last real code at
// that length is one less than all ones.
func BuildHuffmanTable(freq map[byte]int) *huffmanTable {
	symbols := make([]byte, 0, len(freq))
	for s := range freq {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	if len(symbols) == 0 {
		return &huffmanTable{}
	}
	if len(symbols) == 1 {
		t := &huffmanTable{}
		t.code[symbols[0]] = 0
		t.length[symbols[0]] = 1
		return t
	}

	const pseudo = -1 // sentinel symbol id, excluded from the output table
	leaves := make([]freqLeaf, 0, len(symbols)+1)
	leaves = append(leaves, freqLeaf{symbol: pseudo, weight: 0})
	for _, s := range symbols {
		leaves = append(leaves, freqLeaf{symbol: int(s), weight: freq[s]})
	}
	sort.SliceStable(leaves, func(i, j int) bool { return leaves[i].weight < leaves[j].weight })

	lengths := packageMerge(leaves, maxHuffLength)

	byLength := make([][]byte, maxHuffLength+1)
	for _, s := range symbols {
		l := lengths[int(s)]
		byLength[l] = append(byLength[l], s)
	}

	t := &huffmanTable{}
	code := 0
	for l := 1; l <= maxHuffLength; l++ {
		for _, s := range byLength[l] {
			t.code[s] = uint16(code)
			t.length[s] = uint8(l)
			code++
		}
		code <<= 1
	}
	return t
}

// spec returns t in the count/value form writeDHT needs, ready for the DHT
// segment (§7).
func (t *huffmanTable) spec() huffmanSpec {
	var s huffmanSpec
	type entry struct {
		symbol byte
		length uint8
		code   uint16
	}
	var entries []entry
	for sym := 0; sym < 256; sym++ {
		if t.length[sym] > 0 {
			entries = append(entries, entry{byte(sym), t.length[sym], t.code[sym]})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].length != entries[j].length {
			return entries[i].length < entries[j].length
		}
		return entries[i].code < entries[j].code
	})
	for _, e := range entries {
		s.count[e.length-1]++
		s.value = append(s.value, e.symbol)
	}
	return s
}

// pmItem is one candidate merge node in the package-merge computation: a
// total weight and the original symbol ids (freqLeaf.symbol) it represents.
type pmItem struct {
	weight int
	syms   []int
}

// packageMerge runs the standard package-merge construction (Larmore &
// Hirschberg's restatement of the length-limited Huffman problem) on
// leaves, already sorted ascending by weight, and returns a code length per
// symbol id. maxLen bounds the deepest list considered.
// freqLeaf is one original (symbol, weight) pair fed into packageMerge.
type freqLeaf struct {
	symbol int
	weight int
}

func packageMerge(leaves []freqLeaf, maxLen int) map[int]int {
	n := len(leaves)
	original := make([]pmItem, n)
	for i, l := range leaves {
		original[i] = pmItem{weight: l.weight, syms: []int{l.symbol}}
	}

	current := make([]pmItem, n)
	copy(current, original)
	for d := maxLen - 1; d >= 1; d-- {
		packaged := packagePairs(current)
		current = mergeByWeight(original, packaged)
	}

	take := 2 * (n - 1)
	if take > len(current) {
		take = len(current)
	}
	counts := make(map[int]int, n)
	for _, item := range current[:take] {
		for _, sym := range item.syms {
			counts[sym]++
		}
	}
	return counts
}

// packagePairs combines adjacent items two at a time; a trailing unpaired
// item (when len(items) is odd) is dropped, exactly as package-merge
// requires.
func packagePairs(items []pmItem) []pmItem {
	out := make([]pmItem, 0, len(items)/2)
	for i := 0; i+1 < len(items); i += 2 {
		syms := make([]int, 0, len(items[i].syms)+len(items[i+1].syms))
		syms = append(syms, items[i].syms...)
		syms = append(syms, items[i+1].syms...)
		out = append(out, pmItem{weight: items[i].weight + items[i+1].weight, syms: syms})
	}
	return out
}

// mergeByWeight merges two weight-ascending-sorted item lists into one.
func mergeByWeight(a, b []pmItem) []pmItem {
	out := make([]pmItem, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].weight <= b[j].weight {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
