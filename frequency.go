package huffman

// FrequencyTable holds the number of occurrences of each byte value.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies builds a FrequencyTable for data.  Empty input yields an
// all-zero table.
func CountFrequencies(data []byte) FrequencyTable {
	var freq FrequencyTable
	freq.Add(data)
	return freq
}

// Add counts each byte of data into the table.
func (freq *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		freq[b]++
	}
}

// Total returns the sum of all counts.
func (freq *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range freq {
		sum += n
	}
	return sum
}

// NumSymbols returns the number of byte values with a non-zero count.
func (freq *FrequencyTable) NumSymbols() int {
	var count int
	for _, n := range freq {
		if n != 0 {
			count++
		}
	}
	return count
}
