package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{"", `""`},
		{"0", `"0"`},
		{"1101", `"1101"`},
	}
	for _, row := range testData {
		if actual := row.code.String(); actual != row.expect {
			t.Errorf("expected %s, got %s", row.expect, actual)
		}
	}
}

func TestBuildCodeTable_Dump(t *testing.T) {
	table := BuildCodeTable(buildTestTree("abracadabra"))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup(97) = \"0\"\n",
		"\tLookup(98) = \"111\"\n",
		"\tLookup(99) = \"1100\"\n",
		"\tLookup(100) = \"1101\"\n",
		"\tLookup(114) = \"10\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if actual := table.Len(); actual != 5 {
		t.Errorf("expected 5 symbols, got %d", actual)
	}
	if _, found := table.Lookup('z'); found {
		t.Errorf("expected no code for 'z'")
	}
}

func TestBuildCodeTable_Nil(t *testing.T) {
	table := BuildCodeTable(nil)
	require.Equal(t, 0, table.Len())
	require.Empty(t, table.Symbols())
}

func TestBuildCodeTable_SingleSymbol(t *testing.T) {
	table := BuildCodeTable(buildTestTree("aaaa"))

	require.Equal(t, []byte{'a'}, table.Symbols())
	hc, found := table.Lookup('a')
	require.True(t, found)
	require.Equal(t, Code("1"), hc)
}

func TestBuildCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		data := make([]byte, 1+rng.Intn(2000))
		alphabet := 1 + rng.Intn(NumSymbols)
		for i := range data {
			data[i] = byte(rng.Intn(alphabet))
		}

		table := BuildCodeTable(buildTestTree(string(data)))
		symbols := table.Symbols()
		for _, a := range symbols {
			ca, _ := table.Lookup(a)
			require.GreaterOrEqual(t, ca.Len(), 1)
			for _, b := range symbols {
				if a == b {
					continue
				}
				cb, _ := table.Lookup(b)
				require.Falsef(t, cb.HasPrefix(ca), "code %s for %d is a prefix of code %s for %d", ca, a, cb, b)
			}
		}
	}
}

func TestBuildCodeTable_LengthMonotonic(t *testing.T) {
	var freq FrequencyTable
	freq['a'] = 1000
	freq['b'] = 300
	freq['c'] = 100
	freq['d'] = 30
	freq['e'] = 10
	freq['f'] = 3
	freq['g'] = 1

	table := BuildCodeTable(BuildTree(&freq))
	symbols := table.Symbols()
	for _, a := range symbols {
		for _, b := range symbols {
			if freq[a] <= freq[b] {
				continue
			}
			ca, _ := table.Lookup(a)
			cb, _ := table.Lookup(b)
			require.LessOrEqualf(t, ca.Len(), cb.Len(), "freq(%q)=%d > freq(%q)=%d", a, freq[a], b, freq[b])
		}
	}
}

func TestBuildCodeTable_Skewed(t *testing.T) {
	var freq FrequencyTable
	freq[0] = 1
	for symbol := 1; symbol <= 62; symbol++ {
		freq[symbol] = 1 << (symbol - 1)
	}

	table := BuildCodeTable(BuildTree(&freq))
	require.Equal(t, 1, table.MinSize())
	require.Equal(t, 62, table.MaxSize())

	hc, _ := table.Lookup(62)
	require.Equal(t, Code("1"), hc)
	hc, _ = table.Lookup(0)
	require.Equal(t, Code(strings.Repeat("0", 62)), hc)
}
