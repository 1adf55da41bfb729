package huffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestDecoder() Decoder {
	var d Decoder
	d.Init(buildTestTree("abracadabra"))
	return d
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tDecode(\"0\") = 97\n",
		"\tDecode(\"10\") = 114\n",
		"\tDecode(\"111\") = 98\n",
		"\tDecode(\"1100\") = 99\n",
		"\tDecode(\"1101\") = 100\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		name   string
		bits   string
		expect string
	}

	testData := [...]testRow{
		{"empty", "", ""},
		{"a", "0", "a"},
		{"dcba", "1101" + "1100" + "111" + "0", "dcba"},
		{"abracadabra", "01111001100011010111100", "abracadabra"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := d.Decode(row.bits)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if string(actual) != row.expect {
				t.Errorf("expected %q, got %q", row.expect, actual)
			}
		})
	}
}

func TestDecoder_InvalidBit(t *testing.T) {
	d := makeTestDecoder()

	_, err := d.Decode("0120")

	var bitErr *InvalidBitError
	require.True(t, errors.As(err, &bitErr))
	require.Equal(t, byte('2'), bitErr.Bit)
	require.Equal(t, 2, bitErr.Offset)
	require.Equal(t, `huffman: invalid bit '2' at offset 2`, err.Error())
}

func TestDecoder_Truncated(t *testing.T) {
	d := makeTestDecoder()

	_, err := d.Decode("0110")
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecoder_Placeholder(t *testing.T) {
	var d Decoder
	d.Init(buildTestTree("aaaa"))

	out, err := d.Decode("11")
	require.NoError(t, err)
	require.Equal(t, []byte("aa"), out)

	_, err = d.Decode("10")
	require.ErrorIs(t, err, ErrPlaceholder)
}

func TestDecoder_NoTree(t *testing.T) {
	var d Decoder
	d.Init(nil)

	out, err := d.Decode("")
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = d.Decode("0")
	require.ErrorIs(t, err, ErrNoTree)
}
