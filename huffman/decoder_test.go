package huffman

import (
	"errors"
	"math/rand"
	"testing"
)

func makeTestTree(t *testing.T, input string) *Tree {
	t.Helper()
	_, tree, err := EncodeString(input)
	if err != nil {
		t.Fatalf("EncodeString(%q) failed: %v", input, err)
	}
	return tree
}

func TestDecode(t *testing.T) {
	tree := makeTestTree(t, "cabc")

	type testRow struct {
		bits   string
		expect string
	}

	testData := [...]testRow{
		{bits: "", expect: ""},
		{bits: "0", expect: "c"},
		{bits: "10", expect: "a"},
		{bits: "11", expect: "b"},
		{bits: "010110", expect: "cabc"},
		{bits: "1111000", expect: "bbccc"},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			actual, err := DecodeString(row.bits, tree)
			if err != nil {
				t.Fatalf("DecodeString failed: %v", err)
			}
			if actual != row.expect {
				t.Errorf("expected %q, got %q", row.expect, actual)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		bits   string
		offset int
	}

	testData := [...]testRow{
		{name: "truncated", input: "cabc", bits: "01", offset: 2},
		{name: "truncated-after-codes", input: "cabc", bits: "0101", offset: 4},
		{name: "invalid-byte", input: "cabc", bits: "0x1", offset: 1},
		{name: "space", input: "cabc", bits: "10 11", offset: 2},
		{name: "single-leaf-one-bit", input: "aaaa", bits: "001", offset: 2},
		{name: "single-leaf-invalid-byte", input: "aaaa", bits: "0a", offset: 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := makeTestTree(t, row.input)
			symbols, err := Decode(row.bits, tree)
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}
			var mie *MalformedInputError
			if !errors.As(err, &mie) {
				t.Fatalf("expected *MalformedInputError, got %T", err)
			}
			if mie.Offset != row.offset {
				t.Errorf("expected offset %d, got %d (%v)", row.offset, mie.Offset, err)
			}
			if symbols != nil {
				t.Errorf("expected no partial result, got %v", symbols)
			}
		})
	}
}

func TestDecode_NilTree(t *testing.T) {
	_, err := Decode("0", nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDecode_SingleSymbol(t *testing.T) {
	bits, tree, err := EncodeString("aaaa")
	if err != nil {
		t.Fatalf("EncodeString failed: %v", err)
	}
	actual, err := NewDecoder(tree).DecodeString(bits)
	if err != nil {
		t.Fatalf("DecodeString failed: %v", err)
	}
	if actual != "aaaa" {
		t.Errorf("expected %q, got %q", "aaaa", actual)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := [...]string{
		"a",
		"ab",
		"cabc",
		"aaaa",
		"The bird is the word",
		"Mississippi river",
		"日本語のテキスト、日本語",
		"abracadabra alakazam",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			bits, tree, err := EncodeString(input)
			if err != nil {
				t.Fatalf("EncodeString failed: %v", err)
			}
			actual, err := DecodeString(bits, tree)
			if err != nil {
				t.Fatalf("DecodeString failed: %v", err)
			}
			if actual != input {
				t.Errorf("round trip failed:\n\texpect: %q\n\tactual: %q", input, actual)
			}
		})
	}
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		alphabet := 1 + rng.Intn(40)
		input := make([]Symbol, 1+rng.Intn(500))
		for index := range input {
			// Skew the distribution so that trees get lopsided.
			input[index] = Symbol(rng.Intn(1 + rng.Intn(alphabet)))
		}

		bits, tree, err := Encode(input)
		if err != nil {
			t.Fatalf("iteration %d: Encode failed: %v", iter, err)
		}
		if err := tree.Validate(); err != nil {
			t.Fatalf("iteration %d: Validate failed: %v", iter, err)
		}
		actual, err := Decode(bits, tree)
		if err != nil {
			t.Fatalf("iteration %d: Decode failed: %v", iter, err)
		}
		if len(actual) != len(input) {
			t.Fatalf("iteration %d: expected %d symbols, got %d", iter, len(input), len(actual))
		}
		for index := range input {
			if actual[index] != input[index] {
				t.Fatalf("iteration %d: mismatch at index %d: expected %d, got %d", iter, index, input[index], actual[index])
			}
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add("cabc")
	f.Add("aaaa")
	f.Add("The bird is the word")

	f.Fuzz(func(t *testing.T, text string) {
		input := SymbolsFromString(text)
		bits, tree, err := Encode(input)
		if len(input) == 0 {
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput for empty input, got %v", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		actual, err := Decode(bits, tree)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if StringFromSymbols(actual) != StringFromSymbols(input) {
			t.Errorf("round trip failed:\n\texpect: %v\n\tactual: %v", input, actual)
		}
	})
}
