package dump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, data []byte, opts Options) string {
	t.Helper()

	dumper, err := New(data, opts)
	require.NoError(t, err)

	var out strings.Builder
	_, err = dumper.WriteTo(&out)
	require.NoError(t, err)

	return out.String()
}

func TestDumpDefaultHex(t *testing.T) {
	out := render(t, []byte("ABC"), Resolve(ModeHex, "", "", ""))
	assert.Equal(t, "00000000: 4142 43"+strings.Repeat(" ", 32)+"  ABC\n", out)
}

func TestDumpEmptyInput(t *testing.T) {
	out := render(t, nil, Resolve(ModeHex, "", "", ""))
	assert.Equal(t, "", out)
}

func TestDumpUpperHex(t *testing.T) {
	out := render(t, []byte{0xab, 0xcd}, Resolve(ModeHexUpper, "", "", ""))
	assert.Equal(t, "00000000: ABCD"+strings.Repeat(" ", 35)+"  ..\n", out)
}

func TestDumpBinaryFullLine(t *testing.T) {
	out := render(t, []byte{0, 1, 2, 3, 4, 5}, Resolve(ModeBinary, "", "", ""))
	assert.Equal(t, "00000000: 00000000 00000001 00000010 00000011 00000100 00000101  ......\n", out)
}

func TestDumpByteLimit(t *testing.T) {
	out := render(t, []byte("ABCDEFGHIJ"), Resolve(ModeHex, "", "", "2"))
	assert.Equal(t, "00000000: 4142"+strings.Repeat(" ", 35)+"  AB\n", out)
}

func TestDumpPrintableBoundaries(t *testing.T) {
	out := render(t, []byte{0x1f, 0x20, 0x7e, 0x7f}, Resolve(ModeHex, "4", "", ""))
	assert.Equal(t, "00000000: 1f20 7e7f  . ~.\n", out)
}

func TestDumpCustomUnprintable(t *testing.T) {
	opts := Resolve(ModeHex, "2", "", "")
	opts.Unprintable = '#'

	out := render(t, []byte{0x00, 0x41}, opts)
	assert.Equal(t, "00000000: 0041  #A\n", out)
}

func TestDumpGroupLargerThanLine(t *testing.T) {
	// Groups never wrap, so no separator appears at all.
	out := render(t, []byte{0xde, 0xad, 0xbe, 0xef}, Resolve(ModeHex, "4", "8", ""))
	assert.Equal(t, "00000000: deadbeef  ....\n", out)
}

func TestDumpLineCount(t *testing.T) {
	opts := Resolve(ModeHex, "", "", "")

	for _, size := range []int{0, 1, 15, 16, 17, 64, 100} {
		out := render(t, make([]byte, size), opts)
		assert.Equal(t, (size+15)/16, strings.Count(out, "\n"), "size %d", size)
	}
}

func TestDumpOffsetsAndAlignment(t *testing.T) {
	out := render(t, make([]byte, 40), Resolve(ModeHex, "", "", ""))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "00000000: "))
	assert.True(t, strings.HasPrefix(lines[1], "00000010: "))
	assert.True(t, strings.HasPrefix(lines[2], "00000020: "))

	// Full lines are equal width; the short line only lacks its 8
	// graphical characters.
	assert.Equal(t, len(lines[0]), len(lines[1]))
	assert.Equal(t, len(lines[0])-8, len(lines[2]))
}

func TestDumpIdempotent(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	opts := Resolve(ModeBinary, "", "", "")

	assert.Equal(t, render(t, data, opts), render(t, data, opts))
}

func TestDumpIterator(t *testing.T) {
	dumper, err := New(make([]byte, 20), Resolve(ModeHex, "", "", ""))
	require.NoError(t, err)

	first, ok := dumper.Next()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(first, "00000000: "))

	second, ok := dumper.Next()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(second, "00000010: "))

	_, ok = dumper.Next()
	assert.False(t, ok)
}

func TestDumpInvalidConfig(t *testing.T) {
	t.Run("zero line width", func(t *testing.T) {
		_, err := New([]byte("x"), Options{BytesPerLine: 0, BytesPerGroup: 2})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("zero group width", func(t *testing.T) {
		_, err := New([]byte("x"), Options{BytesPerLine: 16, BytesPerGroup: 0})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
