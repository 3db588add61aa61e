package dump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("bytes per line and bytes per group must be positive")

// Dumper renders a byte sequence line by line. It is a forward-only
// iterator over the input and cannot be restarted.
type Dumper struct {
	data   []byte
	opts   Options
	offset int
}

// New validates opts and trims data to the configured byte limit.
func New(data []byte, opts Options) (*Dumper, error) {
	if opts.BytesPerLine <= 0 || opts.BytesPerGroup <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "cols=%d groupsize=%d", opts.BytesPerLine, opts.BytesPerGroup)
	}

	if opts.Unprintable == 0 {
		opts.Unprintable = '.'
	}

	if opts.Limit > Unlimited && int64(len(data)) > opts.Limit {
		data = data[:opts.Limit]
	}

	return &Dumper{
		data: data,
		opts: opts,
	}, nil
}

// Next returns the next formatted line, or ok=false once the input is
// exhausted. Empty input produces no lines at all.
func (d *Dumper) Next() (string, bool) {
	if d.offset >= len(d.data) {
		return "", false
	}

	end := d.offset + d.opts.BytesPerLine
	if end > len(d.data) {
		end = len(d.data)
	}

	line := d.formatLine(d.offset, d.data[d.offset:end])
	d.offset = end

	return line, true
}

// WriteTo streams all remaining lines to w.
func (d *Dumper) WriteTo(w io.Writer) (int64, error) {
	buffered := bufio.NewWriter(w)

	var total int64
	for {
		line, ok := d.Next()

		if !ok {
			break
		}

		n, err := buffered.WriteString(line)
		total += int64(n)

		if err != nil {
			return total, errors.Wrap(err, "error writing dump")
		}
	}

	return total, errors.Wrap(buffered.Flush(), "error flushing dump")
}

func (d *Dumper) formatLine(offset int, row []byte) string {
	var line strings.Builder

	fmt.Fprintf(&line, "%08x: ", offset)

	verb := d.opts.Mode.verb()
	for i, b := range row {
		fmt.Fprintf(&line, verb, b)

		if (i+1)%d.opts.BytesPerGroup == 0 && i+1 < len(row) {
			line.WriteByte(' ')
		}
	}

	// A short final line still aligns with the full lines above it:
	// pad with the width of the absent bytes plus the separators that
	// would have appeared among them.
	if diff := d.opts.BytesPerLine - len(row); diff > 0 {
		line.WriteString(strings.Repeat(" ", d.opts.Mode.digits()*diff+diff/d.opts.BytesPerGroup))
	}

	line.WriteString("  ")

	for _, b := range row {
		if b >= 0x20 && b <= 0x7E {
			line.WriteByte(b)
		} else {
			line.WriteByte(d.opts.Unprintable)
		}
	}

	line.WriteByte('\n')

	return line.String()
}
