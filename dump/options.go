package dump

import (
	"strconv"

	log "github.com/sirupsen/logrus"
)

type NumericMode int

const (
	ModeHex NumericMode = iota
	ModeHexUpper
	ModeBinary
)

// Unlimited disables the byte limit.
const Unlimited = 0

func (m NumericMode) digits() int {
	if m == ModeBinary {
		return 8
	}

	return 2
}

func (m NumericMode) verb() string {
	switch m {
	case ModeHexUpper:
		return "%02X"
	case ModeBinary:
		return "%08b"
	default:
		return "%02x"
	}
}

func (m NumericMode) defaultCols() int {
	if m == ModeBinary {
		return 6
	}

	return 16
}

func (m NumericMode) defaultGroup() int {
	if m == ModeBinary {
		return 1
	}

	return 2
}

type Options struct {
	BytesPerLine  int
	BytesPerGroup int
	Unprintable   byte
	Mode          NumericMode
	Limit         int64
}

// Resolve builds a fully populated Options from raw user overrides.
// cols, group and length that do not parse as non-negative integers fall
// back to the mode default (unlimited, for length). An explicit zero is
// kept and rejected later by New.
func Resolve(mode NumericMode, cols string, group string, length string) Options {
	return Options{
		BytesPerLine:  resolveWidth(cols, mode.defaultCols()),
		BytesPerGroup: resolveWidth(group, mode.defaultGroup()),
		Unprintable:   '.',
		Mode:          mode,
		Limit:         resolveLimit(length),
	}
}

func resolveWidth(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		log.Warnf("Invalid width %q, using default %d", raw, fallback)
		return fallback
	}

	return int(parsed)
}

func resolveLimit(raw string) int64 {
	if raw == "" {
		return Unlimited
	}

	parsed, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		log.Warnf("Invalid length %q, dumping everything", raw)
		return Unlimited
	}

	return int64(parsed)
}
