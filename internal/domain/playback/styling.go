package playback

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// DefaultSpacing asks the renderer to use its own spacing between indicators.
const DefaultSpacing = -1

// ProgressStyling is the look of a single indicator.
type ProgressStyling struct {
	FilledColor string `yaml:"filled_color"`
	EmptyColor  string `yaml:"empty_color"`
	FilledGlyph string `yaml:"filled_glyph"`
	EmptyGlyph  string `yaml:"empty_glyph"`
}

// Styling is the look of the whole indicator row. A nil Progress means
// the renderer defaults apply to every indicator.
type Styling struct {
	ProgressSpacing int              `yaml:"progress_spacing"`
	Progress        *ProgressStyling `yaml:"progress,omitempty"`
}

// DefaultStyling returns a Styling that defers everything to the renderer.
func DefaultStyling() Styling {
	return Styling{ProgressSpacing: DefaultSpacing}
}

// Spacing returns the configured spacing, or fallback when unset.
func (s Styling) Spacing(fallback int) int {
	if s.ProgressSpacing < 0 {
		return fallback
	}
	return s.ProgressSpacing
}

// Equal reports whether both values describe the same styling.
func (s Styling) Equal(other Styling) bool {
	if s.ProgressSpacing != other.ProgressSpacing {
		return false
	}
	if s.Progress == nil || other.Progress == nil {
		return s.Progress == nil && other.Progress == nil
	}
	return *s.Progress == *other.Progress
}

// Wire field numbers. Fields are written in ascending order and decoding
// accepts only that canonical layout, so a decoded blob re-encodes to the
// same bytes.
const (
	fieldProgressSpacing protowire.Number = 1
	fieldProgress        protowire.Number = 2

	fieldFilledColor protowire.Number = 1
	fieldEmptyColor  protowire.Number = 2
	fieldFilledGlyph protowire.Number = 3
	fieldEmptyGlyph  protowire.Number = 4
)

// MarshalBinary encodes the styling in protobuf wire format.
func (s Styling) MarshalBinary() ([]byte, error) {
	b := protowire.AppendTag(nil, fieldProgressSpacing, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(s.ProgressSpacing)))
	if s.Progress != nil {
		b = protowire.AppendTag(b, fieldProgress, protowire.BytesType)
		b = protowire.AppendBytes(b, s.Progress.appendWire(nil))
	}
	return b, nil
}

// UnmarshalBinary decodes a blob produced by MarshalBinary.
func (s *Styling) UnmarshalBinary(data []byte) error {
	out := Styling{}
	var last protowire.Number
	sawSpacing := false
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformedStyling, protowire.ParseError(n))
		}
		if num <= last || n != protowire.SizeTag(num) {
			return fmt.Errorf("%w: field %d not canonical", ErrMalformedStyling, num)
		}
		last = num
		data = data[n:]

		switch {
		case num == fieldProgressSpacing && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("%w: spacing: %v", ErrMalformedStyling, protowire.ParseError(n))
			}
			if n != protowire.SizeVarint(v) {
				return fmt.Errorf("%w: spacing not minimally encoded", ErrMalformedStyling)
			}
			spacing := protowire.DecodeZigZag(v)
			if spacing < math.MinInt || spacing > math.MaxInt {
				return fmt.Errorf("%w: spacing %d out of range", ErrMalformedStyling, spacing)
			}
			out.ProgressSpacing = int(spacing)
			sawSpacing = true
			data = data[n:]
		case num == fieldProgress && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("%w: progress: %v", ErrMalformedStyling, protowire.ParseError(n))
			}
			if n != protowire.SizeBytes(len(v)) {
				return fmt.Errorf("%w: progress length not minimally encoded", ErrMalformedStyling)
			}
			progress, err := decodeProgressStyling(v)
			if err != nil {
				return err
			}
			out.Progress = &progress
			data = data[n:]
		default:
			return fmt.Errorf("%w: unexpected field %d (wire type %d)", ErrMalformedStyling, num, typ)
		}
	}
	if !sawSpacing {
		return fmt.Errorf("%w: missing spacing", ErrMalformedStyling)
	}
	*s = out
	return nil
}

func (p ProgressStyling) appendWire(b []byte) []byte {
	for _, f := range []struct {
		num   protowire.Number
		value string
	}{
		{fieldFilledColor, p.FilledColor},
		{fieldEmptyColor, p.EmptyColor},
		{fieldFilledGlyph, p.FilledGlyph},
		{fieldEmptyGlyph, p.EmptyGlyph},
	} {
		b = protowire.AppendTag(b, f.num, protowire.BytesType)
		b = protowire.AppendString(b, f.value)
	}
	return b
}

func decodeProgressStyling(data []byte) (ProgressStyling, error) {
	var p ProgressStyling
	targets := map[protowire.Number]*string{
		fieldFilledColor: &p.FilledColor,
		fieldEmptyColor:  &p.EmptyColor,
		fieldFilledGlyph: &p.FilledGlyph,
		fieldEmptyGlyph:  &p.EmptyGlyph,
	}
	want := fieldFilledColor
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return ProgressStyling{}, fmt.Errorf("%w: %v", ErrMalformedStyling, protowire.ParseError(n))
		}
		if want > fieldEmptyGlyph || num != want || typ != protowire.BytesType || n != protowire.SizeTag(num) {
			return ProgressStyling{}, fmt.Errorf("%w: progress field %d, want %d", ErrMalformedStyling, num, want)
		}
		data = data[n:]
		v, n := protowire.ConsumeString(data)
		if n < 0 {
			return ProgressStyling{}, fmt.Errorf("%w: %v", ErrMalformedStyling, protowire.ParseError(n))
		}
		if n != protowire.SizeBytes(len(v)) {
			return ProgressStyling{}, fmt.Errorf("%w: progress field %d length not minimally encoded", ErrMalformedStyling, num)
		}
		*targets[num] = v
		data = data[n:]
		want++
	}
	if want != fieldEmptyGlyph+1 {
		return ProgressStyling{}, fmt.Errorf("%w: progress styling truncated", ErrMalformedStyling)
	}
	return p, nil
}
