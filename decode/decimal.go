package decode

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/kaede-rail/railtopo/geo"
)

// Scale is the fractional-digit weight used to reconstruct a decimal value
// from its two integer tokens. Two conventions are in use: the primary
// station/railway parser uses 1e-5, the cross-dataset linker uses 1e-6.
type Scale float64

// ScalePrimary is the 1e-5 convention used by the main station/railway input.
const ScalePrimary Scale = 1e-5

// ScaleLinker is the 1e-6 convention used by the cross-dataset identity
// linker's input (see identity package).
const ScaleLinker Scale = 1e-6

// ErrUnexpectedEOF is returned when a token was expected but the stream ended.
var ErrUnexpectedEOF = errors.New("decode: unexpected end of input")

// TokenReader reads whitespace-delimited tokens from an io.Reader: one
// token per field, split on any run of whitespace.
type TokenReader struct {
	sc *bufio.Scanner
}

// NewTokenReader wraps r for whitespace-delimited token scanning.
func NewTokenReader(r io.Reader) *TokenReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &TokenReader{sc: sc}
}

// Token returns the next raw whitespace-delimited token.
func (t *TokenReader) Token() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", ErrUnexpectedEOF
	}
	return t.sc.Text(), nil
}

// Int reads the next token as a base-10 signed integer.
func (t *TokenReader) Int() (int64, error) {
	tok, err := t.Token()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(tok, 10, 64)
}

// Decimal reconstructs one fixed-precision decimal value by reading three
// tokens in sequence: an integer part, a single non-digit separator token
// (consumed and discarded — its content, typically "." or similar, carries
// no numeric meaning in this convention), and the fractional digits read as
// a plain integer. The value is intPart + fracDigits*scale.
//
// fracDigits is read as a bare integer and weighted by scale, so leading
// zeros do not change the value ("00100" at 1e-5 is 0.00100), but the token
// must carry the full number of digits the scale implies: a short token
// such as "5" at 1e-5 reads as 0.00005, not 0.5.
func (t *TokenReader) Decimal(scale Scale) (float64, error) {
	intPart, err := t.Int()
	if err != nil {
		return 0, err
	}
	if _, err := t.Token(); err != nil { // separator, discarded
		return 0, err
	}
	fracDigits, err := t.Int()
	if err != nil {
		return 0, err
	}
	return float64(intPart) + float64(fracDigits)*float64(scale), nil
}

// Pos reads a (lat, lng) pair of Decimal-encoded coordinates, in that order,
// never (lng, lat).
func (t *TokenReader) Pos(scale Scale) (geo.Pos, error) {
	lat, err := t.Decimal(scale)
	if err != nil {
		return geo.Pos{}, err
	}
	lng, err := t.Decimal(scale)
	if err != nil {
		return geo.Pos{}, err
	}
	return geo.New(lat, lng), nil
}
