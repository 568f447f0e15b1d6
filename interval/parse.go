package interval

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// tokenRegExp matches two signed decimal numbers separated by a dash, with
// optional whitespace around the dash.  Adjacent signs are allowed, so
// "-10--5", "-10 - -5", "0-10" and "5.5-10" all match.
var tokenRegExp = regexp.MustCompile(`^\s*([-+]?[0-9]+\.?[0-9]*)\s*-\s*([-+]?[0-9]+\.?[0-9]*)`)

// Parse converts a textual token such as "100-200" or "-10 - -5" into an
// Interval.  It fails with ErrParse when the token does not match the
// number-dash-number pattern, and with ErrInvalidInterval when the parsed
// bounds are inverted.
func Parse(token string) (Interval, error) {
	m := tokenRegExp.FindStringSubmatch(token)
	if m == nil {
		return Interval{}, errors.Wrapf(ErrParse, "%q does not look like <number>-<number>", token)
	}
	start, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Interval{}, errors.Wrapf(ErrParse, "bad start %q in %q", m[1], token)
	}
	stop, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Interval{}, errors.Wrapf(ErrParse, "bad stop %q in %q", m[2], token)
	}
	return New(start, stop)
}
