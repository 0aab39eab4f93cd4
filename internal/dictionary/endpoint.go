package dictionary

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/unicode/norm"
)

// Direction selects between a forward lookup (Na'vi to the display language) and a
// reverse lookup (display language to Na'vi).
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

var (
	_             pflag.Value = (*Direction)(nil)
	allDirections             = []Direction{DirectionForward, DirectionReverse}
)

func DirectionOf(reverse bool) Direction {
	if reverse {
		return DirectionReverse
	}
	return DirectionForward
}

func (d *Direction) Set(val string) error {
	for _, direction := range allDirections {
		if val == string(direction) {
			*d = direction
			return nil
		}
	}
	return fmt.Errorf("invalid direction: %s", val)
}

func (d Direction) String() string {
	return string(d)
}

func (d *Direction) Type() string {
	return "direction"
}

func (d Direction) IsReverse() bool {
	return d == DirectionReverse
}

// Endpoint builds the request URL for a query.
// An empty text lists every word regardless of the direction.
func Endpoint(baseURL, text string, reverse bool, languageCode string) string {
	base := strings.TrimRight(baseURL, "/")
	if text == "" {
		return base + "/list/"
	}

	segment := url.PathEscape(norm.NFC.String(text))
	if reverse {
		return base + "/fwew/r/" + url.PathEscape(languageCode) + "/" + segment
	}
	return base + "/fwew/" + segment
}
