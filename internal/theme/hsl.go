package theme

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidHex = errors.New("color must be #rgb or #rrggbb")

// HexToHSL converts a hex color to "H S% L%" with whole-number components.
func HexToHSL(hex string) (string, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return "", ErrInvalidHex
	}
	digits := hex[1:]
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	default:
		return "", ErrInvalidHex
	}
	if strings.IndexFunc(digits, notHexDigit) >= 0 {
		return "", ErrInvalidHex
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return "", ErrInvalidHex
	}
	h, s, l := c.Hsl()
	return fmt.Sprintf("%d %d%% %d%%", int(math.Round(h)), int(math.Round(s*100)), int(math.Round(l*100))), nil
}

func notHexDigit(r rune) bool {
	return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
}
