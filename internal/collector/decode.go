package collector

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var consoleReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u00a0", " ",
	"\ufeff", "",
	"\uff1a", ":",
)

// decodeConsole turns raw console output into text. Windows consoles with a
// Russian locale emit OEM code page 866, so non-UTF-8 output is decoded as such.
func decodeConsole(out []byte) string {
	text := string(out)
	if !utf8.Valid(out) {
		decoded, err := charmap.CodePage866.NewDecoder().Bytes(out)
		if err == nil {
			text = string(decoded)
		} else {
			text = strings.ToValidUTF8(text, "\ufffd")
		}
	}
	return consoleReplacer.Replace(text)
}
