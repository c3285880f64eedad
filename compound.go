package admetlab2

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Request is the JSON body posted to the service.
type Request struct {
	Compound string `json:"compound"`
}

// ResolveCompound returns the trimmed contents of arg when it names an
// existing regular file, and arg itself trimmed otherwise.
func ResolveCompound(arg string) (string, error) {
	compound := arg

	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", UsageError(fmt.Errorf("read input file %s: %w", arg, err))
		}

		compound = string(data)
	}

	compound = strings.TrimFunc(compound, isCompoundSpace)
	if compound == "" {
		return "", UsageError(ErrEmptyCompound)
	}

	return compound, nil
}

// isCompoundSpace matches Unicode white space plus the ASCII separators
// 0x1c-0x1f, which Python's str.strip also removes.
func isCompoundSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
