package admetlab2

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// FormatResponse re-indents resp with OutputIndent. Key order, number
// literals and NaN/Infinity values are kept as the service sent them.
func FormatResponse(resp Response) ([]byte, error) {
	masked, nulls := maskNonFinite(bytes.TrimSpace(resp))

	var b bytes.Buffer
	if err := json.Indent(&b, masked, "", OutputIndent); err != nil {
		return nil, fmt.Errorf("indent response: %w", err)
	}

	return unmaskNonFinite(b.Bytes(), nulls), nil
}

// WriteOutput writes the indented response to path, creating or truncating
// it. Every failure is tagged KindWrite.
func WriteOutput(path string, resp Response) error {
	data, err := FormatResponse(resp)
	if err != nil {
		return writeError(err)
	}

	if err := os.WriteFile(path, data, outputFilePerm); err != nil {
		return writeError(err)
	}

	return nil
}
