package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"

	"github.com/rshade/pickr/internal/ingest"
)

// Output formats accepted by --output.
const (
	outputLines = "lines"
	outputJSON  = "json"
)

// ErrUnknownOutput is returned for an --output value that is not supported.
const ErrUnknownOutput = constError("unknown output format")

type selectionWriterFunc func(w io.Writer, selected []ingest.Record) error

func selectionWriter(format string) (selectionWriterFunc, error) {
	switch format {
	case "", outputLines:
		return writeLines, nil
	case outputJSON:
		return writeJSON, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownOutput, format, outputLines, outputJSON)
	}
}

// writeLines writes each selected record as it was read, one per line.
func writeLines(w io.Writer, selected []ingest.Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range selected {
		if _, err := bw.WriteString(r.Raw + "\n"); err != nil {
			return fmt.Errorf("writing selection: %w", err)
		}
	}
	return bw.Flush()
}

// writeJSON writes the selection as one JSON array. Structured records are
// embedded as they are; plain lines become strings.
func writeJSON(w io.Writer, selected []ingest.Record) error {
	items := make([]json.RawMessage, len(selected))
	for i, r := range selected {
		if r.Structured {
			items[i] = json.RawMessage(r.Raw)
			continue
		}
		s, err := json.Marshal(r.Raw)
		if err != nil {
			return fmt.Errorf("encoding selection: %w", err)
		}
		items[i] = s
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding selection: %w", err)
	}
	if _, err = w.Write(pretty.Pretty(data)); err != nil {
		return fmt.Errorf("writing selection: %w", err)
	}
	return nil
}
