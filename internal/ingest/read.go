package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pickr/internal/logging"
)

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by this package.
const (
	ErrUnknownFormat = constError("unknown input format")
	ErrInvalidRecord = constError("invalid record")
)

// Format names how input bytes are split into records.
type Format string

// Supported input formats.
const (
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// maxLineSize bounds a single input line.
const maxLineSize = 4 * 1024 * 1024

// ParseFormat returns the Format named by s. An empty name means lines.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatLines:
		return FormatLines, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want lines, json or yaml)", ErrUnknownFormat, s)
	}
}

// Raw is one input record before resolution.
type Raw struct {
	// Index is the position of the record in the input, counting from 0.
	Index int
	// Text is the record as it is written back on selection. Structured
	// records hold compact JSON.
	Text string
	// Structured is set for JSON and YAML records, which labels and previews
	// are queried from.
	Structured bool
}

// Read splits r into records according to format.
func Read(ctx context.Context, r io.Reader, format Format) ([]Raw, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "read").
		Str("format", string(format)).
		Msg("reading input records")

	var (
		raws []Raw
		err  error
	)
	switch format {
	case FormatLines, "":
		raws, err = readLines(ctx, r, false)
	case FormatJSON:
		raws, err = readLines(ctx, r, true)
	case FormatYAML:
		raws, err = readYAML(ctx, r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("operation", "read").
			Err(err).
			Msg("failed to read input")
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("record_count", len(raws)).
		Msg("input read successfully")
	return raws, nil
}

func readLines(ctx context.Context, r io.Reader, structured bool) ([]Raw, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	var raws []Raw
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if structured {
			if !gjson.Valid(line) {
				return nil, fmt.Errorf("line %d: %w: not valid JSON", lineNo, ErrInvalidRecord)
			}
			line = string(pretty.Ugly([]byte(line)))
		}
		raws = append(raws, Raw{Index: len(raws), Text: line, Structured: structured})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return raws, nil
}

// readYAML reads a stream of documents. A stream holding exactly one
// sequence yields one record per element.
func readYAML(ctx context.Context, r io.Reader) ([]Raw, error) {
	dec := yaml.NewDecoder(r)

	var docs []any
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w: %w", len(docs)+1, ErrInvalidRecord, err)
		}
		docs = append(docs, doc)
	}

	if len(docs) == 1 {
		if seq, ok := docs[0].([]any); ok {
			docs = seq
		}
	}

	raws := make([]Raw, 0, len(docs))
	for i, doc := range docs {
		data, err := json.Marshal(jsonCompatible(doc))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w: %w", i, ErrInvalidRecord, err)
		}
		raws = append(raws, Raw{Index: i, Text: string(data), Structured: true})
	}
	return raws, nil
}

// jsonCompatible rewrites maps with non-string keys, which YAML allows and
// JSON does not.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = jsonCompatible(item)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, item := range t {
			m[fmt.Sprint(k)] = jsonCompatible(item)
		}
		return m
	case []any:
		for i, item := range t {
			t[i] = jsonCompatible(item)
		}
		return t
	default:
		return v
	}
}
