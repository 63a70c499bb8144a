package ingest

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/pickr/internal/logging"
)

// PrettyPath as a preview path shows the whole record, indented.
const PrettyPath = "@pretty"

// Spec selects the label and preview of structured records.
type Spec struct {
	// LabelPath is a gjson path; empty uses the whole record.
	LabelPath string
	// PreviewPath is a gjson path; empty means no preview.
	PreviewPath string
}

// Record is a resolved item ready for the picker.
type Record struct {
	Index   int
	Raw     string
	Label   string
	Preview string

	// Structured is copied from the Raw the record was resolved from.
	Structured bool
}

// Resolve computes the label and preview of every record. The result has the
// same order as raws.
func Resolve(ctx context.Context, raws []Raw, spec Spec) ([]Record, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "resolve").
		Str("label_path", spec.LabelPath).
		Str("preview_path", spec.PreviewPath).
		Int("record_count", len(raws)).
		Msg("resolving records")

	records := make([]Record, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range raws {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = resolveOne(raws[i], spec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving records: %w", err)
	}
	return records, nil
}

func resolveOne(raw Raw, spec Spec) Record {
	return Record{
		Index:   raw.Index,
		Raw:     raw.Text,
		Label:   label(raw, spec.LabelPath),
		Preview: preview(raw, spec.PreviewPath),

		Structured: raw.Structured,
	}
}

func label(raw Raw, path string) string {
	if raw.Text == "" || (raw.Structured && raw.Text == "null") {
		return fmt.Sprintf("(null #%d)", raw.Index)
	}
	if !raw.Structured || path == "" {
		return oneLine(raw.Text)
	}
	res := gjson.Get(raw.Text, path)
	if !res.Exists() || res.Type == gjson.Null {
		return oneLine(raw.Text)
	}
	if res.Type == gjson.String {
		return oneLine(res.Str)
	}
	return oneLine(res.Raw)
}

func preview(raw Raw, path string) string {
	switch {
	case path == "":
		return ""
	case !raw.Structured:
		return raw.Text
	case path == PrettyPath:
		return strings.TrimRight(string(pretty.Pretty([]byte(raw.Text))), "\n")
	}

	res := gjson.Get(raw.Text, path)
	if !res.Exists() {
		return fmt.Sprintf("(no value at %s)", path)
	}
	if res.Type == gjson.String {
		return res.Str
	}
	return strings.TrimRight(string(pretty.Pretty([]byte(res.Raw))), "\n")
}

// oneLine folds line breaks so a label fits a single row.
func oneLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
