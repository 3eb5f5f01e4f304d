// Package export renders the lookup catalog for front-end builds and for
// operators diffing catalog revisions.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"tms/internal/lookup"
	dErrors "tms/pkg/domain-errors"
)

// Format selects the rendering.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat constructs a Format from a flag or environment value.
//
// Errors: CodeInvalidInput when s is not a supported format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported format %q", s))
	}
}

// Write renders c to w.
func Write(w io.Writer, c lookup.CatalogView, f Format) error {
	var err error
	switch f {
	case FormatJSON:
		err = writeJSON(w, c)
	case FormatText:
		err = writeText(w, c)
	default:
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported format %q", f))
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write catalog")
}

func writeJSON(w io.Writer, c lookup.CatalogView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

func writeText(w io.Writer, c lookup.CatalogView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SET\tKEY\tTITLE\tVALUE")
	for _, o := range c.SearchTypes.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", lookup.SetSearchTypes, o.Key, o.Title, o.Value)
	}
	for _, o := range c.Roles.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", lookup.SetRoles, o.Key, o.Title, o.Value)
	}
	for _, o := range c.RequestStatuses.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", lookup.SetRequestStatuses, o.Key, o.Title, o.Value)
	}
	for i, m := range c.Ministries.All() {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", lookup.SetMinistries, i, m, m)
	}
	return tw.Flush()
}
