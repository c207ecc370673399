package core

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/JonMunkholm/fecparse/internal/schema"
)

// WriteJSON writes the run report as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteSummary writes a human-readable run summary.
func WriteSummary(w io.Writer, res *RunResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Run %s (%s): %s\n", res.RunID, res.Mode, res.Status)
	if res.Error != "" {
		fmt.Fprintf(tw, "Error:\t%s (Code: %s)\n", res.Error, res.Code)
	}
	fmt.Fprintf(tw, "Files:\t%d accepted, %d rejected\n", res.Accepted, res.Rejected)

	kinds := make([]string, 0, len(res.Counts))
	for k := range res.Counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(tw, "  %s\t%d\n", k, res.Counts[schema.Kind(k)])
	}
	if res.Diverted > 0 {
		fmt.Fprintf(tw, "Diverted to review:\t%d\n", res.Diverted)
	}

	for _, f := range res.Files {
		if f.Status == "accepted" {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", f.FileName, f.Status, f.Code, f.Detail)
	}
	return tw.Flush()
}
