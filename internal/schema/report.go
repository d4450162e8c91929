package schema

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteReport writes a plain-text summary of the inferred schemas: one
// block per classname in first-seen order, fields in first-seen order,
// with the widened kind, the required flag and the coverage count.
func WriteReport(w io.Writer, set *SchemaSet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, class := range set.Classes {
		if i > 0 {
			fmt.Fprintln(tw)
		}

		fmt.Fprintf(tw, "%s (%s)\n", class.Classname, instancesLabel(class.Instances))

		for _, field := range class.Fields {
			presence := "optional"
			if field.Required {
				presence = "required"
			}

			fmt.Fprintf(tw, "  %s\t%s\t%s\t%d/%d\n",
				field.Name, field.Type.Name(), presence, field.Seen, class.Instances)
		}

		// Flush per class so columns align within a block, not across the
		// whole report.
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	return nil
}

func instancesLabel(n int) string {
	if n == 1 {
		return "1 instance"
	}

	return fmt.Sprintf("%d instances", n)
}
