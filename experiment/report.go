// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport prints the sampled flows as one tuple per slot, one column
// per series, followed by each series' average:
//
//	Flow Analysis:
//	(random,greedy)
//	(12,12)
//	...
//	random average flow: 10.4
func WriteReport(w io.Writer, series []Series) error {
	if len(series) == 0 {
		return nil
	}
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Policy
	}

	var b strings.Builder
	b.WriteString("Flow Analysis:\n")
	fmt.Fprintf(&b, "(%s)\n", strings.Join(names, ","))

	slots := 0
	for _, s := range series {
		slots = max(slots, len(s.Samples))
	}
	row := make([]string, len(series))
	for k := 0; k < slots; k++ {
		for i, s := range series {
			if k < len(s.Samples) {
				row[i] = fmt.Sprint(s.Samples[k])
			} else {
				row[i] = "-"
			}
		}
		fmt.Fprintf(&b, "(%s)\n", strings.Join(row, ","))
	}
	for _, s := range series {
		fmt.Fprintf(&b, "%s average flow: %g (ticks %d, repairs %d)\n", s.Policy, s.Average, s.Ticks, s.Repairs)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
