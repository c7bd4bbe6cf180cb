package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes to stderr, pretty-printing map and slice arguments so
// attribute bags stay readable in traces.
func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(args[i], "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", args[i])
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
