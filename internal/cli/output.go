package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// render writes v as indented JSON in json mode, otherwise the table text.
func (a *App) render(w io.Writer, v any, table func() string) error {
	if a.Output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprint(w, table())
	return err
}
