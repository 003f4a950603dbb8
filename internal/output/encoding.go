// internal/output/encoding.go
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// newEncodedWriter wraps w so that text is written in the named character
// encoding. An empty name, "utf-8" or "utf8" returns w unchanged with a nil
// closer. Otherwise the returned closer must be closed to flush the encoder.
func newEncodedWriter(w io.Writer, name string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return w, nil, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported output encoding %q: %w", name, err)
	}

	tw := transform.NewWriter(w, enc.NewEncoder())
	return tw, tw, nil
}
