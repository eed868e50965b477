package display

import (
	"fmt"
	"io"

	"github.com/backmassage/cyrlat/internal/term"
)

// PrintBanner writes the ASCII art banner to w, in magenta when colors are
// enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Paint(term.Magenta, `                 _       _
  ___ _   _ _ __| | __ _| |_
 / __| | | | '__| |/ _`+"`"+` | __|
| (__| |_| | |  | | (_| | |_
 \___|\__, |_|  |_|\__,_|\__|
      |___/`))
}
