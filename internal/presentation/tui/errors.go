package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/sigcast/pkg/domain"
)

// PrintError writes err to w. Literal errors show the input with a caret
// under the offending position:
//
//	error: malformed literal at offset 13: expected ')'
//	  [5](1,2,3,4,5]
//	               ^ expected ')'
func PrintError(w io.Writer, err error) {
	out := termenv.NewOutput(w)
	fmt.Fprintf(w, "%s %s\n", out.String("error:").Foreground(out.Color("#f87171")).Bold(), err)

	var litErr *domain.MalformedLiteralError
	if !errors.As(err, &litErr) || strings.ContainsAny(litErr.Input, "\n\r") {
		return
	}
	pos := min(litErr.Pos, len(litErr.Input))
	caret := out.String("^ expected " + litErr.Expected).Foreground(out.Color("#fbbf24"))
	fmt.Fprintf(w, "  %s\n  %s%s\n", litErr.Input, strings.Repeat(" ", pos), caret)
}
