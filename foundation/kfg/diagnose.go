package kfg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/felpofo/kfg/foundation/kfg/parser"
)

// Diagnose renders err against the source it came from. Parse errors with a
// position get the offending line and a caret marker:
//
//	line 2, character 4: invalid symbol "nope"
//	  a = nope
//	      ^^^^
//
// Other errors are returned as their message.
func Diagnose(src []byte, err error) string {
	if err == nil {
		return ""
	}

	var perr *parser.Error
	if !errors.As(err, &perr) {
		return err.Error()
	}

	pos, ok := perr.Position()
	if !ok {
		return perr.Description()
	}

	header := fmt.Sprintf("line %d, character %d: %s", pos.Line, pos.Character, perr.Description())

	lines := strings.Split(string(src), "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return header
	}
	line := strings.TrimSuffix(lines[pos.Line-1], "\r")

	width := pos.Length
	if width < 1 {
		width = 1
	}
	column := pos.Character
	if column > len(line) {
		column = len(line)
	}

	// keep tabs so the caret lines up with the source
	var pad strings.Builder
	for i := 0; i < column; i++ {
		if line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}

	return fmt.Sprintf("%s\n  %s\n  %s%s", header, line, pad.String(), strings.Repeat("^", width))
}
