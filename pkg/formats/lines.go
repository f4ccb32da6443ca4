package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// errStopLines ends readLines early without an error.
var errStopLines = errors.New("stop")

// readLines calls fn for every line of r with its one-based number.
// Lines have no length limit; the trailing newline is passed through.
func readLines(r io.Reader, fn func(lineNo int, line string) error) error {
	br := bufio.NewReaderSize(r, 64*1024)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			if ferr := fn(lineNo, line); ferr != nil {
				if errors.Is(ferr, errStopLines) {
					return nil
				}
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading line %d: %w", lineNo+1, err)
		}
	}
}
