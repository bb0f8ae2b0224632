package app

import (
	"bufio"
	"io"

	"vnfe/pkg/ime"
)

// TranslateLine types every rune of line through c and returns the result.
// Pending text in c is discarded first.
func TranslateLine(c *ime.Composer, line string) string {
	c.Reset()
	for _, r := range line {
		c.TypeKey(r)
	}
	return c.Enter()
}

// TranslateLines converts r line by line into w.
func TranslateLines(c *ime.Composer, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	for scanner.Scan() {
		if _, err := writer.WriteString(TranslateLine(c, scanner.Text())); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}
