package discovery

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"ftgen/internal/domain"
)

// Reader reads tagged test lines from a stream
type Reader struct {
	classifier *Classifier
}

// NewReader creates a new Reader
func NewReader(classifier *Classifier) *Reader {
	return &Reader{classifier: classifier}
}

// Read consumes r to the end and returns the matching test classes in input order.
// Lines that do not match are skipped, whatever their length.
func (rd *Reader) Read(r io.Reader) ([]domain.TestClass, error) {
	var classes []domain.TestClass

	err := eachLine(r, func(line string) bool {
		if tc, ok := rd.classifier.Classify(line); ok {
			classes = append(classes, tc)
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return classes, nil
}

// ReadLines classifies already split lines, e.g. the output of Scanner.Scan
func (rd *Reader) ReadLines(lines []string) []domain.TestClass {
	var classes []domain.TestClass
	for _, line := range lines {
		if tc, ok := rd.classifier.Classify(line); ok {
			classes = append(classes, tc)
		}
	}
	return classes
}

// eachLine calls fn for every line of r without the trailing newline until fn returns false.
// Unlike bufio.Scanner there is no line length limit.
func eachLine(r io.Reader, fn func(line string) bool) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 && !fn(strings.TrimSuffix(line, "\n")) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
