package discovery

import (
	"fmt"
	"regexp"
	"strings"

	"ftgen/internal/domain"
)

// Classifier recognises tagged test class lines and extracts module and class name
type Classifier struct {
	pattern *regexp.Regexp
}

// NewClassifier creates a Classifier for the given @Tag value
func NewClassifier(tag string) *Classifier {
	// Matches:
	// - moduleA/src/test/java/com/acme/OneTest.java:@Tag("functional")
	// - a/b/src/test/scala/org/acme/TwoTest.scala:@Tag("functional")
	// The module is everything before the last /src/test/<lang>/ segment.
	// Trailing whitespace (including \r\n) is tolerated, anything else is not.
	pattern := regexp.MustCompile(
		`^(.*)/src/test/(?:java|scala)/(.*)\.(?:java|scala):` +
			regexp.QuoteMeta(TagMarker(tag)) + `\s*$`,
	)
	return &Classifier{pattern: pattern}
}

// TagMarker returns the annotation text for a tag, e.g. @Tag("functional")
func TagMarker(tag string) string {
	return fmt.Sprintf("@Tag(%q)", tag)
}

// Classify matches a single line. It reports false for lines that are not tagged test classes.
func (c *Classifier) Classify(line string) (domain.TestClass, bool) {
	match := c.pattern.FindStringSubmatch(line)
	if match == nil {
		return domain.TestClass{}, false
	}

	return domain.TestClass{
		Module:    match[1],
		ClassName: strings.ReplaceAll(match[2], "/", "."),
	}, true
}
