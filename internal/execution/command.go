package execution

import (
	"strconv"
	"strings"

	"github.com/alessio/shellescape"

	"ftgen/internal/domain"
)

// Flags passed to every generated invocation, in this order, around -pl
var (
	flagsBeforeModule = []string{"-DfailIfNoTests=false"}
	flagsAfterModule  = []string{"-DtrimStackTrace=false", "-DreuseForks=false", "-Dcheckstyle.skip=true"}
)

// CommandBuilder turns grouped test classes into maven test invocations
type CommandBuilder struct{}

// NewCommandBuilder creates a new CommandBuilder
func NewCommandBuilder() *CommandBuilder {
	return &CommandBuilder{}
}

// Args returns the argv of the maven invocation for one module.
// The fork count equals the number of classes so every class gets its own JVM.
func (b *CommandBuilder) Args(mt domain.ModuleTests) []string {
	args := []string{"mvn", "test"}
	args = append(args, flagsBeforeModule...)
	args = append(args, "-DforkCount="+strconv.Itoa(len(mt.Classes)))
	args = append(args, "-pl", mt.Module)
	args = append(args, flagsAfterModule...)
	args = append(args, "-Dtest="+strings.Join(mt.Classes, ","))
	return args
}

// Build returns the invocation as a single shell line.
// Arguments are quoted only when they hold characters a POSIX shell would interpret.
// Module paths and class names made of letters, digits and @%+=:,./-_ are written
// verbatim. Anything else, e.g. a space, ~ or *, is single-quoted, so such a
// module is written as -pl 'my module' rather than the raw path.
func (b *CommandBuilder) Build(mt domain.ModuleTests) string {
	return shellescape.QuoteCommand(b.Args(mt))
}
