package output_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/oldmonad/readerr/pkg/output"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = false
}

func render(outcomes []output.Outcome) string {
	var buf bytes.Buffer
	output.PrintTable(&buf, outcomes)
	return buf.String()
}

func TestPrintTableEmptyOutcomes(t *testing.T) {
	out := render(nil)

	expectedHeader := "STRATEGY\tRESULT\tERROR TYPE\tKIND\tCAUSE KEPT"
	assert.True(t, strings.HasPrefix(out, expectedHeader), "Table should start with header")
	assert.Equal(t, 1, strings.Count(out, "\n"), "Only header should be present")
}

func TestPrintTableSuccess(t *testing.T) {
	out := render([]output.Outcome{{Strategy: "tagged", Succeeded: true}})

	pattern := regexp.MustCompile(`tagged\s+\x1b\[32mok\x1b\[0m\s+-\s+-\s+-`)
	assert.Regexp(t, pattern, out)
}

func TestPrintTableFailures(t *testing.T) {
	out := render([]output.Outcome{
		{Strategy: "contextual", ErrorType: "*contextual.Chain", Kind: "not found", CauseKept: true},
		{Strategy: "erased", ErrorType: "*erased.KindError", Kind: "not found", CauseKept: false},
	})

	assert.Regexp(t,
		regexp.MustCompile(`contextual\s+\x1b\[33mfailed\x1b\[0m\s+\*contextual\.Chain\s+not found\s+\x1b\[32myes\x1b\[0m`),
		out)
	assert.Regexp(t,
		regexp.MustCompile(`erased\s+\x1b\[33mfailed\x1b\[0m\s+\*erased\.KindError\s+not found\s+\x1b\[31mno\x1b\[0m`),
		out)
	assert.True(t, strings.Index(out, "contextual") < strings.Index(out, "erased"), "rows keep input order")
}

func TestPrintTableMissingFields(t *testing.T) {
	out := render([]output.Outcome{{Strategy: "tagged"}})

	assert.Regexp(t, regexp.MustCompile(`tagged\s+\x1b\[33mfailed\x1b\[0m\s+-\s+-\s+\x1b\[31mno\x1b\[0m`), out)
}
