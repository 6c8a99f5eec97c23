package text_test

import (
	"testing"

	"github.com/zephyrtronium/schwift"
	_ "github.com/zephyrtronium/schwift/coreext/text" // side effects
	"github.com/zephyrtronium/schwift/testutils"
)

func TestRegister(t *testing.T) {
	testutils.CheckModule(t, "text", []string{"upper", "lower", "title", "normalize"})
}

const load = "microverse \"text\" :<\n upper()\n lower()\n title()\n normalize()\n>:\n"

func TestFunctions(t *testing.T) {
	cases := map[string]testutils.SourceTestCase{
		"upper": {
			Source: load + `x squanch upper("wubba lubba dub dub")`,
			Pass:   testutils.PassEqual("x", schwift.Str("WUBBA LUBBA DUB DUB")),
		},
		"lower": {
			Source: load + `x squanch lower("GET SCHWIFTY")`,
			Pass:   testutils.PassEqual("x", schwift.Str("get schwifty")),
		},
		"title": {
			Source: load + `x squanch title("pickle rick")`,
			Pass:   testutils.PassEqual("x", schwift.Str("Pickle Rick")),
		},
		"NFC": {
			Source: load + "x squanch normalize(\"é\", \"NFC\")",
			Pass:   testutils.PassEqual("x", schwift.Str("é")),
		},
		"NFD": {
			Source: load + "x squanch normalize(\"é\", \"NFD\")\nn squanch x squanch",
			Pass:   testutils.PassEqual("n", schwift.Int(2)),
		},
		"badForm": {
			Source: load + `x squanch normalize("a", "NFX")`,
			Pass:   testutils.PassFailure(),
		},
		"notString": {
			Source: load + `x squanch upper(1)`,
			Pass:   testutils.PassError(schwift.UnexpectedType),
		},
		"caught": {
			Source: load + "normal plan :<\n x squanch upper(1)\n>: plan for failure :<\n x squanch \"caught\"\n>:",
			Pass:   testutils.PassEqual("x", schwift.Str("caught")),
		},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}
