package date_test

import (
	"testing"

	"github.com/zephyrtronium/schwift"
	_ "github.com/zephyrtronium/schwift/coreext/date" // side effects
	"github.com/zephyrtronium/schwift/testutils"
)

func TestRegister(t *testing.T) {
	testutils.CheckModule(t, "date", []string{"now", "clock", "strftime"})
}

const load = "microverse \"date\" :<\n now()\n clock()\n strftime()\n>:\n"

func TestFunctions(t *testing.T) {
	cases := map[string]testutils.SourceTestCase{
		"strftimeEpoch": {
			Source: load + `x squanch strftime("%Y-%m-%d %H:%M:%S", 0)`,
			Pass:   testutils.PassEqual("x", schwift.Str("1970-01-01 00:00:00")),
		},
		"strftimeFloat": {
			Source: load + `x squanch strftime("%Y-%m-%d", 86400.5)`,
			Pass:   testutils.PassEqual("x", schwift.Str("1970-01-02")),
		},
		"strftimeNotString": {
			Source: load + `x squanch strftime(1, 0)`,
			Pass:   testutils.PassError(schwift.UnexpectedType),
		},
		"strftimeArity": {
			Source: load + `x squanch strftime("%Y")`,
			Pass:   testutils.PassError(schwift.InvalidArguments),
		},
		"now": {
			Source: load + `x squanch (now() more 1500000000)`,
			Pass:   testutils.PassEqual("x", schwift.Bool(true)),
		},
		"clock": {
			Source: load + `x squanch (clock() moresquanch 0)`,
			Pass:   testutils.PassEqual("x", schwift.Bool(true)),
		},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}
