// Package date provides the date microverse, which reads the clock and
// formats times.
//
//	microverse "date" :<
//		now()
//		strftime()
//	>:
package date

import (
	"math"
	"time"

	"github.com/zephyrtronium/schwift"

	"gitlab.com/variadico/lctime"
)

// start is the time the microverse was linked, for clock.
var start = time.Now()

func init() {
	schwift.RegisterModule(schwift.NewModule("date", map[string]schwift.NativeFunc{
		"now":      now,
		"clock":    clock,
		"strftime": strftime,
	}))
}

// now is a date function.
//
// now returns the current time as a float number of seconds since the Unix
// epoch.
func now(args []schwift.Value) (schwift.Value, error) {
	if err := schwift.CheckArgs("now", args, 0); err != nil {
		return nil, err
	}
	t := time.Now()
	return schwift.Float(float64(t.UnixNano()) / 1e9), nil
}

// clock is a date function.
//
// clock returns the number of seconds since the interpreter started as a
// float.
func clock(args []schwift.Value) (schwift.Value, error) {
	if err := schwift.CheckArgs("clock", args, 0); err != nil {
		return nil, err
	}
	return schwift.Float(time.Since(start).Seconds()), nil
}

// strftime is a date function.
//
// strftime(format, seconds) formats a time given in seconds since the Unix
// epoch, as an int or float, using C strftime directives. Times are in UTC.
// See https://godoc.org/github.com/variadico/lctime for the full list of
// supported directives.
func strftime(args []schwift.Value) (schwift.Value, error) {
	if err := schwift.CheckArgs("strftime", args, 2); err != nil {
		return nil, err
	}
	format, err := schwift.AsStr(args[0])
	if err != nil {
		return nil, err
	}
	secs, err := schwift.AsFloat(args[1])
	if err != nil {
		return nil, err
	}
	whole, frac := math.Modf(secs)
	t := time.Unix(int64(whole), int64(frac*1e9)).UTC()
	return schwift.Str(lctime.Strftime(format, t)), nil
}
