package date

import (
	"fmt"
	"math"
	"strings"
	"testing"
	gotime "time"

	startime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarktest"
)

func call(t *testing.T, name string, args ...starlark.Value) (starlark.Value, error) {
	t.Helper()
	thread := &starlark.Thread{}
	return starlark.Call(thread, Module.Members[name], starlark.Tuple(args), nil)
}

func TestParseRFC2822Builtin(t *testing.T) {
	res, err := call(t, "parse_rfc2822", starlark.String("Tue, 01 Nov 2016 08:49:37 GMT"))
	if err != nil {
		t.Fatal(err)
	}
	got := gotime.Time(res.(startime.Time))
	want := gotime.Date(2016, gotime.November, 1, 8, 49, 37, 0, gotime.UTC)
	if !got.Equal(want) {
		t.Errorf("parse_rfc2822 = %v, want %v", got, want)
	}
}

func TestParseISO8601Builtin(t *testing.T) {
	res, err := call(t, "parse_iso8601", starlark.String("2016-11-01T08:49:37+05:00"))
	if err != nil {
		t.Fatal(err)
	}
	got := gotime.Time(res.(startime.Time))
	want := gotime.Date(2016, gotime.November, 1, 3, 49, 37, 0, gotime.UTC)
	if !got.Equal(want) {
		t.Errorf("parse_iso8601 = %v, want %v", got, want)
	}
}

func TestParseErrorPropagates(t *testing.T) {
	for _, name := range []string{"parse_rfc2822", "parse_iso8601"} {
		if res, err := call(t, name, starlark.String("not a date")); err == nil {
			t.Errorf("%s(\"not a date\") = %v, want error", name, res)
		}
	}
}

func TestClockAngleBuiltin(t *testing.T) {
	const eps = 1e-9
	for _, test := range []struct {
		hour int
		want float64
	}{
		{0, 0},
		{3, math.Pi / 2},
		{6, math.Pi},
		{9, math.Pi / 2},
	} {
		arg := startime.Time(gotime.Date(2021, gotime.April, 2, test.hour, 0, 0, 0, gotime.UTC))
		res, err := call(t, "clock_angle", arg)
		if err != nil {
			t.Fatal(err)
		}
		if got := float64(res.(starlark.Float)); math.Abs(got-test.want) > eps {
			t.Errorf("clock_angle at %02d:00 = %v, want %v", test.hour, got, test.want)
		}
	}
}

func TestFormatTimeSpanBuiltin(t *testing.T) {
	start := startime.Time(gotime.Date(2021, gotime.April, 2, 10, 0, 0, 0, gotime.UTC))
	end := startime.Time(gotime.Date(2021, gotime.April, 2, 15, 20, 10, 453e6, gotime.UTC))
	res, err := call(t, "format_time_span", start, end)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(res.(starlark.String)), "05:20:10.453"; got != want {
		t.Errorf("format_time_span = %q, want %q", got, want)
	}
}

func TestTimeArgumentTypeError(t *testing.T) {
	for _, name := range []string{"is_leap_year", "format_rfc2822", "clock_angle"} {
		_, err := call(t, name, starlark.String("2016-11-01"))
		if err == nil || !strings.Contains(err.Error(), "want time.time") {
			t.Errorf("%s(string): error = %v, want type error", name, err)
		}
	}
}

func TestScriptFile(t *testing.T) {
	thread := &starlark.Thread{Load: load}
	starlarktest.SetReporter(thread, t)
	predeclared := starlark.StringDict{
		"date": Module,
		"time": startime.Module,
	}
	if _, err := starlark.ExecFile(thread, "testdata/date.star", nil, predeclared); err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			t.Fatal(evalErr.Backtrace())
		}
		t.Fatal(err)
	}
}

// load implements the 'load' operation for the test script, exposing
// only the starlarktest assert module.
func load(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	if module == "assert.star" {
		return starlarktest.LoadAssertModule()
	}
	return nil, fmt.Errorf("load of %q is not supported in tests", module)
}
