// Package date is a Starlark module of date/time utility functions.
package date // import "go.dateutil.net/lib/date"

import (
	"fmt"
	gotime "time"

	startime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"go.dateutil.net/date"
)

// ModuleName defines the expected name for this Module when used in the
// starlark runtime.
const ModuleName = "date"

// Module date is a Starlark module of date/time utility functions.
// Time values are go.starlark.net/lib/time times, so results of this
// module compose with the stock time module.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"parse_rfc2822":  starlark.NewBuiltin("parse_rfc2822", parseRFC2822),
		"parse_iso8601":  starlark.NewBuiltin("parse_iso8601", parseISO8601),
		"format_rfc2822": starlark.NewBuiltin("format_rfc2822", formatRFC2822),

		"is_leap_year":     starlark.NewBuiltin("is_leap_year", isLeapYear),
		"format_time_span": starlark.NewBuiltin("format_time_span", formatTimeSpan),
		"clock_angle":      starlark.NewBuiltin("clock_angle", clockAngle),
	},
}

// LoadModule loads the date module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

func parseRFC2822(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x string
	if err := starlark.UnpackArgs("parse_rfc2822", args, kwargs, "x", &x); err != nil {
		return nil, err
	}
	t, err := date.ParseRFC2822(x)
	if err != nil {
		return nil, err
	}
	return startime.Time(t), nil
}

func parseISO8601(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x string
	if err := starlark.UnpackArgs("parse_iso8601", args, kwargs, "x", &x); err != nil {
		return nil, err
	}
	t, err := date.ParseISO8601(x)
	if err != nil {
		return nil, err
	}
	return startime.Time(t), nil
}

func formatRFC2822(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs("format_rfc2822", args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	t, err := unpackTime("format_rfc2822", v)
	if err != nil {
		return nil, err
	}
	return starlark.String(date.FormatRFC2822(t)), nil
}

func isLeapYear(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs("is_leap_year", args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	t, err := unpackTime("is_leap_year", v)
	if err != nil {
		return nil, err
	}
	return starlark.Bool(date.IsLeapYear(t)), nil
}

func formatTimeSpan(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var startV, endV starlark.Value
	if err := starlark.UnpackArgs("format_time_span", args, kwargs, "start", &startV, "end", &endV); err != nil {
		return nil, err
	}
	start, err := unpackTime("format_time_span", startV)
	if err != nil {
		return nil, err
	}
	end, err := unpackTime("format_time_span", endV)
	if err != nil {
		return nil, err
	}
	return starlark.String(date.FormatTimeSpan(start, end)), nil
}

func clockAngle(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs("clock_angle", args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	t, err := unpackTime("clock_angle", v)
	if err != nil {
		return nil, err
	}
	return starlark.Float(date.ClockAngle(t)), nil
}

func unpackTime(fnname string, v starlark.Value) (gotime.Time, error) {
	t, ok := v.(startime.Time)
	if !ok {
		return gotime.Time{}, fmt.Errorf("%s: got %s, want time.time", fnname, v.Type())
	}
	return gotime.Time(t), nil
}
