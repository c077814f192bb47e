// builtins_datetime.go
//
// Date/time built-ins (§4.6). Per the catalogue, timestamps are milliseconds
// since the Unix epoch as a plain number (UTC), so date arithmetic is
// ordinary numeric arithmetic and every date/time built-in takes and
// returns a Value that toNumber and formatNumber already understand.
package kodiscript

import (
	"strings"
	"time"
)

func registerDateTimeBuiltins(register func(string, BuiltinFunc)) {
	register("now", func(args []Value, _ Applier) (Value, error) {
		return Number(float64(timeNow().UTC().UnixMilli())), nil
	})
	register("date", func(args []Value, _ Applier) (Value, error) {
		y := int(toNumber(arg(args, 0)))
		m := int(toNumber(arg(args, 1)))
		d := int(toNumber(arg(args, 2)))
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		return Number(float64(t.UnixMilli())), nil
	})
	register("time", func(args []Value, _ Applier) (Value, error) {
		h := int(toNumber(arg(args, 0)))
		mi := int(toNumber(arg(args, 1)))
		s := int(toNumber(arg(args, 2)))
		return Number(float64((h*3600 + mi*60 + s) * 1000)), nil
	})
	register("datetime", func(args []Value, _ Applier) (Value, error) {
		y := int(toNumber(arg(args, 0)))
		mo := int(toNumber(arg(args, 1)))
		d := int(toNumber(arg(args, 2)))
		h := int(toNumber(arg(args, 3)))
		mi := int(toNumber(arg(args, 4)))
		s := int(toNumber(arg(args, 5)))
		t := time.Date(y, time.Month(mo), d, h, mi, s, 0, time.UTC)
		return Number(float64(t.UnixMilli())), nil
	})
	register("timestamp", func(args []Value, _ Applier) (Value, error) {
		if len(args) == 0 {
			return Number(float64(timeNow().UTC().UnixMilli())), nil
		}
		s := Stringify(arg(args, 0))
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return Null, runtimeErrorf("invalid timestamp string: %s", s)
		}
		return Number(float64(t.UnixMilli())), nil
	})
	register("formatDate", func(args []Value, _ Applier) (Value, error) {
		t := tsToTime(toNumber(arg(args, 0)))
		layout := "YYYY-MM-DD HH:mm:ss"
		if len(args) > 1 {
			layout = Stringify(args[1])
		}
		return Str(formatDateLayout(t, layout)), nil
	})

	component := func(name string, extract func(time.Time) int) {
		register(name, func(args []Value, _ Applier) (Value, error) {
			ts := timeNow().UTC().UnixMilli()
			if len(args) > 0 {
				ts = int64(toNumber(args[0]))
			}
			return Number(float64(extract(tsToTime(float64(ts))))), nil
		})
	}
	component("year", func(t time.Time) int { return t.Year() })
	component("month", func(t time.Time) int { return int(t.Month()) })
	component("day", func(t time.Time) int { return t.Day() })
	component("hour", func(t time.Time) int { return t.Hour() })
	component("minute", func(t time.Time) int { return t.Minute() })
	component("second", func(t time.Time) int { return t.Second() })
	component("dayOfWeek", func(t time.Time) int { return int(t.Weekday()) })

	register("addDays", func(args []Value, _ Applier) (Value, error) {
		t := tsToTime(toNumber(arg(args, 0)))
		return Number(float64(t.AddDate(0, 0, int(toNumber(arg(args, 1)))).UnixMilli())), nil
	})
	register("addHours", func(args []Value, _ Applier) (Value, error) {
		t := tsToTime(toNumber(arg(args, 0)))
		return Number(float64(t.Add(time.Duration(toNumber(arg(args, 1))) * time.Hour).UnixMilli())), nil
	})
	register("diffDays", func(args []Value, _ Applier) (Value, error) {
		a := tsToTime(toNumber(arg(args, 0)))
		b := tsToTime(toNumber(arg(args, 1)))
		return Number(a.Sub(b).Hours() / 24), nil
	})
}

func tsToTime(ts float64) time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

// formatDateLayout translates a small set of common date tokens
// (YYYY, MM, DD, HH, mm, ss) into Go's reference-time layout and formats t.
func formatDateLayout(t time.Time, pattern string) string {
	replacer := strings.NewReplacer(
		"YYYY", "2006",
		"MM", "01",
		"DD", "02",
		"HH", "15",
		"mm", "04",
		"ss", "05",
	)
	return t.Format(replacer.Replace(pattern))
}
