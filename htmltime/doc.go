// Package htmltime parses and formats "local date and time" strings as
// defined by the WHATWG HTML Living Standard's common microsyntaxes — the
// value format of <input type="datetime-local">.
//
// The package is designed to be:
//   - Strict (the fixed grammar is enforced byte-by-byte, no supersets)
//   - Precise on failure (typed errors carry field, offset, and bounds)
//   - Zone-less (the microsyntax has no time zone; conversion is explicit)
//   - Round-trippable (format then parse reproduces the identical value,
//     including fractional-second digit count)
//   - Pure (no state, no I/O; values are immutable once constructed)
//
// # Grammar
//
//	date  = 4DIGIT "-" 2DIGIT "-" 2DIGIT
//	time  = 2DIGIT ":" 2DIGIT [ ":" 2DIGIT [ "." 1*DIGIT ] ]
//	dt    = date ("T" | " ") time
//
// # Example
//
//	dt, err := htmltime.Parse("2023-12-31T23:59:59.250")
//	if err != nil {
//		var perr *htmltime.ParseError
//		if errors.As(err, &perr) && perr.Kind == htmltime.ErrInvalidDay {
//			// day out of range for the given year/month
//		}
//	}
//	fmt.Println(dt) // 2023-12-31T23:59:59.250
//
// Every Datetime, LocalDate, and LocalTime value is obtained through a
// validating parse or constructor, so a live value is always calendar- and
// clock-valid.
package htmltime
