/*Package date defines date/time utility primitives for starlark, built on
the time primitives from go.starlark.net/lib/time.

  outline: date
    date defines date/time utility functions
    path: date
    functions:
      parse_rfc2822(string) time
        parse an RFC 2822 date string ("Tue, 01 Nov 2016 08:49:37 GMT")
      parse_iso8601(string) time
        parse an ISO 8601 date string ("2016-11-01T08:49:37Z")
      format_rfc2822(time) string
        format a time as an RFC 2822 date string, in UTC
      is_leap_year(time) bool
        report whether the time's year is a leap year
      format_time_span(start, end) string
        format the interval between two times as "HH:mm:ss.sss";
        hours do not roll over into days
      clock_angle(time) float
        the angle in radians between the hour and minute hands of a
        clock showing the time's UTC hour and minute, in [0, pi]
*/
package date
