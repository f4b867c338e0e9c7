// Package timestamp provides a leap second aware instant built on a fixed
// point offset.
//
// A Timestamp is a pair:
//
//  (since, leap)
//
// Where since is a continuous number of seconds from the epoch (fixed.Fixed)
// and leap counts the leap seconds accumulated at this instant. The flattened
// seconds since the epoch are since + leap.
//
// Leap Seconds
//
// An instant inside an inserted leap second holds the continuous clock back by
// one second and flags the leap:
//
//  23:59:59.5             = (S,     0)
//  23:59:60.5 (leap +0.5) = (S - 1, 1)
//
// So a calendar renderer reading CalendarSeconds sees the same whole second
// it saw before the leap, plus a leap count telling it to print second 60.
//
// Ordering
//
// Timestamps order by since first and leap second. Within the same continuous
// instant the timestamp carrying more leap seconds sorts later. Adding or
// subtracting a plain span moves since only.
package timestamp
