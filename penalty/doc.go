// Package penalty estimates and applies length penalties that
// discourage degenerate segmentations.
//
// Without a penalty, many likelihood functions are maximized by
// trivially short or trivially long segments. Auto samples the data to
// calibrate a convex penalty curve with its minimum at half the data
// length, then wraps the raw oracle so penalized likelihood = raw
// likelihood − penalty(segment length).
package penalty
