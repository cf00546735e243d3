// Package negotiation implements proactive HTTP content negotiation as
// described by RFC 7231 section 5.3. It parses weighted Accept, Accept-Language,
// Accept-Encoding and Accept-Charset header values, matches them against a
// server-declared priority list per header family, and selects the best
// representation or reports that none is acceptable.
//
// Priority tables are built once at configuration time and are immutable
// afterwards, so a single Negotiation instance is safe for concurrent use
// across requests without locking.
package negotiation
