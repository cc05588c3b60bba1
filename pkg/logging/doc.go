// Package logging provides a minimal logging facade for this module's
// command-line and example tooling.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. The core array and provenance packages never log; this
// facade exists for the surrounding tooling, which reports program structure
// (party names, input names, array lengths) but must never emit bound input
// values. Use Redacted for any attribute that would otherwise carry one:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "array built",
//	    "party", party.Name,
//	    "len", arr.Len(),
//	    logging.Redacted("values"),
//	)
package logging
