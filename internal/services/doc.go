// Package services implements the tour data ingestion pipeline.
//
// # Pipeline
//
// [SheetService.FetchShows] performs one GET against the published sheet with caching disabled,
// parses the body with [ParseCSV], and shapes dated rows into shows with [ToShows].
// [SheetService.Load] wraps the result in the envelope served by the tour endpoint.
//
// # CSV Format
//
// The export is split on newlines and commas without quote handling. Headers are lower-cased.
// Rows shorter than the header are padded, longer rows are truncated, blank rows are skipped.
//
// # Ticket Providers
//
// Provider columns are configuration rather than a fixed pair, since the sheet has used both
// "bublix" and "biletix". Only columns present in the sheet produce links.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrFetchFailed] : transport failure or non-2xx status
//   - [shared.ErrReadFailed] : the body could not be read
//
// A degenerate sheet (header only, or empty) is not an error: it yields zero shows.
package services
