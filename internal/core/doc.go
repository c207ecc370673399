// Package core runs batches of filings through the normalization engine.
//
// This package owns everything around the engine: picking filings up from
// the import directory, decoding them, opening the sinks of a run, moving
// each file to processed/ or review/ and reporting the result. It is used by
// the CLI and the HTTP server without modification.
//
// # Batch Runs
//
// A run is single-threaded and processes files in name order:
//
//  1. [Service.Run] (or [Service.StartRun] in the background) takes the run
//     limiter slot so two runs never overlap
//  2. a [sink.Registry] is opened for the run and closed on every exit path
//  3. each filing is decoded with [WrapForStreaming] and handed to the engine
//     between BeginFile and CommitFile/AbortFile
//  4. [Lifecycle.Move] relocates the file according to its outcome
//
// A failure inside one file never stops the batch: it becomes a rejected
// [FileResult] and the file goes to review. Cancelling the context stops the
// batch after rolling back the current file, which stays in the import dir.
//
// # Error Handling
//
// Technical errors are mapped to operator-facing messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - HDR001-HDR004: Header rejections
//   - DB001-DB007: Database errors (already imported, conversions, connections)
//   - FILE001-FILE004: File errors (size, encoding, access)
//   - RUN001-RUN004: Run errors (busy, cancelled, timeout, not found)
//
// # Dry Runs
//
// [Inspect] shows how a single filing would be routed without touching any
// sink or moving the file.
package core
