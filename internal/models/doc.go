// Package models defines the tour feed's data types and persistence interfaces.
//
// The package contains two categories of types:
//
// 1. Transient values built fresh on every fetch and never retained:
//   - [Record] : One CSV data line keyed by lower-cased header name
//   - [Show] : A display-ready tour date projected from a Record
//   - [ShowList] : The JSON envelope served to the site
//
// 2. Persistent entities backed by the optional SQLite store:
//   - [FetchLog] : The outcome of one attempt to read the published sheet
//
// Persistent entities implement the [Model] interface providing ID, timestamps and validation.
// The [Repository] interface defines the data access operations used for them.
package models
