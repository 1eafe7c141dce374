// Package table exports frames as dense labeled tables: an aligned text
// rendering for terminals and CSV for spreadsheets and dataframe libraries.
//
// Densification costs O(rows·cols) memory; it is meant for inspection and
// export of frames small enough to look at.
package table
