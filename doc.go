// Package journal provides the types and functions of a personal field
// journal, where a student teacher records dated reflections, tags them,
// links them to competencies and professional goals, and later reviews
// statistics and exports a portfolio.
//
// The core functionalities include:
//   - Data Model: entries, goals and the fixed vocabulary of competencies and
//     bibliography references entries refer to.
//   - Aggregation: pure functions deriving statistics (tag frequency,
//     competency usage, monthly counts, goal progress) from a snapshot of the
//     journal. Goal progress is never stored independently, it is always
//     recomputed from the entries.
//   - Data Persistence: encoding and decoding of entries and goals to and
//     from human-readable JSONL, and import of browser storage backups.
//
// Charts are computed by the chart package and portfolios are assembled by
// the export package. This package serves as the foundational logic for the
// `fj` command-line tool.
package journal
