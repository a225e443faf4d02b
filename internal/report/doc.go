// Package report generates the batch output artifacts: a styled XLSX
// spreadsheet for human review and a JSON file carrying the same records
// plus the feature vectors consumed by downstream statistical classifiers.
package report
