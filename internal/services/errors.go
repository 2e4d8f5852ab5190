// Package services orchestrates the chat analytics pipeline.
//
// This file centralizes service-level error values so that handlers and the
// CLI can map them to stable codes. Parse failures surface as
// chatlog.ErrParse (check with errors.Is) rather than a services sentinel.
package services

import "errors"

var (
	// ErrEmptyExport is returned when the export body is empty or blank.
	ErrEmptyExport = errors.New("export is empty")

	// ErrExportTooLarge is returned when the export exceeds MaxExportBytes.
	ErrExportTooLarge = errors.New("export too large")

	// ErrUnknownTable is returned by Analysis.Table for unrecognized names.
	ErrUnknownTable = errors.New("unknown table")

	// ErrInvalidTopicCount is returned when the topic count is negative or
	// above MaxTopics.
	ErrInvalidTopicCount = errors.New("invalid topic count")

	// ErrInvalidTermCount is returned when the terms-per-topic count is
	// negative or above MaxTermsPerTopic.
	ErrInvalidTermCount = errors.New("invalid terms per topic")
)
