// Package common holds sentinel errors shared across the pipeline. Callers
// match them with errors.Is; messages carry upstream detail via wrapping.
package common

import "errors"

var (
	// Input never reached the network.
	ErrInvalidInput = errors.New("invalid video url")

	// Resolution errors.
	ErrResolutionFailed = errors.New("failed to fetch video information")
	ErrNoDirectURL      = errors.New("no direct url available")

	// Download errors.
	ErrDownloadFailed = errors.New("download failed")

	// Storage errors. ErrPermissionRequired is recoverable: the caller is
	// expected to run a grant flow and resume, not to retry blindly.
	ErrPermissionRequired = errors.New("storage permission required")
	ErrCommitFailed       = errors.New("failed to save video")
	ErrDeleteFailed       = errors.New("failed to delete video")
)
