package model

// ItemStatus represents the status of a queued reel item
type ItemStatus string

const (
	// StatusPending means the item is queued but not started
	StatusPending ItemStatus = "Pending"

	// StatusDownloading means the item is being processed
	StatusDownloading ItemStatus = "Downloading"

	// StatusCompleted means the item finished successfully
	StatusCompleted ItemStatus = "Completed"

	// StatusError means the item failed with an error
	StatusError ItemStatus = "Error"
)

// String returns the string representation of ItemStatus
func (is ItemStatus) String() string {
	return string(is)
}

// IsActive returns true if the item is currently being processed
func (is ItemStatus) IsActive() bool {
	return is == StatusDownloading
}

// IsFinished returns true if the item is in a terminal state (completed or error)
func (is ItemStatus) IsFinished() bool {
	return is == StatusCompleted || is == StatusError
}
