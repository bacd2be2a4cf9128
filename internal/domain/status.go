package domain

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle stage of a task.
// The string value is the name stored in the backing file.
type Status string

const (
	StatusTodo       Status = "TODO"        // Created, not started
	StatusInProgress Status = "IN_PROGRESS" // Being worked on
	StatusDone       Status = "DONE"        // Finished
)

// AllStatuses returns all valid status values in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusInProgress,
		StatusDone,
	}
}

// ParseStatus parses a CLI keyword (todo, in-progress, done) or a stored
// status name into a Status. Matching is case-insensitive and accepts
// '-' and '_' interchangeably.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	status := Status(normalized)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrInvalidStatus, s, strings.Join(StatusKeywords(), ", "))
	}
	return status, nil
}

// StatusKeywords returns the CLI keywords for all statuses.
func StatusKeywords() []string {
	statuses := AllStatuses()
	keywords := make([]string, 0, len(statuses))
	for _, s := range statuses {
		keywords = append(keywords, s.Keyword())
	}
	return keywords
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Keyword returns the CLI keyword for the status.
func (s Status) Keyword() string {
	return strings.ToLower(strings.ReplaceAll(string(s), "_", "-"))
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}
