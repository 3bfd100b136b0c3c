// Package task defines the Task record and its validation rules. A Task
// is only ever produced by New or Apply, both of which validate the
// whole record, so a Task value in circulation is always well-formed.
package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aminrms/cli-task-manager/internal/calendar"
)

// Status is the task lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists the allowed status values.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the allowed statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// Priority is the task urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the allowed priority values.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the allowed priorities.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is one tracked entry. Date is stored in the canonical form of
// the calendar it was validated under. Duration keeps the user's
// normalized expression, not a numeric value.
type Task struct {
	ID          string
	Date        string
	Duration    string
	Name        string
	Description string
	Status      Status
	Priority    Priority
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Fields carries raw field values from user input into New.
type Fields struct {
	Date        string
	Duration    string
	Name        string
	Description string
	Status      string
	Priority    string
	Tags        []string
}

// New validates f under cal and returns a Task with a fresh ID. The
// first failing field is reported via *ValidationError. Empty status
// and priority take their defaults (completed, medium) before
// validation, matching the tracker's log-after-the-fact usage.
func New(f Fields, cal calendar.Calendar) (Task, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return Task{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	date, err := cal.Canonical(f.Date)
	if err != nil {
		return Task{}, &ValidationError{Field: "date", Reason: err.Error()}
	}

	status := Status(strings.TrimSpace(f.Status))
	if status == "" {
		status = StatusCompleted
	}
	if !status.Valid() {
		return Task{}, &ValidationError{Field: "status", Reason: "must be pending, in-progress or completed"}
	}

	priority := Priority(strings.TrimSpace(f.Priority))
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return Task{}, &ValidationError{Field: "priority", Reason: "must be low, medium or high"}
	}

	now := time.Now()
	return Task{
		ID:          uuid.NewString(),
		Date:        date,
		Duration:    NormalizeDuration(f.Duration),
		Name:        name,
		Description: strings.TrimSpace(f.Description),
		Status:      status,
		Priority:    priority,
		Tags:        normalizeTags(f.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Changes holds a partial update. Nil pointers leave the field alone;
// a nil Tags slice leaves tags alone (use an empty slice to clear).
type Changes struct {
	Date        *string
	Duration    *string
	Name        *string
	Description *string
	Status      *string
	Priority    *string
	Tags        []string
}

// Apply merges c into t and re-validates the merged record as a whole,
// so a half-updated task can never escape. ID and CreatedAt are
// preserved; UpdatedAt is refreshed.
func Apply(t Task, c Changes, cal calendar.Calendar) (Task, error) {
	f := Fields{
		Date:        t.Date,
		Duration:    t.Duration,
		Name:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Tags:        t.Tags,
	}
	if c.Date != nil {
		f.Date = *c.Date
	}
	if c.Duration != nil {
		f.Duration = *c.Duration
	}
	if c.Name != nil {
		f.Name = *c.Name
	}
	if c.Description != nil {
		f.Description = *c.Description
	}
	if c.Status != nil {
		f.Status = *c.Status
	}
	if c.Priority != nil {
		f.Priority = *c.Priority
	}
	if c.Tags != nil {
		f.Tags = c.Tags
	}

	merged, err := New(f, cal)
	if err != nil {
		return Task{}, err
	}
	merged.ID = t.ID
	merged.CreatedAt = t.CreatedAt
	merged.UpdatedAt = time.Now()
	return merged, nil
}

// MatchesDate reports whether the task falls on the given canonical date.
func (t Task) MatchesDate(date string) bool {
	return t.Date == date
}

// MatchesQuery reports whether query appears, case-insensitively, in
// the task name, description or any tag.
func (t Task) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// HasTag reports whether the task carries the given tag (case-insensitive).
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}

// TrackedMinutes parses the task's duration expression into minutes.
func (t Task) TrackedMinutes() (int, error) {
	return ParseDuration(t.Duration)
}

// normalizeTags trims, drops empties, and collapses duplicates while
// preserving first-appearance order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

// SplitTags parses the comma-joined tag form used in the CSV store and
// on the command line.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return normalizeTags(strings.Split(s, ","))
}

// JoinTags renders tags in the comma-joined storage form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
