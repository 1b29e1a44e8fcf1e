package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
//
// Not-found errors map to 404, business-rule violations to 400 and the
// report access error to 403. Anything else is treated as internal.
var (
	ErrUserNotFound    = errors.New("user missing or not registered")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")

	ErrTaskLimitReached      = errors.New("project task limit of 20 reached")
	ErrTaskReopen            = errors.New("cannot reopen a completed task")
	ErrProjectHasActiveTasks = errors.New("project still has pending or in-progress tasks")
	ErrUserOwnsProjects      = errors.New("user still owns projects")

	ErrReportForbidden = errors.New("only managers may access this report")
)
