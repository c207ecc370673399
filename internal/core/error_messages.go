// # Error Codes Reference
//
// This file defines operator-facing error messages with codes for support
// reference. Run reports and the HTTP API carry the code next to the
// technical error so a failed file can be diagnosed from the report alone.
//
// Error codes are grouped by category:
//
// # Header Errors (HDR001-HDR099)
//
//	HDR001 - Invalid header: First line is not an HDR/FEC header
//	HDR002 - Unsupported version: Header version is not 6.4, 7.0 or 8.0
//	HDR003 - Unsupported form: Form type is not F3, F3P or F3X
//	HDR004 - Header width: Header fields do not fit the form layout
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Already imported: The image ID is already in the database
//	DB002 - Invalid value: A date or amount could not be converted
//	DB003 - Connection refused: Unable to connect to database
//	DB004 - Connection reset: Database connection was interrupted
//	DB005 - Timeout: Database operation timed out
//	DB006 - Deadlock: Database was busy with conflicting operations
//	DB007 - Duplicate key: A row with this key already exists
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: Filing exceeds the configured size limit
//	FILE002 - Encoding: Source encoding is not supported
//	FILE003 - Not found: File or directory does not exist
//	FILE004 - Permission: File or directory is not accessible
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - Run in progress: Another batch run is active
//	RUN002 - Run cancelled: The run was cancelled before it finished
//	RUN003 - Run timeout: The run exceeded its time limit
//	RUN004 - Run not found: No run with this ID is known
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//
// # Matching
//
// Sentinel errors are matched first with errors.Is. Errors from drivers and
// the OS that carry no sentinel are then matched case-insensitively on their
// text. The first match wins.

package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/sink"
)

// UserMessage provides operator-facing error information with guidance.
type UserMessage struct {
	Message string `json:"message"` // What happened
	Action  string `json:"action"`  // What to do about it
	Code    string `json:"code"`    // Error code for support reference
}

// errorTarget maps a sentinel error to its message.
type errorTarget struct {
	target error
	msg    UserMessage
}

// errorPattern defines a pattern to match and its corresponding message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorTargets = []errorTarget{
	{filing.ErrInvalidHeaderSignature, UserMessage{
		Message: "First line is not an HDR/FEC header",
		Action:  "Check that the file is an electronic filing",
		Code:    "HDR001",
	}},
	{filing.ErrUnsupportedVersion, UserMessage{
		Message: "Header version is not supported",
		Action:  "Only versions 6.4, 7.0 and 8.0 are processed",
		Code:    "HDR002",
	}},
	{filing.ErrUnsupportedFormType, UserMessage{
		Message: "Form type is not supported",
		Action:  "Only F3, F3P and F3X filings are processed",
		Code:    "HDR003",
	}},
	{filing.ErrHeaderWidth, UserMessage{
		Message: "Header fields do not fit the form layout",
		Action:  "Inspect the file with fecparse inspect",
		Code:    "HDR004",
	}},
	{sink.ErrAlreadyImported, UserMessage{
		Message: "Filing is already imported",
		Action:  "No action needed; the file was moved to review",
		Code:    "DB001",
	}},
	{sink.ErrInvalidValue, UserMessage{
		Message: "A date or amount could not be converted",
		Action:  "Check the review file for the affected records",
		Code:    "DB002",
	}},
	{ErrFileTooLarge, UserMessage{
		Message: "Filing exceeds the configured size limit",
		Action:  "Raise FECPARSE_MAX_FILE_SIZE or process the file separately",
		Code:    "FILE001",
	}},
	{ErrUnsupportedEncoding, UserMessage{
		Message: "Source encoding is not supported",
		Action:  "Set FECPARSE_ENCODING to windows-1252, latin1 or utf-8",
		Code:    "FILE002",
	}},
	{fs.ErrNotExist, UserMessage{
		Message: "File or directory does not exist",
		Action:  "Check the configured directories",
		Code:    "FILE003",
	}},
	{fs.ErrPermission, UserMessage{
		Message: "File or directory is not accessible",
		Action:  "Check permissions on the configured directories",
		Code:    "FILE004",
	}},
	{ErrRunInProgress, UserMessage{
		Message: "Another batch run is active",
		Action:  "Wait for the active run to finish",
		Code:    "RUN001",
	}},
	{context.Canceled, UserMessage{
		Message: "The run was cancelled",
		Action:  "Unprocessed files stay in the import directory for the next run",
		Code:    "RUN002",
	}},
	{context.DeadlineExceeded, UserMessage{
		Message: "The run exceeded its time limit",
		Action:  "Raise FECPARSE_RUN_TIMEOUT or run again to continue",
		Code:    "RUN003",
	}},
	{ErrRunNotFound, UserMessage{
		Message: "No run with this ID is known",
		Action:  "List runs to find a valid ID",
		Code:    "RUN004",
	}},
}

// errorPatterns maps technical error text (case-insensitive) to messages.
var errorPatterns = []errorPattern{
	{"connection refused", UserMessage{
		Message: "Unable to connect to database",
		Action:  "Please try again in a few moments",
		Code:    "DB003",
	}},
	{"connection reset", UserMessage{
		Message: "Database connection was interrupted",
		Action:  "Please try again",
		Code:    "DB004",
	}},
	{"timeout", UserMessage{
		Message: "Database operation timed out",
		Action:  "Please try again later",
		Code:    "DB005",
	}},
	{"deadlock", UserMessage{
		Message: "Database was busy with conflicting operations",
		Action:  "Please try again",
		Code:    "DB006",
	}},
	{"duplicate key", UserMessage{
		Message: "A row with this key already exists",
		Action:  "Check whether the filing was imported under another name",
		Code:    "DB007",
	}},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the logs for the technical error",
	Code:    "ERR000",
}

// MapError converts a technical error to an operator-facing message.
//
// Example:
//
//	msg := MapError(fmt.Errorf("file 123: %w", sink.ErrAlreadyImported))
//	// msg.Code == "DB001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, et := range errorTargets {
		if errors.Is(err, et.target) {
			return et.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific code rather than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its operator-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // Message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
