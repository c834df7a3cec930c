package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can branch on it and the dispatcher
// can pick rejection copy without string matching.
type Code string

// Generic codes
const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	CodeInternal        Code = "internal"

	// CodeUnavailable marks a collaborator failure that is safe to retry
	CodeUnavailable Code = "unavailable"

	// CodeConflict marks a lost optimistic race the caller may retry
	CodeConflict Code = "conflict"
)

// Game precondition codes. These are surfaced to the requesting user and never
// retried automatically.
const (
	CodeHostAlreadyHosting      Code = "host_already_hosting"
	CodeAlreadyJoined           Code = "already_joined"
	CodeLobbyFull               Code = "lobby_full"
	CodeSessionNotOpen          Code = "session_not_open"
	CodeNotHost                 Code = "not_host"
	CodeNotEnoughPlayers        Code = "not_enough_players"
	CodeSessionNotFound         Code = "session_not_found"
	CodeNoPendingConfirmation   Code = "no_pending_confirmation"
	CodeNoRoleAssigned          Code = "no_role_assigned"
	CodeNotJoined               Code = "not_joined"
	CodeHostCannotLeave         Code = "host_cannot_leave"
	CodeInsufficientCatalogSize Code = "insufficient_catalog_size"
)

// Error is an application error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps err with context. The code of a wrapped *Error is preserved,
// anything else becomes CodeUnknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var spyErr *Error
	if errors.As(err, &spyErr) {
		return &Error{
			Code:    spyErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(spyErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Unavailable wraps a collaborator failure as retryable
func Unavailable(err error, message string) *Error {
	if err == nil {
		return New(CodeUnavailable, message)
	}
	return WrapWithCode(err, CodeUnavailable, message)
}

// Conflict creates a conflict error
func Conflict(message string) *Error {
	return New(CodeConflict, message)
}

// SessionNotFound is returned for absent and closed sessions alike
func SessionNotFound(gameID string) *Error {
	return Newf(CodeSessionNotFound, "game session '%s' not found", gameID).WithMeta("game_id", gameID)
}

// HostAlreadyHosting creates a host already hosting error
func HostAlreadyHosting(hostID string) *Error {
	return Newf(CodeHostAlreadyHosting, "user '%s' already hosts an active game", hostID).WithMeta("host_id", hostID)
}

// AlreadyJoined creates an already joined error
func AlreadyJoined(gameID, userID string) *Error {
	return Newf(CodeAlreadyJoined, "user '%s' already joined game '%s'", userID, gameID).
		WithMeta("game_id", gameID).
		WithMeta("user_id", userID)
}

// LobbyFull creates a lobby full error
func LobbyFull(gameID string, maxPlayers int) *Error {
	return Newf(CodeLobbyFull, "game '%s' is full (%d players)", gameID, maxPlayers).
		WithMeta("game_id", gameID).
		WithMeta("max_players", maxPlayers)
}

// SessionNotOpen creates a session not open error
func SessionNotOpen(gameID string, state fmt.Stringer) *Error {
	return Newf(CodeSessionNotOpen, "game '%s' is %s", gameID, state).
		WithMeta("game_id", gameID).
		WithMeta("state", state.String())
}

// NotHost creates a not host error
func NotHost(gameID, userID, hostID string) *Error {
	return Newf(CodeNotHost, "user '%s' is not the host of game '%s'", userID, gameID).
		WithMeta("game_id", gameID).
		WithMeta("user_id", userID).
		WithMeta("host_id", hostID)
}

// NotEnoughPlayers creates a not enough players error
func NotEnoughPlayers(gameID string, have, need int) *Error {
	return Newf(CodeNotEnoughPlayers, "game '%s' has %d players, needs at least %d", gameID, have, need).
		WithMeta("game_id", gameID).
		WithMeta("players", have).
		WithMeta("min_players", need)
}

// NoPendingConfirmation creates a no pending confirmation error
func NoPendingConfirmation(confirmationID string) *Error {
	return Newf(CodeNoPendingConfirmation, "confirmation '%s' is not pending", confirmationID).
		WithMeta("confirmation_id", confirmationID)
}

// NoRoleAssigned creates a no role assigned error
func NoRoleAssigned(gameID, userID string) *Error {
	return Newf(CodeNoRoleAssigned, "user '%s' has no role in game '%s'", userID, gameID).
		WithMeta("game_id", gameID).
		WithMeta("user_id", userID)
}

// NotJoined creates a not joined error
func NotJoined(gameID, userID string) *Error {
	return Newf(CodeNotJoined, "user '%s' has not joined game '%s'", userID, gameID).
		WithMeta("game_id", gameID).
		WithMeta("user_id", userID)
}

// HostCannotLeave creates a host cannot leave error
func HostCannotLeave(gameID string) *Error {
	return Newf(CodeHostCannotLeave, "the host cannot leave game '%s'", gameID).WithMeta("game_id", gameID)
}

// InsufficientCatalogSize creates an insufficient catalog size error
func InsufficientCatalogSize(have, need int) *Error {
	return Newf(CodeInsufficientCatalogSize, "catalog draw has %d locations, need %d", have, need).
		WithMeta("locations", have).
		WithMeta("required", need)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var spyErr *Error
	if errors.As(err, &spyErr) {
		return spyErr.Code == code
	}
	return false
}

// IsSessionNotFound checks if the error is a session not found error
func IsSessionNotFound(err error) bool {
	return Is(err, CodeSessionNotFound)
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	return Is(err, CodeConflict)
}

// IsUnavailable checks if the error is an unavailable error
func IsUnavailable(err error) bool {
	return Is(err, CodeUnavailable)
}

// IsPrecondition reports whether err is a game rule rejection rather than a
// system failure.
func IsPrecondition(err error) bool {
	switch GetCode(err) {
	case CodeHostAlreadyHosting, CodeAlreadyJoined, CodeLobbyFull, CodeSessionNotOpen,
		CodeNotHost, CodeNotEnoughPlayers, CodeSessionNotFound, CodeNoPendingConfirmation,
		CodeNoRoleAssigned, CodeNotJoined, CodeHostCannotLeave, CodeInvalidArgument:
		return true
	default:
		return false
	}
}

// GetCode returns the error code
func GetCode(err error) Code {
	var spyErr *Error
	if errors.As(err, &spyErr) {
		return spyErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var spyErr *Error
	if errors.As(err, &spyErr) {
		return spyErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
