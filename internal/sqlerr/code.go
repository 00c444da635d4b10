package sqlerr

import "fmt"

// Code is a database-agnostic classification of a driver error.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	ExclusionViolation        Code = "exclusion_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	StringDataRightTruncation Code = "string_data_right_truncation"
	NumericValueOutOfRange    Code = "numeric_value_out_of_range"
	SerializationFailure      Code = "serialization_failure"
	DeadlockDetected          Code = "deadlock_detected"
	UndefinedTable            Code = "undefined_table"
	UndefinedColumn           Code = "undefined_column"
	ConnectionFailure         Code = "connection_failure"
	TooManyConnections        Code = "too_many_connections"
	QueryCanceled             Code = "query_canceled"
)

// PostgreSQL SQLSTATE values mapped by MapCode.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
	pgCheckViolation            = "23514"
	pgExclusionViolation        = "23P01"
	pgInvalidTextRepresentation = "22P02"
	pgStringDataRightTruncation = "22001"
	pgNumericValueOutOfRange    = "22003"
	pgSerializationFailure      = "40001"
	pgDeadlockDetected          = "40P01"
	pgUndefinedTable            = "42P01"
	pgUndefinedColumn           = "42703"
	pgTooManyConnections        = "53300"
	pgQueryCanceled             = "57014"
)

// MapCode converts a SQLSTATE into a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case pgNotNullViolation:
		return NotNullViolation
	case pgForeignKeyViolation:
		return ForeignKeyViolation
	case pgUniqueViolation:
		return UniqueViolation
	case pgCheckViolation:
		return CheckViolation
	case pgExclusionViolation:
		return ExclusionViolation
	case pgInvalidTextRepresentation:
		return InvalidTextRepresentation
	case pgStringDataRightTruncation:
		return StringDataRightTruncation
	case pgNumericValueOutOfRange:
		return NumericValueOutOfRange
	case pgSerializationFailure:
		return SerializationFailure
	case pgDeadlockDetected:
		return DeadlockDetected
	case pgUndefinedTable:
		return UndefinedTable
	case pgUndefinedColumn:
		return UndefinedColumn
	case pgTooManyConnections:
		return TooManyConnections
	case pgQueryCanceled:
		return QueryCanceled
	}

	// Class 08: connection exception.
	if len(sqlState) == 5 && sqlState[:2] == "08" {
		return ConnectionFailure
	}

	return Other
}

// IsValidation reports whether the code means the client sent data the
// database refused, as opposed to the database failing.
func (c Code) IsValidation() bool {
	switch c {
	case NotNullViolation, ForeignKeyViolation, UniqueViolation, CheckViolation,
		ExclusionViolation, InvalidTextRepresentation, StringDataRightTruncation,
		NumericValueOutOfRange:
		return true
	}
	return false
}

// Severity mirrors the PostgreSQL severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity converts the severity string reported by the server.
// Unknown values are treated as ERROR.
func MapSeverity(severity string) Severity {
	switch s := Severity(severity); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	}
	return SeverityError
}

// Error is a driver error normalized into our codes, keeping the
// metadata useful for building client messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}
