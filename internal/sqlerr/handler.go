package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/go-qa/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	uniqueConstraintRe     = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	foreignKeyConstraintRe = regexp.MustCompile(`^(.+)_fkey$`)
)

// ErrCode reports the Code of the first classifiable error in the chain.
//
// Both already-converted *Error values and raw *pgconn.PgError values are
// recognized; anything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}

	return Other
}

// ConvertPgError converts a raw Postgres error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Convert finds a Postgres error in the chain and normalizes it.
// It returns nil when the chain holds none.
func Convert(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr)
	}

	return nil
}

// UserMessage returns a client-safe description of a database error.
func UserMessage(err error) string {
	sqlErr := Convert(err)
	if sqlErr == nil {
		return "An error occurred while processing your request"
	}
	return formatUserFriendlyMessage(sqlErr)
}

// generateErrorCode creates machine-friendly codes like ANSWER_NOT_FOUND
// from the table name and violation type.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Naive singularization: "ANSWERS" -> "ANSWER".
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextRepresentation, StringDataRightTruncation, NumericValueOutOfRange:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing message. It is meant
// for clients, logs keep the raw driver error.
func formatUserFriendlyMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		column := sqlErr.ColumnName
		if column == "" {
			column = extractColumnForForeignKey(sqlErr.TableName, sqlErr.ConstraintName)
		}
		entityName := getEntityName(sqlErr.TableName, column)

		// Deleting a parent row that children still point at.
		if strings.HasPrefix(sqlErr.Message, "update or delete on table") {
			return fmt.Sprintf("The %s is still referenced by existing %s", entityName, humanizeText(sqlErr.TableName))
		}
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		entityName := getEntityName(sqlErr.TableName, "")
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			return fmt.Sprintf("A %s with this %s already exists", entityName, humanizeText(column))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName := humanizeText(sqlErr.ColumnName); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidTextRepresentation, NumericValueOutOfRange:
		return "One or more values have an invalid format"

	case StringDataRightTruncation:
		return "One or more values are too long"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name from table/column data.
//
//  1. A column ending in "_uuid" or "_id" names the entity ("question_uuid" -> "Question").
//  2. Otherwise the table name, singularized.
//  3. Otherwise "record".
func getEntityName(tableName, columnName string) string {
	column := strings.ToLower(columnName)
	for _, suffix := range []string{"_uuid", "_id"} {
		if column != "" && strings.HasSuffix(column, suffix) {
			return humanizeText(strings.TrimSuffix(column, suffix))
		}
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case: "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint name.
//
//  1. "unique_<table>_<column>"       unique_questions_title -> "title"
//  2. "<table>_<column>_(key|ukey)"   questions_title_key -> "title"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueConstraintRe.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// extractColumnForForeignKey infers the column from the default Postgres
// FK constraint name "<table>_<column>_fkey":
// answers_question_uuid_fkey -> "question_uuid".
func extractColumnForForeignKey(tableName, constraintName string) string {
	matches := foreignKeyConstraintRe.FindStringSubmatch(constraintName)
	if len(matches) < 2 {
		return ""
	}
	return strings.TrimPrefix(matches[1], tableName+"_")
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - validation-class Postgres errors: 400 with a friendly message
//   - ErrNoRows: 404
//   - anything else: generic 500
//
// The global error handler uses it for errors no layer classified.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if sqlErr := Convert(err); sqlErr != nil {
		if !sqlErr.Code.IsValidation() {
			return errs.NewInternalServerError()
		}

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		if sqlErr.Code == NotNullViolation {
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors)
		}

		return errs.NewBadRequestError(userMessage, true, &errorCode, nil)
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
