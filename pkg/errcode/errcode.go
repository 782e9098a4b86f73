package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	RemoveFileError

	// Logging errors
	CreateLogFileError

	// Archive errors
	ArchiveError
	NetworkError

	// Metadata errors
	SpreadsheetError
	InvalidVersionError
	EmptyVersionError
	DateParseError
	EmptyExtractedDateError
	InvalidRowCountError
	EmptyRowCountError

	// Record errors
	DelimitedParseError
	UnknownVariantError

	// Dataset errors
	RowCountMismatchError
	LoadCancelledError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Export errors
	ExportPostgresError
	ExportSQLiteError

	// Server errors
	ServerError
)
