package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldBackend   = "backend"
	FieldKey       = "key"
	FieldDate      = "date"
	FieldCount     = "count"
	FieldFile      = "file"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentRecords  = "records"
	ComponentExchange = "exchange"
	ComponentBackend  = "backend"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpLoad       = "load"
	OpSave       = "save"
	OpUpsert     = "upsert"
	OpUpdate     = "update"
	OpDelete     = "delete"
	OpDeleteMany = "delete_many"
	OpImport     = "import"
	OpExport     = "export"
)
