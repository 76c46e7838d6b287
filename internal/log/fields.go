package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldInputPath   = "input_path"
	FieldOutputPath  = "output_path"
	FieldDataSource  = "data_source"
	FieldRowsTotal   = "rows_total"
	FieldRowsDropped = "rows_dropped"
	FieldCategories  = "categories"
	FieldGrandTotal  = "grand_total"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentSource  = "source"
	ComponentReport  = "report"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpCoerce    = "coerce"
	OpSummarize = "summarize"
	OpWrite     = "write"
	OpArchive   = "archive"
	OpNotify    = "notify"
)
