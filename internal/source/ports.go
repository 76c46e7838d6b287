package source

import (
	"context"

	"tally/internal/core"
)

// Ports for inbound record tables.
type (
	// RecordReader loads every data row of the input table. Implementations
	// own header validation: a table whose header lacks Category or Value
	// fails with core.ErrMissingColumn naming the missing field(s); a table
	// that cannot be opened at all fails with core.ErrInputNotFound. Rows
	// come back uncoerced; numeric validation happens in core.
	RecordReader interface {
		ReadRecords(ctx context.Context) ([]core.RawRecord, error)
	}
)
