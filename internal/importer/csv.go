package importer

import (
	"io"

	"github.com/craftledger/etsyprofit/internal/engine"
)

// ImportCSV reads an Etsy CSV statement export.
func ImportCSV(r io.Reader, opts engine.Options) (*engine.ParsedData, error) {
	return engine.ParseCSV(r, opts)
}
