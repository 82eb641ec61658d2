// Package importer reads transaction export files and feeds them to the
// engine. Importers register under a source name so new export formats can
// be added without touching the callers.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/craftledger/etsyprofit/internal/engine"
)

// Importer parses a transaction export into a report bundle.
type Importer interface {
	Import(r io.Reader, opts engine.Options) (*engine.ParsedData, error)
}

// ImporterFunc is a function that implements Importer
type ImporterFunc func(r io.Reader, opts engine.Options) (*engine.ParsedData, error)

func (f ImporterFunc) Import(r io.Reader, opts engine.Options) (*engine.ParsedData, error) {
	return f(r, opts)
}

// importers is the registry of available importers
var importers = map[string]Importer{}

// Register registers an importer under the given source name
func Register(name string, imp Importer) {
	importers[name] = imp
}

// Get returns the importer for the given source type
func Get(source string) (Importer, error) {
	imp, ok := importers[source]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s (available: %v)", source, Sources())
	}
	return imp, nil
}

// Sources returns a list of registered source types
func Sources() []string {
	var sources []string
	for name := range importers {
		sources = append(sources, name)
	}
	return sources
}

// IsKnown returns true if the name is a registered source type
func IsKnown(name string) bool {
	_, ok := importers[name]
	return ok
}

// ParseFileArg parses a file argument that may have a source prefix.
// Returns (source, path). If no valid prefix, source is empty.
// Example: "etsy-xlsx:report.xlsx" → ("etsy-xlsx", "report.xlsx")
// Example: "report.csv" → ("", "report.csv")
// Example: "C:\path\file.xlsx" → ("", "C:\path\file.xlsx") // Windows path
func ParseFileArg(arg string) (source, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnown(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg
}

// InferSource guesses the source type from the file extension.
func InferSource(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return "etsy-xlsx"
	default:
		return "etsy-csv"
	}
}

// ImportFile opens path and runs the importer registered for source.
func ImportFile(source, path string, opts engine.Options) (*engine.ParsedData, error) {
	imp, err := Get(source)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	data, err := imp.Import(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return data, nil
}

func init() {
	// Register built-in importers
	Register("etsy-csv", ImporterFunc(ImportCSV))
	Register("etsy-xlsx", ImporterFunc(ImportXLSX))
}
