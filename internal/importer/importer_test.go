package importer

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/craftledger/etsyprofit/internal/engine"
)

func TestParseFileArg(t *testing.T) {
	tests := []struct {
		arg        string
		wantSource string
		wantPath   string
	}{
		{"etsy-csv:statement.csv", "etsy-csv", "statement.csv"},
		{"etsy-xlsx:report.xlsx", "etsy-xlsx", "report.xlsx"},
		{"statement.csv", "", "statement.csv"},
		{`C:\exports\report.xlsx`, "", `C:\exports\report.xlsx`},
		{"unknown:file.csv", "", "unknown:file.csv"},
	}

	for _, tt := range tests {
		source, path := ParseFileArg(tt.arg)
		if source != tt.wantSource || path != tt.wantPath {
			t.Errorf("ParseFileArg(%q) = (%q, %q), want (%q, %q)",
				tt.arg, source, path, tt.wantSource, tt.wantPath)
		}
	}
}

func TestInferSource(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"report.xlsx", "etsy-xlsx"},
		{"report.XLSX", "etsy-xlsx"},
		{"statement.csv", "etsy-csv"},
		{"statement", "etsy-csv"},
	}

	for _, tt := range tests {
		if got := InferSource(tt.path); got != tt.want {
			t.Errorf("InferSource(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestGetUnknownSource(t *testing.T) {
	if _, err := Get("shopify-csv"); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestImportFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")

	content := strings.Join([]string{
		"Date,Type,Title,Info,Amount,Fees & Taxes",
		"2024-12-10,Sale,Mug,Order #1234567890,$20.00,",
		"2024-12-10,Transaction fee,,Order #1234567890,,-$1.30",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := ImportFile("etsy-csv", path, engine.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(data.Orders))
	}
	if math.Abs(data.Orders[0].NetProfit-18.7) > 1e-9 {
		t.Errorf("expected netProfit 18.7, got %v", data.Orders[0].NetProfit)
	}
}

func TestImportFileXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Etsy statement export"}, // preamble above the table
		{},
		{"Date", "Type", "Title", "Info", "Amount", "Fees & Taxes"},
		{"2024-12-10", "Sale", "Mug", "Order #1234567890", "$20.00", ""},
		{"2024-12-10", "Transaction fee", "", "Order #1234567890", "", "-$1.30"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	data, err := ImportFile("etsy-xlsx", path, engine.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(data.Orders))
	}
	o := data.Orders[0]
	if o.OrderNumber != "1234567890" {
		t.Errorf("expected order 1234567890, got %s", o.OrderNumber)
	}
	if o.SaleAmount != 20 || o.TransactionFees != 1.3 {
		t.Errorf("unexpected totals: sale %v, fees %v", o.SaleAmount, o.TransactionFees)
	}
}

func TestImportXLSXWithoutHeaderRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	row := []interface{}{"just", "some", "cells"}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportFile("etsy-xlsx", path, engine.Options{}); err == nil {
		t.Error("expected error when no header row resolves")
	}
}
