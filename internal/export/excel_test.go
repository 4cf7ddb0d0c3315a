package export

import (
	"testing"

	"incentivehub/internal/report"

	"github.com/xuri/excelize/v2"
)

func TestWorkbook(t *testing.T) {
	table := report.Table{
		Headers: []string{"Empresa", "TV-55Q", "TV-55Q (Diferencia)"},
		Rows: []report.Row{
			{"Empresa": "Norte", "TV-55Q": 6, "TV-55Q (Diferencia)": -4},
			{"Empresa": "Sur", "TV-55Q": 0, "TV-55Q (Diferencia)": 0},
		},
	}

	buf, err := Workbook(table)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Datos")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Empresa" || rows[0][2] != "TV-55Q (Diferencia)" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "Norte" || rows[1][1] != "6" || rows[1][2] != "-4" {
		t.Errorf("data row = %v", rows[1])
	}
	if rows[2][0] != "Sur" {
		t.Errorf("data row = %v", rows[2])
	}
}

func TestWorkbookEmptyTable(t *testing.T) {
	buf, err := Workbook(report.Table{Headers: []string{"Fecha"}})
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Datos")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ventas por Empresa", "ventas-por-empresa"},
		{"  Reporte  2024  ", "reporte-2024"},
		{"", "grafico"},
		{"!!!", "grafico"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
