package report

import (
	"reflect"
	"testing"
	"time"

	"incentivehub/internal/model"
)

func seller(name, company string) model.UserRef {
	return model.UserRef{ID: name, Name: name, Company: company}
}

func TestSalesPivot(t *testing.T) {
	sales := []model.Sale{
		{
			Date:   day(2024, time.March, 11),
			Seller: seller("carlos", "Norte"),
			Products: []model.SaleItem{
				{Model: "TV-55Q", Quantity: 2},
				{Model: "SB-300", Quantity: 1},
			},
		},
		{
			Date:     day(2024, time.March, 12),
			Seller:   seller("marta", "Sur"),
			Products: []model.SaleItem{{Model: "TV-55Q", Quantity: 3}},
		},
		{
			Date:     day(2024, time.March, 13),
			Seller:   seller("carlos", "Norte"),
			Products: []model.SaleItem{{Model: "TV-55Q", Quantity: 1}},
		},
	}

	table := SalesPivot(sales, Range{})

	wantHeaders := []string{"Empresa", "SB-300", "TV-55Q"}
	if !reflect.DeepEqual(table.Headers, wantHeaders) {
		t.Fatalf("headers = %v, want %v", table.Headers, wantHeaders)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}

	norte := table.Rows[0]
	if norte["Empresa"] != "Norte" || norte["TV-55Q"] != 3 || norte["SB-300"] != 1 {
		t.Errorf("Norte row = %v", norte)
	}
	sur := table.Rows[1]
	if sur["Empresa"] != "Sur" || sur["TV-55Q"] != 3 {
		t.Errorf("Sur row = %v", sur)
	}
	// Sur never sold an SB-300; the cell still exists and reads 0.
	if sur["SB-300"] != 0 {
		t.Errorf("Sur SB-300 = %v, want 0", sur["SB-300"])
	}
}

func TestSalesPivotRespectsRange(t *testing.T) {
	from := day(2024, time.March, 12)
	sales := []model.Sale{
		{Date: day(2024, time.March, 11), Seller: seller("carlos", "Norte"), Products: []model.SaleItem{{Model: "TV-55Q", Quantity: 5}}},
		{Date: day(2024, time.March, 12), Seller: seller("marta", "Sur"), Products: []model.SaleItem{{Model: "SB-300", Quantity: 1}}},
	}

	table := SalesPivot(sales, Range{From: &from})

	// The filtered-out sale must not contribute a model column either.
	wantHeaders := []string{"Empresa", "SB-300"}
	if !reflect.DeepEqual(table.Headers, wantHeaders) {
		t.Fatalf("headers = %v, want %v", table.Headers, wantHeaders)
	}
	if len(table.Rows) != 1 || table.Rows[0]["Empresa"] != "Sur" {
		t.Fatalf("rows = %v, want only Sur", table.Rows)
	}
}

func TestStockRows(t *testing.T) {
	snapshots := []model.StockSnapshot{
		{
			Date:   day(2024, time.March, 4),
			Seller: seller("carlos", "Norte"),
			Products: []model.StockItem{
				{Model: "TV-55Q", CurrentStock: 8, Difference: -2},
			},
		},
		{
			Date:   day(2024, time.March, 11),
			Seller: seller("carlos", "Norte"),
			Products: []model.StockItem{
				{Model: "TV-55Q", CurrentStock: 6, Difference: -4},
				{Model: "SB-300", CurrentStock: 3, Difference: 1},
			},
		},
	}

	table := StockRows(snapshots, Range{})

	wantHeaders := []string{
		"Fecha", "Semana", "Vendedor", "Tienda",
		"SB-300", "SB-300 (Diferencia)",
		"TV-55Q", "TV-55Q (Diferencia)",
	}
	if !reflect.DeepEqual(table.Headers, wantHeaders) {
		t.Fatalf("headers = %v, want %v", table.Headers, wantHeaders)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}

	// Newest snapshot first.
	latest := table.Rows[0]
	if latest["Fecha"] != "11/03/2024" {
		t.Fatalf("first row date = %v, want 11/03/2024", latest["Fecha"])
	}
	if latest["TV-55Q"] != 6 || latest["TV-55Q (Diferencia)"] != -4 {
		t.Errorf("latest TV-55Q cells = %v / %v", latest["TV-55Q"], latest["TV-55Q (Diferencia)"])
	}
	if latest["SB-300"] != 3 || latest["SB-300 (Diferencia)"] != 1 {
		t.Errorf("latest SB-300 cells = %v / %v", latest["SB-300"], latest["SB-300 (Diferencia)"])
	}

	// Earlier snapshot never counted an SB-300; both cells read 0.
	earlier := table.Rows[1]
	if earlier["SB-300"] != 0 || earlier["SB-300 (Diferencia)"] != 0 {
		t.Errorf("earlier SB-300 cells = %v / %v, want 0 / 0", earlier["SB-300"], earlier["SB-300 (Diferencia)"])
	}
}

func TestStockRowsDoesNotReorderInput(t *testing.T) {
	snapshots := []model.StockSnapshot{
		{Date: day(2024, time.March, 4), Seller: seller("a", "A")},
		{Date: day(2024, time.March, 11), Seller: seller("b", "B")},
	}

	StockRows(snapshots, Range{})

	if !snapshots[0].Date.Equal(day(2024, time.March, 4)) {
		t.Error("input slice was reordered")
	}
}

func TestPurchaseRowsSumsLines(t *testing.T) {
	purchases := []model.Purchase{
		{
			Date:    day(2024, time.March, 11),
			Seller:  seller("carlos", "Norte"),
			Invoice: "F-001",
			Status:  model.StatusApproved,
			Products: []model.SaleItem{
				{Model: "TV-55Q", Quantity: 2, Points: 100},
				{Model: "SB-300", Quantity: 1, Points: 20},
			},
		},
	}

	table := PurchaseRows(purchases, Range{})

	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if row["Cantidad"] != 3 || row["Puntos"] != 120 {
		t.Errorf("totals = %v / %v, want 3 / 120", row["Cantidad"], row["Puntos"])
	}
	if row["Estado"] != "Aprobado" || row["Factura"] != "F-001" || row["Semana"] != "Semana 11" {
		t.Errorf("row = %v", row)
	}
}

func TestWinnerRowsPreservesOrder(t *testing.T) {
	winners := []model.Winner{
		{Date: day(2024, time.March, 11), Name: "Zoe", Store: "Sur", RewardName: "Tablet", Points: 600},
		{Date: day(2024, time.March, 4), Name: "Ana", Store: "Norte", RewardName: "Cena", Points: 250},
	}

	table := WinnerRows(winners, Range{})

	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if table.Rows[0]["Nombre"] != "Zoe" || table.Rows[1]["Nombre"] != "Ana" {
		t.Errorf("rows out of input order: %v", table.Rows)
	}
}
