package report

import (
	"sort"
	"time"

	"incentivehub/internal/model"
)

// Row is one flat export row. Column sets are data-dependent for the pivot
// tables, so rows are keyed maps rather than fixed structs.
type Row map[string]any

// Table pairs ordered headers with the rows they describe; map keys alone
// cannot carry column order into a spreadsheet.
type Table struct {
	Headers []string
	Rows    []Row
}

const differenceSuffix = " (Diferencia)"

// PurchaseRows builds one row per purchase inside the range, preserving
// input order.
func PurchaseRows(purchases []model.Purchase, r Range) Table {
	filtered := Filter(purchases, r, func(p model.Purchase) time.Time { return p.Date })

	headers := []string{"Fecha", "Semana", "Mes", "Vendedor", "Tienda", "Factura", "Cantidad", "Puntos", "Estado"}
	rows := make([]Row, 0, len(filtered))
	for _, p := range filtered {
		quantity, points := 0, 0
		for _, item := range p.Products {
			quantity += item.Quantity
			points += item.Points
		}
		rows = append(rows, Row{
			"Fecha":    FormatDate(p.Date),
			"Semana":   WeekLabel(p.Date),
			"Mes":      MonthName(p.Date),
			"Vendedor": p.Seller.Name,
			"Tienda":   p.Seller.Company,
			"Factura":  p.Invoice,
			"Cantidad": quantity,
			"Puntos":   points,
			"Estado":   StatusLabel(p.Status),
		})
	}
	return Table{Headers: headers, Rows: rows}
}

// RewardRequestRows builds one row per redemption request inside the range,
// preserving input order.
func RewardRequestRows(requests []model.RewardRequest, r Range) Table {
	filtered := Filter(requests, r, func(q model.RewardRequest) time.Time { return q.RequestDate })

	headers := []string{"Fecha", "Semana", "Mes", "Usuario", "Tienda", "Premio", "Puntos", "Estado"}
	rows := make([]Row, 0, len(filtered))
	for _, q := range filtered {
		rows = append(rows, Row{
			"Fecha":   FormatDate(q.RequestDate),
			"Semana":  WeekLabel(q.RequestDate),
			"Mes":     MonthName(q.RequestDate),
			"Usuario": q.UserName,
			"Tienda":  q.UserStore,
			"Premio":  q.RewardName,
			"Puntos":  q.Points,
			"Estado":  StatusLabel(q.Status),
		})
	}
	return Table{Headers: headers, Rows: rows}
}

// WinnerRows builds one row per winner inside the range, preserving input
// order.
func WinnerRows(winners []model.Winner, r Range) Table {
	filtered := Filter(winners, r, func(w model.Winner) time.Time { return w.Date })

	headers := []string{"Fecha", "Semana", "Mes", "Nombre", "Tienda", "Premio", "Puntos"}
	rows := make([]Row, 0, len(filtered))
	for _, w := range filtered {
		rows = append(rows, Row{
			"Fecha":  FormatDate(w.Date),
			"Semana": WeekLabel(w.Date),
			"Mes":    MonthName(w.Date),
			"Nombre": w.Name,
			"Tienda": w.Store,
			"Premio": w.RewardName,
			"Puntos": w.Points,
		})
	}
	return Table{Headers: headers, Rows: rows}
}

// SalesPivot reshapes sales into one row per company with a column per
// product model holding the summed quantity. The model column set is the
// union across the filtered sales, sorted alphabetically; combinations with
// no sales default to 0.
func SalesPivot(sales []model.Sale, r Range) Table {
	filtered := Filter(sales, r, func(s model.Sale) time.Time { return s.Date })

	models := distinctSaleModels(filtered)

	// Company order follows first appearance in the filtered input.
	var companies []string
	totals := make(map[string]map[string]int)
	for _, s := range filtered {
		company := s.Seller.Company
		if _, ok := totals[company]; !ok {
			totals[company] = make(map[string]int)
			companies = append(companies, company)
		}
		for _, item := range s.Products {
			totals[company][item.Model] += item.Quantity
		}
	}

	headers := append([]string{"Empresa"}, models...)
	rows := make([]Row, 0, len(companies))
	for _, company := range companies {
		row := Row{"Empresa": company}
		for _, m := range models {
			row[m] = totals[company][m]
		}
		rows = append(rows, row)
	}
	return Table{Headers: headers, Rows: rows}
}

// StockRows reshapes stock snapshots into one row per snapshot with a pair
// of columns per product model: the counted stock and the difference against
// the catalog baseline. Missing combinations default to 0. Rows are sorted
// by snapshot date descending.
func StockRows(snapshots []model.StockSnapshot, r Range) Table {
	filtered := Filter(snapshots, r, func(s model.StockSnapshot) time.Time { return s.Date })

	ordered := make([]model.StockSnapshot, len(filtered))
	copy(ordered, filtered)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.After(ordered[j].Date)
	})

	models := distinctStockModels(ordered)

	headers := []string{"Fecha", "Semana", "Vendedor", "Tienda"}
	for _, m := range models {
		headers = append(headers, m, m+differenceSuffix)
	}

	rows := make([]Row, 0, len(ordered))
	for _, s := range ordered {
		row := Row{
			"Fecha":    FormatDate(s.Date),
			"Semana":   WeekLabel(s.Date),
			"Vendedor": s.Seller.Name,
			"Tienda":   s.Seller.Company,
		}
		for _, m := range models {
			row[m] = 0
			row[m+differenceSuffix] = 0
		}
		for _, item := range s.Products {
			row[item.Model] = item.CurrentStock
			row[item.Model+differenceSuffix] = item.Difference
		}
		rows = append(rows, row)
	}
	return Table{Headers: headers, Rows: rows}
}

func distinctSaleModels(sales []model.Sale) []string {
	seen := make(map[string]bool)
	var models []string
	for _, s := range sales {
		for _, item := range s.Products {
			if !seen[item.Model] {
				seen[item.Model] = true
				models = append(models, item.Model)
			}
		}
	}
	sort.Strings(models)
	return models
}

func distinctStockModels(snapshots []model.StockSnapshot) []string {
	seen := make(map[string]bool)
	var models []string
	for _, s := range snapshots {
		for _, item := range s.Products {
			if !seen[item.Model] {
				seen[item.Model] = true
				models = append(models, item.Model)
			}
		}
	}
	sort.Strings(models)
	return models
}
