package service

import (
	"bytes"
	"context"
	"fmt"

	"incentivehub/internal/export"
	"incentivehub/internal/report"
	"incentivehub/internal/repository"
)

// Workbook report names.
const (
	ReportSales          = "sales"
	ReportPurchases      = "purchases"
	ReportStock          = "stock"
	ReportRewardRequests = "reward-requests"
	ReportWinners        = "winners"
)

var workbookFilenames = map[string]string{
	ReportSales:          "ventas.xlsx",
	ReportPurchases:      "compras.xlsx",
	ReportStock:          "stock.xlsx",
	ReportRewardRequests: "canjes.xlsx",
	ReportWinners:        "ganadores.xlsx",
}

// ExportService assembles downloadable files from the record stores.
type ExportService interface {
	Workbook(ctx context.Context, name string, r report.Range) (string, *bytes.Buffer, error)
	ChartPDF(title string, chartPNG []byte) (string, []byte, error)
}

type exportService struct {
	sales          repository.SaleRepository
	purchases      repository.PurchaseRepository
	snapshots      repository.StockRepository
	rewardRequests repository.RewardRequestRepository
	winners        repository.WinnerRepository
}

func NewExportService(
	sales repository.SaleRepository,
	purchases repository.PurchaseRepository,
	snapshots repository.StockRepository,
	rewardRequests repository.RewardRequestRepository,
	winners repository.WinnerRepository,
) ExportService {
	return &exportService{
		sales:          sales,
		purchases:      purchases,
		snapshots:      snapshots,
		rewardRequests: rewardRequests,
		winners:        winners,
	}
}

// Workbook builds the named report over the optional date range and renders
// it as an xlsx attachment.
func (s *exportService) Workbook(ctx context.Context, name string, r report.Range) (string, *bytes.Buffer, error) {
	table, err := s.table(ctx, name, r)
	if err != nil {
		return "", nil, err
	}

	buf, err := export.Workbook(table)
	if err != nil {
		return "", nil, err
	}
	return workbookFilenames[name], buf, nil
}

func (s *exportService) table(ctx context.Context, name string, r report.Range) (report.Table, error) {
	switch name {
	case ReportSales:
		sales, err := s.sales.List(ctx)
		if err != nil {
			return report.Table{}, err
		}
		return report.SalesPivot(sales, r), nil
	case ReportPurchases:
		purchases, err := s.purchases.List(ctx)
		if err != nil {
			return report.Table{}, err
		}
		return report.PurchaseRows(purchases, r), nil
	case ReportStock:
		snapshots, err := s.snapshots.List(ctx)
		if err != nil {
			return report.Table{}, err
		}
		return report.StockRows(snapshots, r), nil
	case ReportRewardRequests:
		requests, err := s.rewardRequests.List(ctx)
		if err != nil {
			return report.Table{}, err
		}
		return report.RewardRequestRows(requests, r), nil
	case ReportWinners:
		winners, err := s.winners.List(ctx)
		if err != nil {
			return report.Table{}, err
		}
		return report.WinnerRows(winners, r), nil
	default:
		return report.Table{}, fmt.Errorf("unknown report %q", name)
	}
}

// ChartPDF renders the landscape chart capture document and derives its
// download filename from the title.
func (s *exportService) ChartPDF(title string, chartPNG []byte) (string, []byte, error) {
	doc, err := export.ChartPDF(title, chartPNG)
	if err != nil {
		return "", nil, err
	}
	return export.Slug(title) + ".pdf", doc, nil
}
