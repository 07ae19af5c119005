package reports

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/internal/domain/repository"
)

// maxLowStockListed cuántos productos en alerta se listan en el resumen.
const maxLowStockListed = 5

// SummaryPDFGenerator puerto de generación del PDF del resumen.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, summary *dto.SummaryResponse) ([]byte, error)
}

// SummaryUseCase agrega el resumen del inventario bajo demanda: lectura pura
// sobre el estado persistido, sin caché (consistencia read-your-writes).
type SummaryUseCase struct {
	productRepo       repository.ProductRepository
	movementRepo      repository.MovementRepository
	lowStockThreshold int
	pdfGenerator      SummaryPDFGenerator
}

// NewSummaryUseCase construye el caso de uso. pdfGenerator puede ser nil si
// no se expone la exportación PDF.
func NewSummaryUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	lowStockThreshold int,
	pdfGenerator SummaryPDFGenerator,
) *SummaryUseCase {
	return &SummaryUseCase{
		productRepo:       productRepo,
		movementRepo:      movementRepo,
		lowStockThreshold: lowStockThreshold,
		pdfGenerator:      pdfGenerator,
	}
}

// Summary calcula el resumen del usuario:
// valor de stock y revenue potencial a precio de venta, costo a precio de
// compra, conteos de entradas/salidas y productos bajo el umbral de alerta.
func (uc *SummaryUseCase) Summary(userID string) (*dto.SummaryResponse, error) {
	products, err := uc.productRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	totalValue := decimal.Zero
	totalCost := decimal.Zero
	var lowStock []dto.LowStockProduct
	for _, p := range products {
		stock := decimal.NewFromInt(int64(p.CurrentStock))
		totalValue = totalValue.Add(stock.Mul(p.SalePrice))
		totalCost = totalCost.Add(stock.Mul(p.PurchasePrice))
		if p.CurrentStock < uc.lowStockThreshold {
			lowStock = append(lowStock, dto.LowStockProduct{
				ProductID:    p.ID,
				Name:         p.Name,
				Barcode:      p.Barcode,
				CurrentStock: p.CurrentStock,
			})
		}
	}

	// Los más urgentes (menos stock) primero; se listan como máximo 5.
	sort.Slice(lowStock, func(i, j int) bool {
		return lowStock[i].CurrentStock < lowStock[j].CurrentStock
	})
	listed := lowStock
	if len(listed) > maxLowStockListed {
		listed = listed[:maxLowStockListed]
	}

	entries, err := uc.movementRepo.CountByType(userID, entity.MovementTypeEntry)
	if err != nil {
		return nil, err
	}
	exits, err := uc.movementRepo.CountByType(userID, entity.MovementTypeExit)
	if err != nil {
		return nil, err
	}

	return &dto.SummaryResponse{
		ProductsCount:         len(products),
		TotalStockValue:       totalValue.Round(2),
		TotalPotentialRevenue: totalValue.Round(2),
		TotalStockCost:        totalCost.Round(2),
		TotalEntries:          entries,
		TotalExits:            exits,
		LowStockThreshold:     uc.lowStockThreshold,
		LowStockCount:         len(lowStock),
		LowStockProducts:      listed,
	}, nil
}

// SummaryPDF genera la representación PDF del resumen actual.
func (uc *SummaryUseCase) SummaryPDF(ctx context.Context, userID string) ([]byte, error) {
	summary, err := uc.Summary(userID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateSummaryPDF(ctx, summary)
}
