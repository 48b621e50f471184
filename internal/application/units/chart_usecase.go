package units

import "context"

// ChartUseCase genera la tabla de conversión imprimible de un Item (PDF).
type ChartUseCase struct {
	availability *AvailabilityUseCase
	pdf          ChartPDFGenerator
}

// NewChartUseCase construye el caso de uso.
func NewChartUseCase(availability *AvailabilityUseCase, pdf ChartPDFGenerator) *ChartUseCase {
	return &ChartUseCase{availability: availability, pdf: pdf}
}

// ItemChartPDF devuelve los bytes del PDF con las unidades del Item y sus factores.
func (uc *ChartUseCase) ItemChartPDF(ctx context.Context, itemID string) ([]byte, error) {
	item, units, err := uc.availability.resolveItem(itemID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateChart(ctx, item, units)
}
