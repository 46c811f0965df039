package reports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/report"
)

type ChartSlice struct {
	Name  string `json:"name"`
	Total string `json:"total"`
}

type ChartResponse struct {
	Summary    Summary      `json:"summary"`
	Categories []ChartSlice `json:"categories" doc:"Expense totals ordered largest first, ties by name"`
}

type ChartOutput struct {
	Body ChartResponse
}

// ChartHandler handles GET /v1/reports/chart. Nothing is recorded.
type ChartHandler struct {
	ReportService reportService
}

func NewChartHandler(svc reportService) *ChartHandler {
	return &ChartHandler{ReportService: svc}
}

func (h *ChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-report-chart",
		Method:      http.MethodGet,
		Path:        "/v1/reports/chart",
		Summary:     "Get chart data",
		Description: "Aggregates an inclusive date range without recording a report.",
		Tags:        []string{"Reports"},
		Security:    auth.Secured,
	}, h.handle)
}

func (h *ChartHandler) handle(ctx context.Context, input *WindowInput) (*ChartOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	window, err := input.window()
	if err != nil {
		return nil, apiutil.Error(err, "failed to build chart")
	}

	stopTimer := logging.Time(ctx, "summarizeMs")
	summary, err := h.ReportService.Summarize(ctx, ownerID, window.Start, window.End)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to build chart")
	}

	ranked := report.RankCategories(summary.CategoryTotals)
	slices := make([]ChartSlice, len(ranked))
	for i, c := range ranked {
		slices[i] = ChartSlice{Name: c.Name, Total: c.Total.String()}
	}

	return &ChartOutput{Body: ChartResponse{Summary: summaryFromReport(summary), Categories: slices}}, nil
}
