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

// GenerateReportBody holds the window to report on. Missing or unparseable
// dates are an invalid range, not a validation error.
type GenerateReportBody struct {
	StartDate string `json:"start_date,omitempty" doc:"Inclusive first day (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" doc:"Inclusive last day (YYYY-MM-DD)"`
}

type GenerateReportInput struct {
	Body GenerateReportBody
}

type GenerateReportResponse struct {
	Report  Record  `json:"report"`
	Summary Summary `json:"summary"`
}

type GenerateReportOutput struct {
	Status int
	Body   GenerateReportResponse
}

// GenerateReportHandler handles POST /v1/reports/generate.
type GenerateReportHandler struct {
	ReportService reportService
}

func NewGenerateReportHandler(svc reportService) *GenerateReportHandler {
	return &GenerateReportHandler{ReportService: svc}
}

func (h *GenerateReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-report",
		Method:      http.MethodPost,
		Path:        "/v1/reports/generate",
		Summary:     "Generate a report",
		Description: "Aggregates the caller's incomes and expenses over an inclusive date range and records the result.",
		Tags:        []string{"Reports"},
		Security:    auth.Secured,
	}, h.handle)
}

func (h *GenerateReportHandler) handle(ctx context.Context, input *GenerateReportInput) (*GenerateReportOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	window, err := report.ParseWindow(input.Body.StartDate, input.Body.EndDate)
	if err != nil {
		return nil, apiutil.Error(err, "failed to generate report")
	}
	logging.Data(ctx, "startDate", window.StartString())
	logging.Data(ctx, "endDate", window.EndString())

	stopTimer := logging.Time(ctx, "generateReportMs")
	record, summary, err := h.ReportService.GenerateReport(ctx, ownerID, window.Start, window.End)
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to generate report")
	}

	logging.Data(ctx, "reportID", record.ID.String())

	return &GenerateReportOutput{
		Status: http.StatusCreated,
		Body: GenerateReportResponse{
			Report:  recordFromService(*record),
			Summary: summaryFromReport(summary),
		},
	}, nil
}
