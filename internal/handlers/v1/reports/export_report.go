package reports

import (
	"bytes"
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/export"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// ExportHandler handles GET /v1/reports/export.
type ExportHandler struct {
	ReportService reportService
}

func NewExportHandler(svc reportService) *ExportHandler {
	return &ExportHandler{ReportService: svc}
}

func (h *ExportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/export",
		Summary:     "Export transactions as CSV",
		Description: "Returns every income and expense in an inclusive date range as CSV, oldest first.",
		Tags:        []string{"Reports"},
		Security:    auth.Secured,
	}, h.handle)
}

func (h *ExportHandler) handle(ctx context.Context, input *WindowInput) (*ExportOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	window, err := input.window()
	if err != nil {
		return nil, apiutil.Error(err, "failed to export report")
	}

	txs, err := h.ReportService.Transactions(ctx, ownerID, window.Start, window.End)
	if err != nil {
		return nil, apiutil.Error(err, "failed to export report")
	}
	logging.Data(ctx, "rowCount", len(txs))

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, txs); err != nil {
		return nil, huma.Error500InternalServerError("failed to write csv", err)
	}

	return &ExportOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: `attachment; filename="` + export.FileName(window) + `"`,
		Body:               buf.Bytes(),
	}, nil
}
