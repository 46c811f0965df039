package reports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
)

type ListReportsInput struct {
	apiutil.PageInput
}

type ListReportsBody struct {
	Reports    []Record        `json:"reports" doc:"Recorded reports, newest first"`
	NextCursor *apiutil.Cursor `json:"next_cursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListReportsOutput struct {
	Body ListReportsBody
}

type GetReportInput struct {
	ID string `path:"id" format:"uuid" doc:"Report UUID"`
}

type GetReportOutput struct {
	Body Record
}

// RecordsHandler serves the recorded report log.
type RecordsHandler struct {
	ReportService reportService
}

func NewRecordsHandler(svc reportService) *RecordsHandler {
	return &RecordsHandler{ReportService: svc}
}

func (h *RecordsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-reports",
		Method:      http.MethodGet,
		Path:        "/v1/reports",
		Summary:     "List recorded reports",
		Tags:        []string{"Reports"},
		Security:    auth.Secured,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/{id}",
		Summary:     "Get a recorded report",
		Tags:        []string{"Reports"},
		Security:    auth.Secured,
	}, h.get)
}

func (h *RecordsHandler) list(ctx context.Context, input *ListReportsInput) (*ListReportsOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	records, next, err := h.ReportService.ListReports(ctx, ownerID, input.Cursor())
	if err != nil {
		return nil, apiutil.Error(err, "failed to list reports")
	}

	body := ListReportsBody{Reports: make([]Record, len(records)), NextCursor: apiutil.NextCursor(next)}
	for i, r := range records {
		body.Reports[i] = recordFromService(r)
	}
	return &ListReportsOutput{Body: body}, nil
}

func (h *RecordsHandler) get(ctx context.Context, input *GetReportInput) (*GetReportOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := apiutil.ParseID(input.ID, "id")
	if err != nil {
		return nil, err
	}

	record, err := h.ReportService.GetReport(ctx, ownerID, id)
	if err != nil {
		return nil, apiutil.Error(err, "failed to get report")
	}
	return &GetReportOutput{Body: recordFromService(*record)}, nil
}
