package reports

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/report"
)

type TrendInput struct {
	Buckets     int    `query:"buckets" default:"14" minimum:"0" maximum:"366" doc:"Number of buckets ending with the current one"`
	Granularity string `query:"granularity" default:"day" enum:"day,month" doc:"Bucket width"`
}

type TrendPoint struct {
	Period string `json:"period" doc:"YYYY-MM-DD for days, YYYY-MM for months"`
	Net    string `json:"net" doc:"Incomes minus expenses in the bucket"`
}

type TrendResponse struct {
	Granularity string       `json:"granularity"`
	Points      []TrendPoint `json:"points" doc:"Oldest bucket first"`
}

type TrendOutput struct {
	Body TrendResponse
}

// TrendHandler handles GET /v1/reports/trend.
type TrendHandler struct {
	ReportService reportService
	Now           func() time.Time
}

func NewTrendHandler(svc reportService) *TrendHandler {
	return &TrendHandler{ReportService: svc, Now: time.Now}
}

func (h *TrendHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-report-trend",
		Method:      http.MethodGet,
		Path:        "/v1/reports/trend",
		Summary:     "Get the net trend",
		Description: "Returns the net amount of each of the last buckets, ending with the bucket containing today (UTC).",
		Tags:        []string{"Reports"},
		Security:    auth.Secured,
	}, h.handle)
}

func (h *TrendHandler) handle(ctx context.Context, input *TrendInput) (*TrendOutput, error) {
	ownerID, err := auth.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	granularity, err := report.ParseGranularity(input.Granularity)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid granularity", err)
	}

	stopTimer := logging.Time(ctx, "trendMs")
	points, err := h.ReportService.Trend(ctx, ownerID, input.Buckets, granularity, h.Now())
	stopTimer()
	if err != nil {
		return nil, apiutil.Error(err, "failed to build trend")
	}

	resp := TrendResponse{Granularity: string(granularity), Points: make([]TrendPoint, len(points))}
	for i, p := range points {
		resp.Points[i] = TrendPoint{Period: p.PeriodKey, Net: p.Net.String()}
	}
	return &TrendOutput{Body: resp}, nil
}
