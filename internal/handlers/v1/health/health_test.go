package health

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_Health(t *testing.T) {
	_, api := humatest.New(t)
	h := NewHandler()
	h.Now = func() time.Time { return time.Date(2025, 3, 15, 10, 30, 0, 0, time.FixedZone("CET", 3600)) }
	h.Register(api)

	resp := api.Get("/v1/health")

	require.Equal(t, http.StatusOK, resp.Code)
	var body HealthBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "2025-03-15T09:30:00Z", body.Timestamp)
}
