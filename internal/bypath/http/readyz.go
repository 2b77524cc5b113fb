package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/bypath/internal/bypath/store"
	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database connection and reports 503 while the service cannot serve traffic.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	bypathsdk.HealthResponse
//	@Failure		503	{object}	bypathsdk.HealthResponse
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &bypathsdk.HealthChecks{Database: "ok"}
		status := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, bypathsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
