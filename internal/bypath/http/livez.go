package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/bypath/pkg/bypathsdk"
	"github.com/aussiebroadwan/bypath/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always returns 200 OK while the process is running, with uptime and version information.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	bypathsdk.HealthResponse
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, bypathsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
