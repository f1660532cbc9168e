package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/f-engage-api/pkg/log"
)

type healthcheckResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, healthcheckResponse{
			Status: "ok",
			Time:   time.Now().Format(time.RFC3339),
		})
	})
}
