package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

type RestoreResponse struct {
	Restored int `json:"restored"`
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.backup.export")
	defer span.End()

	data, name, err := handler.backup.ExportJSON(ctx)
	if err != nil {
		writeError(w, "export", err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, data, http.StatusOK)
}

func (handler *Handler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.backup.restore")
	defer span.End()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBackupBytes))
	if err != nil {
		writeError(w, "restore", apperr.Validation("failed to read backup file: %s", err))
		return
	}

	restored, err := handler.backup.Restore(ctx, data)
	if err != nil {
		writeError(w, "restore", err)
		return
	}
	log.Infof("backup restored over http: %d records", restored)
	writeJSON(w, RestoreResponse{Restored: restored})
}
