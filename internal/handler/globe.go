package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"earthly-globe/internal/globe"
	"earthly-globe/internal/queue"
)

// DataPath is the route of the globe data endpoint.
const DataPath = "/api/data"

// publishTimeout bounds a single event publish.
const publishTimeout = 5 * time.Second

// DataSource builds the globe records and reports on the data files.
type DataSource interface {
	Build() []globe.CountryRecord
	Diagnose() globe.Diagnostic
}

// GlobeHandler serves the globe data and the file diagnostic.
type GlobeHandler struct {
	source    DataSource
	publisher queue.Publisher
	logger    *slog.Logger
}

// NewGlobeHandler panics if source is nil.  A nil publisher disables events.
func NewGlobeHandler(source DataSource, publisher queue.Publisher, logger *slog.Logger) *GlobeHandler {
	if source == nil {
		panic("nil data source passed to NewGlobeHandler")
	}
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GlobeHandler{source: source, publisher: publisher, logger: logger}
}

// DiagnosticResponse is the body of GET /.
type DiagnosticResponse struct {
	ServerStatus string `json:"server_status"`
	globe.Diagnostic
	APIEndpoint string `json:"api_endpoint"`
}

// Diagnostic reports the server status and which expected files exist.
func (h *GlobeHandler) Diagnostic(c echo.Context) error {
	return c.JSON(http.StatusOK, DiagnosticResponse{
		ServerStatus: "online",
		Diagnostic:   h.source.Diagnose(),
		APIEndpoint:  DataPath,
	})
}

// Data rebuilds the globe records from disk and returns them as a JSON
// array.  It always answers 200; missing data shows up as "N/A" fields.
func (h *GlobeHandler) Data(c echo.Context) error {
	records := h.source.Build()
	if _, nop := h.publisher.(queue.NopPublisher); !nop {
		go h.publishBuilt(records)
	}
	return c.JSON(http.StatusOK, records)
}

func (h *GlobeHandler) publishBuilt(records []globe.CountryRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	ev := queue.NewDatasetBuiltEvent(globe.Summarize(records, h.source.Diagnose()), time.Now())
	if err := h.publisher.PublishDatasetBuilt(ctx, ev); err != nil {
		h.logger.Warn("failed to publish dataset event", "error", err)
	}
}
