package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/swrscope/internal/api/handlers"
	"github.com/RMahshie/swrscope/internal/processing"
	"github.com/RMahshie/swrscope/internal/repository"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, catalog repository.BandCatalog, svc processing.AnalysisService, maxBodyBytes int64) {
	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(svc, catalog)

	huma.Register(api, huma.Operation{
		OperationID: "listBands",
		Method:      http.MethodGet,
		Path:        "/api/bands",
		Summary:     "List bands",
		Description: "Returns the amateur band catalog and band plan segments used for aggregation",
		Tags:        []string{"Bands"},
	}, analysisHandler.ListBands)

	huma.Register(api, huma.Operation{
		OperationID:  "analyzeTouchstone",
		Method:       http.MethodPost,
		Path:         "/api/analyses",
		Summary:      "Analyse a Touchstone file",
		Description:  "Parses a 1-port or 2-port Touchstone file and returns SWR per frequency and per band",
		Tags:         []string{"Analysis"},
		MaxBodyBytes: maxBodyBytes,
	}, analysisHandler.Analyze)

	huma.Register(api, huma.Operation{
		OperationID:  "simulateShift",
		Method:       http.MethodPost,
		Path:         "/api/simulations/shift",
		Summary:      "Simulate element length changes",
		Description:  "Shifts each band's SWR curve as if the antenna element were lengthened or shortened by a percentage",
		Tags:         []string{"Analysis"},
		MaxBodyBytes: maxBodyBytes,
	}, analysisHandler.SimulateShift)
}
