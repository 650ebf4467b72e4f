// Package restapi exposes the repository over a small JSON API: the
// outer surface a UI or another service consumes.
package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"railboard.fi/internal/app"
)

type RestAPI struct {
	*app.Application
}

func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{Application: application}
}

// Routes builds the router with request logging applied to every
// endpoint.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/stations", api.stationsHandler)
	router.HandlerFunc(http.MethodGet, "/stations/:code", api.stationHandler)
	router.HandlerFunc(http.MethodGet, "/stations/:code/trains", api.stationTrainsHandler)
	router.HandlerFunc(http.MethodGet, "/trains/:number", api.trainHandler)

	return NewRequestLoggingMiddleware(api.Logger)(router)
}
