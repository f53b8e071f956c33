package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ForecastRoutes is the handler surface the router wires up.
type ForecastRoutes interface {
	HandleHome(w http.ResponseWriter, r *http.Request)
	HandleAbout(w http.ResponseWriter, r *http.Request)
	HandlePredict(w http.ResponseWriter, r *http.Request)
	HandleForecastPage(w http.ResponseWriter, r *http.Request)
	HandleForecastChart(w http.ResponseWriter, r *http.Request)
	HandlePredictJSON(w http.ResponseWriter, r *http.Request)
	HandleNewsJSON(w http.ResponseWriter, r *http.Request)
	HandleHealth(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	forecastHandler ForecastRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	forecastHandler ForecastRoutes,
	router *mux.Router) *Router {
	return &Router{
		forecastHandler: forecastHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// pages
	r.router.HandleFunc("/", r.forecastHandler.HandleHome).Methods("GET")
	r.router.HandleFunc("/about", r.forecastHandler.HandleAbout).Methods("GET")
	r.router.HandleFunc("/predict", r.forecastHandler.HandlePredict).Methods("POST")
	r.router.HandleFunc("/forecast/{symbol}", r.forecastHandler.HandleForecastPage).Methods("GET")
	r.router.HandleFunc("/forecast/{symbol}/chart", r.forecastHandler.HandleForecastChart).Methods("GET")

	// JSON API, mirrors the remote backend contract
	// expects ?stock={ticker or company name}
	r.router.HandleFunc("/v1/predict", r.forecastHandler.HandlePredictJSON).Methods("GET")
	r.router.HandleFunc("/v1/news/{symbol}", r.forecastHandler.HandleNewsJSON).Methods("GET")

	r.router.HandleFunc("/health", r.forecastHandler.HandleHealth).Methods("GET")
}
