package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/eeshan-ajmera/finance-project-ai/chartview"
	"github.com/eeshan-ajmera/finance-project-ai/models"
	services "github.com/eeshan-ajmera/finance-project-ai/service"
	"github.com/eeshan-ajmera/finance-project-ai/util"
)

const (
	STOCK_QUERY_ARG  = "stock"
	WINDOW_QUERY_ARG = "window"
)

// ForecastHandler serves the pages and JSON endpoints around a forecast.
type ForecastHandler struct {
	forecastService *services.ForecastService
}

func NewForecastHandler(forecastService *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// HandleHome renders the ticker/company-name form.
func (h *ForecastHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, homeTemplate, nil)
}

// HandleAbout renders the about page.
func (h *ForecastHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, aboutTemplate, nil)
}

// HandlePredict takes the submitted form, runs a fresh prediction and
// redirects to the forecast page. No window arg on the redirect: a new
// result always lands on the default (most recent) window.
func (h *ForecastHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	stock := strings.TrimSpace(r.FormValue(STOCK_QUERY_ARG))
	if stock == "" {
		http.Error(w, "Stock input required", http.StatusBadRequest)
		return
	}

	resp, err := h.forecastService.Predict(stock)
	if err != nil {
		log.Printf("[ForecastHandler] Prediction failed for %q: %v", stock, err)
		renderTemplate(w, errorTemplate, map[string]string{"Message": err.Error()})
		return
	}

	http.Redirect(w, r, "/forecast/"+url.PathEscape(resp.Symbol), http.StatusSeeOther)
}

// forecastPageData is everything the result template needs.
type forecastPageData struct {
	Forecast *models.PredictionResponse
	News     *models.NewsResponse

	HasChart      bool
	VisibleMonths []string
	HasPrev       bool
	HasNext       bool
	PrevURL       string
	NextURL       string
	ChartURL      string
}

// HandleForecastPage renders the result page for a symbol. The window query
// arg selects the visible month window; absent means the default window.
func (h *ForecastHandler) HandleForecastPage(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	forecast, err := h.forecastService.GetForecast(symbol)
	if err != nil {
		log.Printf("[ForecastHandler] No forecast for %s: %v", symbol, err)
		http.Error(w, "No forecast available for "+symbol, http.StatusNotFound)
		return
	}

	data := forecastPageData{Forecast: forecast}

	// the prediction backend may already carry the digest; otherwise ask
	// the news backend
	if forecast.Sentiment == "" && len(forecast.Articles) == 0 {
		if news, err := h.forecastService.GetNews(forecast.Symbol); err != nil {
			log.Printf("[ForecastHandler] No news digest for %s: %v", symbol, err)
		} else {
			data.News = news
		}
	}

	if len(forecast.Historical) > 0 {
		view := buildSeriesView(forecast.Historical, r.URL.Query())
		base := "/forecast/" + url.PathEscape(forecast.Symbol)

		data.HasChart = true
		data.VisibleMonths = view.VisibleMonths()
		data.HasPrev = view.HasPrev()
		data.HasNext = view.HasNext()
		data.PrevURL = base + "?window=" + strconv.Itoa(view.Window()-1)
		data.NextURL = base + "?window=" + strconv.Itoa(view.Window()+1)
		data.ChartURL = base + "/chart?window=" + strconv.Itoa(view.Window())
	}

	renderTemplate(w, forecastTemplate, data)
}

// HandleForecastChart serves the standalone chart document the result page
// embeds. Not registered content when the cached result has no series; the
// page simply never links here in that case.
func (h *ForecastHandler) HandleForecastChart(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	forecast, err := h.forecastService.GetForecast(symbol)
	if err != nil {
		http.Error(w, "No forecast available for "+symbol, http.StatusNotFound)
		return
	}
	if len(forecast.Historical) == 0 {
		http.Error(w, "No historical series for "+symbol, http.StatusNotFound)
		return
	}

	view := buildSeriesView(forecast.Historical, r.URL.Query())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotForecast(w, forecast.Symbol, view); err != nil {
		log.Printf("[ForecastHandler] Failed to render chart for %s: %v", symbol, err)
	}
}

// HandlePredictJSON proxies a prediction as raw JSON.
func (h *ForecastHandler) HandlePredictJSON(w http.ResponseWriter, r *http.Request) {
	stock := strings.TrimSpace(r.URL.Query().Get(STOCK_QUERY_ARG))
	if stock == "" {
		http.Error(w, "Missing argument "+STOCK_QUERY_ARG, http.StatusBadRequest)
		return
	}

	resp, err := h.forecastService.Predict(stock)
	if err != nil {
		log.Println("Error running prediction:", err)
		writeJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, resp)
}

// HandleNewsJSON proxies the news digest as raw JSON.
func (h *ForecastHandler) HandleNewsJSON(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	news, err := h.forecastService.GetNews(symbol)
	if err != nil {
		log.Println("Error fetching news digest:", err)
		writeJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, news)
}

// HandleHealth handles GET /health
func (h *ForecastHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy", "message": "Frontend is running"})
}

// buildSeriesView positions a view over the series: default window when the
// arg is absent or unparsable, clamped otherwise.
func buildSeriesView(series []models.Observation, vals url.Values) *chartview.SeriesView {
	view := chartview.NewSeriesView(series)
	if raw := vals.Get(WINDOW_QUERY_ARG); raw != "" {
		if window, err := strconv.Atoi(raw); err == nil {
			view.SetWindow(window)
		}
	}
	return view
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
