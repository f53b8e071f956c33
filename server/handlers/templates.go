package handlers

import (
	"html/template"
	"log"
	"net/http"
)

func renderTemplate(w http.ResponseWriter, t *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		log.Printf("[ForecastHandler] Template %s failed: %v", t.Name(), err)
	}
}

var pageHead = `<head>
<meta charset="utf-8">
<title>Stock Forecast</title>
<style>
body { font-family: Arial, sans-serif; max-width: 860px; margin: 2em auto; color: #222; }
nav a { margin-right: 1em; }
.card { border: 1px solid #ddd; border-radius: 8px; padding: 1em 1.5em; margin: 1em 0; }
.sentiment-positive { color: #0a7d33; font-weight: bold; }
.sentiment-negative { color: #b00020; font-weight: bold; }
.sentiment-neutral { color: #666; font-weight: bold; }
.navbtn { display: inline-block; padding: 0.3em 0.9em; border: 1px solid #888; border-radius: 4px; text-decoration: none; }
.navbtn.disabled { color: #bbb; border-color: #ddd; pointer-events: none; }
iframe { border: none; width: 100%; height: 480px; }
.error { color: #b00020; }
</style>
</head>`

var navBar = `<nav><a href="/">Home</a><a href="/about">About</a></nav>`

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>` + pageHead + `
<body>` + navBar + `
<h1>Stock Price Prediction</h1>
<p>Enter a ticker symbol or company name to get a next-day close forecast.</p>
<form method="POST" action="/predict" class="card">
  <input type="text" name="stock" placeholder="e.g. AAPL or Apple" size="30" required>
  <button type="submit">Predict</button>
</form>
</body>
</html>`))

var aboutTemplate = template.Must(template.New("about").Parse(`<!DOCTYPE html>
<html>` + pageHead + `
<body>` + navBar + `
<h1>About</h1>
<div class="card">
<p>This frontend forwards your ticker to a prediction service and displays the
returned next-day forecast, a historical vs predicted price chart, and a
market-sentiment news digest. The predictive model itself runs behind the
service; nothing is computed here.</p>
</div>
</body>
</html>`))

var errorTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>` + pageHead + `
<body>` + navBar + `
<h1>Prediction failed</h1>
<p class="error">{{.Message}}</p>
<p><a href="/">Try another symbol</a></p>
</body>
</html>`))

var forecastTemplate = template.Must(template.New("forecast").Parse(`<!DOCTYPE html>
<html>` + pageHead + `
<body>` + navBar + `
<h1>{{.Forecast.Symbol}} Forecast</h1>

<div class="card">
  <p><strong>Predicted next-day close:</strong> ${{printf "%.2f" .Forecast.PredictedNextDayClose}}
     &plusmn; {{printf "%.2f" .Forecast.MarginOfError}}</p>
  <p><strong>Last actual close:</strong> ${{printf "%.2f" .Forecast.ActualLastClose}}</p>
  {{if .Forecast.CurrentPrice}}<p><strong>Current price:</strong> ${{printf "%.2f" .Forecast.CurrentPrice}}</p>{{end}}
  {{if .Forecast.Summary}}<p>{{.Forecast.Summary}}</p>{{end}}
</div>

{{if .HasChart}}
<div class="card">
  <iframe src="{{.ChartURL}}"></iframe>
  <p>
    {{if .HasPrev}}<a class="navbtn" href="{{.PrevURL}}">&laquo; Older</a>{{else}}<span class="navbtn disabled">&laquo; Older</span>{{end}}
    Showing {{range $i, $m := .VisibleMonths}}{{if $i}}, {{end}}{{$m}}{{end}}
    {{if .HasNext}}<a class="navbtn" href="{{.NextURL}}">Newer &raquo;</a>{{else}}<span class="navbtn disabled">Newer &raquo;</span>{{end}}
  </p>
</div>
{{end}}

{{if .Forecast.Sentiment}}
<div class="card">
  <p>Market sentiment: <span class="sentiment-{{.Forecast.Sentiment}}">{{.Forecast.Sentiment}}</span></p>
  {{range .Forecast.Articles}}
  <p>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</p>
  {{end}}
</div>
{{else if .News}}
<div class="card">
  <p>Market sentiment: <span class="sentiment-{{.News.Sentiment}}">{{.News.Sentiment}}</span></p>
  {{if .News.Summary}}<p>{{.News.Summary}}</p>{{end}}
  {{range .News.Articles}}
  <p>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</p>
  {{end}}
</div>
{{end}}

<p><a href="/">New prediction</a></p>
</body>
</html>`))
