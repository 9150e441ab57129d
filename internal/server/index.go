package server

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"cryptopulse-dashboard/config"
	"cryptopulse-dashboard/internal/dashboard"
	"cryptopulse-dashboard/lib/helpers"
	"cryptopulse-dashboard/lib/translation"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"currency": helpers.FormatCurrencyUS,
	"large":    helpers.FormatLargeNumber,
	"percent":  helpers.FormatPercent,
	"upper":    strings.ToUpper,
	"t":        translation.Translate,
}).Parse(indexHTML))

type indexView struct {
	dashboard.Snapshot
	UpdatedAgo     string
	RefreshSeconds int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	view := indexView{
		Snapshot:       s.state.Snapshot(),
		RefreshSeconds: config.GetInt("refresh_seconds"),
	}
	view.UpdatedAgo = updatedAgo(view.LastUpdated)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, view); err != nil {
		log.Errorf("Failed to render dashboard page: %v", err)
	}
}

func updatedAgo(t time.Time) string {
	return humanize.Time(t)
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
<title>CryptoPulse</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; background: #1e1e1e; color: #e0e0e0; margin: 0; padding: 24px; }
h1 { margin: 0 0 4px; }
.updated { color: #888; margin-bottom: 24px; }
.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 16px; }
.card { background: #2a2a2a; border-radius: 10px; padding: 16px; }
.card h2 { margin: 0 0 8px; font-size: 1.1em; }
.card .sym { color: #888; font-weight: normal; }
.price { font-size: 1.5em; margin-bottom: 4px; }
.up { color: #00c851; }
.down { color: #ff4444; }
.row { display: flex; justify-content: space-between; color: #aaa; font-size: 0.9em; margin-top: 4px; }
.alerts { margin-top: 32px; }
.alert { background: #332a1e; border-left: 4px solid #ffbb33; border-radius: 6px; padding: 10px 14px; margin-bottom: 8px; }
.alert time { color: #888; font-size: 0.85em; margin-left: 8px; }
.loading { color: #888; font-style: italic; }
</style>
</head>
<body>
<h1>CryptoPulse</h1>
<p class="updated">{{t "Last updated"}}: {{.UpdatedAgo}}</p>
{{if .Loading}}
<p class="loading">{{t "Loading market data…"}}</p>
{{else}}
<div class="cards">
{{range .Assets}}
<div class="card">
<h2>{{.Name}} <span class="sym">{{upper .Symbol}}</span></h2>
<div class="price">{{currency .Price}}</div>
<div class="{{if ge .Change24h 0.0}}up{{else}}down{{end}}">{{percent .Change24h}}</div>
<div class="row"><span>{{t "Market cap"}}</span><span>{{large .MarketCap}}</span></div>
<div class="row"><span>{{t "24h volume"}}</span><span>{{large .TotalVolume}}</span></div>
<div class="row"><span>{{t "24h high"}}</span><span>{{currency .High24h}}</span></div>
<div class="row"><span>{{t "24h low"}}</span><span>{{currency .Low24h}}</span></div>
</div>
{{end}}
</div>
<p><img src="/chart.png" alt="24h change overview" style="max-width:100%"></p>
{{end}}
<div class="alerts">
<h2>{{t "Recent alerts"}}</h2>
{{if .Alerts}}
{{range .Alerts}}
<div class="alert">{{.Message}}<time>{{.CreatedAt.Format "15:04:05"}}</time></div>
{{end}}
{{else}}
<p class="loading">{{t "No alerts yet."}}</p>
{{end}}
</div>
</body>
</html>
`
