package handlers

import (
	"fmt"
	"html/template"

	"energy-viewer/feedback"
	"energy-viewer/models"
	services "energy-viewer/service"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 20px; }
form label { display: inline-block; width: 190px; }
form div { margin-bottom: 6px; }
#status { min-height: 1.4em; margin: 10px 0; }
#status.error { color: #B00020; }
#status.info { color: #444444; }
iframe { border: 0; }
@keyframes highlight-pulse {
  0% { background-color: var(--pulse-color); }
  100% { background-color: transparent; }
}
</style>
</head>
<body>
<form method="post" action="/smooth">
  <input type="hidden" name="{{.SessionField}}" value="{{.SessionID}}">
  <input type="hidden" name="{{.DataField}}" value="{{.Data}}">
{{- range .Fields}}
  <div>
    <label for="{{.Name}}">{{.Label}}</label>
    <input type="text" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}"{{if .Highlighted}} class="highlighted" style="{{.Style}}"{{end}}>
  </div>
{{- end}}
  <button type="submit">Plot</button>
  <button type="submit" formaction="/optimize">Optimize</button>
</form>
<div id="status" class="{{.StatusClass}}">{{.Status.Message}}</div>
<iframe id="chart" title="{{.Title}}" style="{{.FrameStyle}}" srcdoc="{{.ChartHTML}}"></iframe>
</body>
</html>
`))

type fieldData struct {
	Name        string
	Label       string
	Value       string
	Highlighted bool
	Style       template.CSS
}

type pageData struct {
	Title        string
	SessionField string
	SessionID    string
	DataField    string
	Data         string
	Fields       []fieldData
	Status       services.Status
	StatusClass  string
	FrameStyle   template.CSS
	ChartHTML    string
}

func newPageData(view *services.View, sessionField string) pageData {
	highlights := make(map[string]feedback.Highlight, len(view.Highlights))
	for _, h := range view.Highlights {
		highlights[h.Field] = h
	}

	p := view.State.Params
	fields := []fieldData{
		{Name: models.SMOOTHING_FACTOR_FIELD, Label: "Smoothing Factor", Value: p.SmoothingFactor},
		{Name: models.TREND_SMOOTHING_FACTOR_FIELD, Label: "Trend Smoothing Factor", Value: p.TrendSmoothingFactor},
		{Name: models.SEASON_SMOOTHING_FACTOR_FIELD, Label: "Season Smoothing Factor", Value: p.SeasonSmoothingFactor},
		{Name: models.SEASON_LENGTH_FIELD, Label: "Season Length", Value: p.SeasonLength},
		{Name: models.VALUES_TO_FORECAST_FIELD, Label: "Values to Forecast", Value: p.ValuesToForecast},
	}
	for i := range fields {
		if h, ok := highlights[fields[i].Name]; ok {
			fields[i].Highlighted = true
			fields[i].Style = template.CSS(fmt.Sprintf(
				"--pulse-color: %s; animation: highlight-pulse %s ease-out 1;", h.Color, h.Duration))
		}
	}

	statusClass := ""
	switch view.Status.Kind {
	case services.StatusError:
		statusClass = "error"
	case services.StatusInfo:
		statusClass = "info"
	}

	return pageData{
		Title:        view.Spec.Title,
		SessionField: sessionField,
		SessionID:    view.State.ID,
		DataField:    models.DATA_FIELD,
		Data:         view.State.Dataset.String(),
		Fields:       fields,
		Status:       view.Status,
		StatusClass:  statusClass,
		FrameStyle: template.CSS(fmt.Sprintf(
			"width: calc(%s + 40px); height: calc(%s + 40px);", view.Spec.Width, view.Spec.Height)),
		ChartHTML: string(view.ChartHTML),
	}
}
