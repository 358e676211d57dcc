package webui

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"bmiguide.healthguide.org/internal/bmi"
	"bmiguide.healthguide.org/internal/logging"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

var dataTypes = []string{"thresholds", "categories", "scale", "guide", "sample", "config"}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dataStruct := debugData{
		Title:     title,
		Pre:       content,
		DataTypes: dataTypes,
	}

	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// sampleInput reads optional metric weight and height, defaulting to 70 kg and 170 cm.
func sampleInput(r *http.Request) (bmi.Input, error) {
	in := bmi.Input{UnitSystem: bmi.Metric, Weight: 70, Height: 170}
	for key, dst := range map[string]*float64{"weight": &in.Weight, "height": &in.Height} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return in, fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = v
	}
	return in, nil
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "thresholds":
		data = bmi.Thresholds()
		title = "Category Thresholds"
	case "categories":
		tables := make(map[string]bmi.RecommendationSet, len(bmi.Categories))
		for _, c := range bmi.Categories {
			tables[c.String()] = bmi.Recommend(c, 0, 0, 0)
		}
		data = tables
		title = "Category Guidance"
	case "scale":
		data = bmi.BMIScale()
		title = "BMI Scale"
	case "guide":
		data = bmi.UniversalGuide()
		title = "Universal Guide"
	case "sample":
		in, err := sampleInput(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := bmi.Assess(in)
		if err != nil {
			logging.LogError(webUI.Logger, "sample assessment failed", err,
				slog.String("component", "webui"))
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		data = res
		title = fmt.Sprintf("Sample Assessment (%g kg, %g cm)", in.Weight, in.Height)
	case "config":
		cfg := webUI.Config
		cfg.ApiKeys = nil // never echo keys
		data = cfg
		title = "Server Configuration"
	default:
		data = map[string]interface{}{
			"error": "Please use one of the following dataType values.",
			"types": dataTypes,
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
