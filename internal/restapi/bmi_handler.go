package restapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"bmiguide.healthguide.org/internal/bmi"
	"bmiguide.healthguide.org/internal/logging"
	"bmiguide.healthguide.org/internal/models"
	"bmiguide.healthguide.org/internal/utils"
)

const maxBodyBytes = 1 << 16

// bmiRequest is the JSON body accepted by POST /api/v1/bmi.json.
// Pointers distinguish a missing field from an explicit zero.
type bmiRequest struct {
	UnitSystem string   `json:"unitSystem"`
	Weight     *float64 `json:"weight"`
	Height     *float64 `json:"height"`
	Feet       *float64 `json:"feet"`
	Inches     *float64 `json:"inches"`
}

// values maps the body onto the query parameter names so both forms share one parser.
func (req bmiRequest) values() url.Values {
	params := url.Values{}
	if req.UnitSystem != "" {
		params.Set("unitSystem", req.UnitSystem)
	}
	set := func(key string, v *float64) {
		if v != nil {
			params.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	set("weight", req.Weight)
	set("height", req.Height)
	set("feet", req.Feet)
	set("inches", req.Inches)
	return params
}

func (api *RestAPI) bmiHandler(w http.ResponseWriter, r *http.Request) {
	in, fieldErrors := utils.ParseInputParams(r.URL.Query())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	api.sendAssessment(w, r, in)
}

func (api *RestAPI) bmiPostHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer logging.SafeCloseWithLogging(r.Body, api.logger(r), "bmi_request_body")

	var req bmiRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		message := "request body must be a JSON object"
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			message = "request body too large"
		} else if errors.Is(err, io.EOF) {
			message = "request body must not be empty"
		}
		api.validationErrorResponse(w, r, map[string][]string{"body": {message}})
		return
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		api.validationErrorResponse(w, r, map[string][]string{"body": {"request body must contain a single JSON object"}})
		return
	}

	in, fieldErrors := utils.ParseInputParams(req.values())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	api.sendAssessment(w, r, in)
}

func (api *RestAPI) sendAssessment(w http.ResponseWriter, r *http.Request, in bmi.Input) {
	res, err := bmi.Assess(in)
	if err != nil {
		api.assessmentErrorResponse(w, r, err)
		return
	}

	api.Metrics.ObserveAssessment(res.Category.String(), in.UnitSystem.String())
	logging.LogOperation(logging.FromContext(r.Context()), "assessment_computed",
		slog.String("category", res.Category.String()),
		slog.String("unit_system", in.UnitSystem.String()),
		slog.String("component", "bmi"))

	response := models.NewEntryResponse(
		models.NewAssessment(in.UnitSystem, res),
		models.NewCategoryReferences(res.Category),
	)
	api.sendResponse(w, r, response)
}
