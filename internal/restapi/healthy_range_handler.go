package restapi

import (
	"net/http"

	"bmiguide.healthguide.org/internal/bmi"
	"bmiguide.healthguide.org/internal/models"
	"bmiguide.healthguide.org/internal/utils"
)

func (api *RestAPI) healthyRangeHandler(w http.ResponseWriter, r *http.Request) {
	in, fieldErrors := utils.ParseHeightParams(r.URL.Query())
	if len(fieldErrors) == 0 {
		fieldErrors = utils.ValidateHeight(in)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	m := bmi.ToMeasurement(in)
	response := models.NewEntryResponse(models.NewHealthyRangeEntry(m.HeightCm), models.NewCategoryReferences(bmi.Normal))
	api.sendResponse(w, r, response)
}
