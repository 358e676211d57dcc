package restapi

import (
	"net/http"
	"time"

	"bmiguide.healthguide.org/internal/bmi"
	"bmiguide.healthguide.org/internal/models"
)

func (api *RestAPI) scaleHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewEntryResponse(bmi.BMIScale(), models.NewCategoryReferences(bmi.Categories[:]...))
	api.sendResponse(w, r, response)
}

func (api *RestAPI) guideHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewEntryResponse(bmi.UniversalGuide(), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewEntryResponse(models.NewCurrentTimeModel(time.Now()), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) healthzHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewOKResponse(map[string]string{"status": "ok"}))
}
