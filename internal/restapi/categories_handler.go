package restapi

import (
	"net/http"
	"strings"

	"bmiguide.healthguide.org/internal/bmi"
	"bmiguide.healthguide.org/internal/models"
	"bmiguide.healthguide.org/internal/utils"
)

func (api *RestAPI) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewListResponse(models.AllCategoryReferences(), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}

func (api *RestAPI) categoryHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.ToLower(utils.ExtractIDFromParams(r, "id"))

	if err := utils.ValidateSlug(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	category, err := bmi.ParseCategory(id)
	if err != nil {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(models.NewCategoryReference(category), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
