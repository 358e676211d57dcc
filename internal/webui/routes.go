package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"bmiguide.healthguide.org/internal/app"
)

// WebUI serves the developer pages that dump the static guidance tables.
type WebUI struct {
	*app.Application
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}
