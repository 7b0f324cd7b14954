package controllers

import (
	"context"
	"net/http"

	"github.com/nimbushq/auth-service/internal/app"
	"github.com/nimbushq/auth-service/internal/dtos"
	"github.com/nimbushq/auth-service/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{
		app: app,
	}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("Database unreachable")
		utils.RespondError(w, http.StatusServiceUnavailable, "Database unreachable", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
