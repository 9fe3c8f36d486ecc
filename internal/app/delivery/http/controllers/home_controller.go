package controllers

import (
	"net/http"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HomeController struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
}

func NewHomeController(logger *zap.Logger, sessionService contracts.SessionService) *HomeController {
	return &HomeController{
		Log:            logger,
		SessionService: sessionService,
	}
}

func (ctrl *HomeController) Home(w http.ResponseWriter, r *http.Request) {
	identity, _ := models.IdentityFromContext(r.Context())

	home := &responses.Home{
		Identity:         identity,
		RecentUsers:      ctrl.SessionService.RecentUsers(r),
		RecentClinics:    ctrl.SessionService.RecentClinics(r),
		RecentClinicians: ctrl.SessionService.RecentClinicians(r),
		RecentPatients:   ctrl.SessionService.RecentPatients(r),
	}
	toast := popToast(ctrl.Log, ctrl.SessionService, w, r)

	utils.BuildSuccessResponseWithToast(w, constvars.StatusOK, constvars.HomeLoadedSuccessfully, toast, home)
}
