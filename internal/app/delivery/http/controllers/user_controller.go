package controllers

import (
	"fmt"
	"net/http"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

// SearchUsers looks a user up by email or id. A single hit redirects to the
// user page; an empty search only lists the recently viewed users.
func (ctrl *UserController) SearchUsers(w http.ResponseWriter, r *http.Request) {
	search := utils.GetSearchQuery(r)
	result := &responses.UserSearch{
		Search:  search,
		Results: []responses.UserSummary{},
		Recent:  ctrl.SessionService.RecentUsers(r),
	}
	if search == "" {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchUsersSuccessfully, result)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	users, err := ctrl.UserUsecase.SearchUsers(ctx, search)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	if user, ok := utils.SingleMatch(users); ok {
		utils.BuildRedirectResponse(w, r, fmt.Sprintf(constvars.AppPathUser, user.UserID))
		return
	}

	result.Results = users
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchUsersSuccessfully, result)
}

func (ctrl *UserController) FindUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, constvars.URLParamUserID)
	if err := utils.ValidateUrlParamID(userID, constvars.URLParamUserID, utils.IsTidepoolUserID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.FindUserDetail(ctx, userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	err = ctrl.SessionService.PushRecentUser(w, r, models.RecentUser{
		UserID:   result.User.UserID,
		Email:    result.User.Email,
		FullName: result.User.FullName,
		Kind:     result.User.Kind,
	})
	logRecentPushError(ctrl.Log, r, "UserController.FindUser", err)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUserSuccessfully, result)
}

// ExportUserData streams the user's data export as a download. Failures are
// written as plain text since the browser is expecting a file.
func (ctrl *UserController) ExportUserData(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.DataExport{
		UserID:    chi.URLParam(r, constvars.URLParamUserID),
		Format:    query.Get(constvars.URLQueryParamFormat),
		BGUnits:   query.Get(constvars.URLQueryParamBGUnits),
		StartDate: query.Get(constvars.URLQueryParamStartDate),
		EndDate:   query.Get(constvars.URLQueryParamEndDate),
	}
	if request.Format == "" {
		request.Format = constvars.ExportFormatJSON
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildPlainTextErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// No handler deadline here: the upstream client bounds the wait for
	// headers and the copy runs until the client goes away.
	export, err := ctrl.UserUsecase.ExportUserData(r.Context(), request)
	if err != nil {
		buildUsecasePlainTextErrorResponse(ctrl.Log, w, err)
		return
	}
	defer export.Body.Close()

	written, err := utils.BuildFileStreamResponse(w, export.ContentType, export.FileName, export.Body)
	if err != nil {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		ctrl.Log.Error("UserController.ExportUserData error streaming export",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Int64(constvars.LoggingBytesWrittenKey, written),
			zap.Error(err),
		)
	}
}
