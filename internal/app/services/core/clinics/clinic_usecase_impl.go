package clinics

import (
	"context"
	"orca-service/internal/app/contracts"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/mapper"
	"orca-service/internal/pkg/tidepool_dto"
	"orca-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type clinicUsecase struct {
	ClinicClient contracts.ClinicTidepoolClient
	Log          *zap.Logger
}

func NewClinicUsecase(clinicClient contracts.ClinicTidepoolClient, logger *zap.Logger) contracts.ClinicUsecase {
	return &clinicUsecase{
		ClinicClient: clinicClient,
		Log:          logger,
	}
}

// SearchClinics looks share codes and clinic ids up directly and sends any
// other term to the API search. An empty term finds nothing.
func (uc *clinicUsecase) SearchClinics(ctx context.Context, search string, pagination *requests.Pagination) ([]responses.ClinicSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicUsecase.SearchClinics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchKey, search),
	)

	search = strings.TrimSpace(search)
	var (
		clinics []tidepool_dto.Clinic
		err     error
	)
	switch utils.ClassifySearchTerm(search) {
	case utils.SearchKindEmpty:
		return []responses.ClinicSummary{}, nil
	case utils.SearchKindShareCode:
		clinics, err = single(uc.ClinicClient.FindClinicByShareCode(ctx, strings.ToUpper(search)))
	case utils.SearchKindObjectID:
		clinics, err = single(uc.ClinicClient.FindClinicByID(ctx, search))
	default:
		clinics, err = uc.ClinicClient.FindAll(ctx, &requests.ListQuery{
			Search: search,
			Offset: pagination.Offset(),
			Limit:  pagination.PageSize,
		})
	}
	if err != nil {
		uc.Log.Error("clinicUsecase.SearchClinics error calling ClinicClient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	results := make([]responses.ClinicSummary, 0, len(clinics))
	for i := range clinics {
		results = append(results, mapper.ToClinicSummary(&clinics[i]))
	}

	uc.Log.Info("clinicUsecase.SearchClinics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(results)),
	)
	return results, nil
}

func (uc *clinicUsecase) FindClinicDetail(ctx context.Context, clinicID string) (*responses.ClinicDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicUsecase.FindClinicDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	clinic, err := uc.ClinicClient.FindClinicByID(ctx, clinicID)
	if err != nil {
		uc.Log.Error("clinicUsecase.FindClinicDetail error calling ClinicClient.FindClinicByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	detail := mapper.ToClinicDetail(clinic)
	uc.Log.Info("clinicUsecase.FindClinicDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)
	return &detail, nil
}

// single turns a direct lookup into a result list, treating not found as no
// results.
func single(clinic *tidepool_dto.Clinic, err error) ([]tidepool_dto.Clinic, error) {
	if err != nil {
		if exceptions.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return []tidepool_dto.Clinic{*clinic}, nil
}
