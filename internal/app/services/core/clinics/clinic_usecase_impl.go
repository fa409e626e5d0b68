package clinics

import (
	"context"
	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/utils"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type clinicUsecase struct {
	ClinicRepository contracts.ClinicRepository
	Storage          contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	clinicUsecaseInstance contracts.ClinicUsecase
	onceClinicUsecase     sync.Once
)

func NewClinicUsecase(
	clinicRepository contracts.ClinicRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ClinicUsecase {
	onceClinicUsecase.Do(func() {
		clinicUsecaseInstance = &clinicUsecase{
			ClinicRepository: clinicRepository,
			Storage:          storage,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return clinicUsecaseInstance
}

func (uc *clinicUsecase) GetMyClinic(ctx context.Context, clinicID string) (*responses.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("clinicUsecase.GetMyClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	clinic, err := uc.findClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	return clinic.ConvertToResponse(), nil
}

// UploadLogo stores the image under a fixed key per clinic, so a new upload
// replaces the previous logo.
func (uc *clinicUsecase) UploadLogo(ctx context.Context, request *requests.UploadClinicLogo) (*responses.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("clinicUsecase.UploadLogo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
	)

	ext, ok := utils.ImageExtension(request.ContentType)
	if !ok {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("content type %s", request.ContentType))
	}

	limit := int64(uc.InternalConfig.Minio.LogoMaxUploadSizeInMB) << 20
	if request.Size > limit {
		return nil, exceptions.ErrFileTooLarge(nil, request.Size, limit)
	}

	clinic, err := uc.findClinic(ctx, request.ClinicID)
	if err != nil {
		return nil, err
	}

	bucket := uc.InternalConfig.Minio.LogoBucketName
	objectName := fmt.Sprintf(constvars.StorageClinicLogoKeyFormat, clinic.ID, ext)
	_, err = uc.Storage.UploadFile(ctx, request.File, request.Size, request.ContentType, bucket, objectName)
	if err != nil {
		uc.Log.Error("clinicUsecase.UploadLogo error calling Storage.UploadFile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucket),
			zap.Error(err),
		)
		return nil, err
	}

	logoURL := uc.Storage.PublicObjectURL(bucket, objectName)
	err = uc.ClinicRepository.UpdateLogo(ctx, clinic.ID, logoURL)
	if err != nil {
		uc.Log.Error("clinicUsecase.UploadLogo error calling ClinicRepository.UpdateLogo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	clinic.LogoURL = logoURL
	uc.Log.Info("clinicUsecase.UploadLogo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return clinic.ConvertToResponse(), nil
}

// Activate marks the clinic active on plan. It joins the caller's transaction when there is one.
func (uc *clinicUsecase) Activate(ctx context.Context, clinicID string, plan models.PlanTier) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("clinicUsecase.Activate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingPlanKey, string(plan)),
	)

	err := uc.ClinicRepository.Activate(ctx, clinicID, plan)
	if err != nil {
		uc.Log.Error("clinicUsecase.Activate error calling ClinicRepository.Activate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *clinicUsecase) findClinic(ctx context.Context, clinicID string) (*models.Clinic, error) {
	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		uc.Log.Error("clinicUsecase error calling ClinicRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "clinic", clinicID)
	}
	return clinic, nil
}
