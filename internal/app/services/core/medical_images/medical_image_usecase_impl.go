package medical_images

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
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type medicalImageUsecase struct {
	MedicalImageRepository contracts.MedicalImageRepository
	PatientRepository      contracts.PatientRepository
	Storage                contracts.Storage
	AIAnalysisService      contracts.AIAnalysisService
	ResourceLimiter        contracts.ResourceLimiter
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	medicalImageUsecaseInstance contracts.MedicalImageUsecase
	onceMedicalImageUsecase     sync.Once
)

var timeNow = time.Now

func NewMedicalImageUsecase(
	medicalImageRepository contracts.MedicalImageRepository,
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	aiAnalysisService contracts.AIAnalysisService,
	resourceLimiter contracts.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MedicalImageUsecase {
	onceMedicalImageUsecase.Do(func() {
		medicalImageUsecaseInstance = &medicalImageUsecase{
			MedicalImageRepository: medicalImageRepository,
			PatientRepository:      patientRepository,
			Storage:                storage,
			AIAnalysisService:      aiAnalysisService,
			ResourceLimiter:        resourceLimiter,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return medicalImageUsecaseInstance
}

func (uc *medicalImageUsecase) Upload(ctx context.Context, request *requests.UploadMedicalImage) (*responses.MedicalImage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalImageUsecase.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	contentType, ext, ok := utils.MedicalImageExtension(request.ContentType, request.FileName)
	if !ok {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("content type %s", request.ContentType))
	}

	limit := int64(uc.InternalConfig.Minio.MedicalImageMaxUploadSizeInMB) << 20
	if request.Size > limit {
		return nil, exceptions.ErrFileTooLarge(nil, request.Size, limit)
	}

	if _, err := uc.findPatient(ctx, request.ClinicID, request.PatientID); err != nil {
		return nil, err
	}

	bucket := uc.InternalConfig.Minio.MedicalImageBucketName
	objectKey := fmt.Sprintf(constvars.StorageMedicalImageKeyFormat, request.ClinicID, request.PatientID, uuid.NewString(), ext)
	_, err := uc.Storage.UploadFile(ctx, request.File, request.Size, contentType, bucket, objectKey)
	if err != nil {
		uc.Log.Error("medicalImageUsecase.Upload error calling Storage.UploadFile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucket),
			zap.Error(err),
		)
		return nil, err
	}

	image, err := uc.MedicalImageRepository.Create(ctx, &models.MedicalImage{
		ClinicID:    request.ClinicID,
		PatientID:   request.PatientID,
		UploadedBy:  request.UploadedBy,
		Kind:        request.Kind,
		ObjectKey:   objectKey,
		ContentType: contentType,
		SizeBytes:   request.Size,
		Notes:       request.Notes,
	})
	if err != nil {
		uc.Log.Error("medicalImageUsecase.Upload error calling MedicalImageRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectKey),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "medical_image_uploaded", requestID,
		zap.String(constvars.LoggingClinicIDKey, image.ClinicID),
		zap.String(constvars.LoggingMedicalImageIDKey, image.ID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)
	response := image.ConvertToResponse()
	return &response, nil
}

func (uc *medicalImageUsecase) ListByPatient(ctx context.Context, clinicID, patientID string) ([]responses.MedicalImage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalImageUsecase.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := uc.findPatient(ctx, clinicID, patientID); err != nil {
		return nil, err
	}

	images, err := uc.MedicalImageRepository.FindAllByPatientID(ctx, clinicID, patientID)
	if err != nil {
		uc.Log.Error("medicalImageUsecase.ListByPatient error calling MedicalImageRepository.FindAllByPatientID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.MedicalImage, 0, len(images))
	for i := range images {
		result = append(result, images[i].ConvertToResponse())
	}
	return result, nil
}

func (uc *medicalImageUsecase) GetURL(ctx context.Context, clinicID, imageID string) (*responses.MedicalImageURL, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalImageUsecase.GetURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicalImageIDKey, imageID),
	)

	image, err := uc.findImage(ctx, clinicID, imageID)
	if err != nil {
		return nil, err
	}

	url, expiresAt, err := uc.presign(ctx, image)
	if err != nil {
		return nil, err
	}
	return &responses.MedicalImageURL{
		ID:        image.ID,
		URL:       url,
		ExpiresAt: expiresAt,
	}, nil
}

// Analyze sends a short-lived link to the image to the AI provider and stores
// the returned text on the image. Each clinic gets a daily number of analyses.
func (uc *medicalImageUsecase) Analyze(ctx context.Context, request *requests.AnalyzeMedicalImage) (*responses.MedicalImageAnalysis, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalImageUsecase.Analyze called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingMedicalImageIDKey, request.ImageID),
	)

	image, err := uc.findImage(ctx, request.ClinicID, request.ImageID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkAnalysisQuota(ctx, request.ClinicID); err != nil {
		return nil, err
	}

	url, _, err := uc.presign(ctx, image)
	if err != nil {
		return nil, err
	}

	result, err := uc.AIAnalysisService.AnalyzeImage(ctx, url, request.Prompt)
	if err != nil {
		uc.Log.Error("medicalImageUsecase.Analyze error calling AIAnalysisService.AnalyzeImage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	analyzedAt := timeNow().UTC()
	err = uc.MedicalImageRepository.UpdateAnalysis(ctx, request.ClinicID, image.ID, result, analyzedAt)
	if err != nil {
		uc.Log.Error("medicalImageUsecase.Analyze error calling MedicalImageRepository.UpdateAnalysis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "medical_image_analyzed", requestID,
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingMedicalImageIDKey, image.ID),
	)
	return &responses.MedicalImageAnalysis{
		ImageID:    image.ID,
		Model:      uc.AIAnalysisService.Model(),
		Result:     result,
		AnalyzedAt: analyzedAt,
	}, nil
}

func (uc *medicalImageUsecase) checkAnalysisQuota(ctx context.Context, clinicID string) error {
	quota := uc.InternalConfig.AIAnalysis.DailyQuotaPerClinic
	if quota <= 0 {
		return nil
	}

	output, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &models.ResourceLimitInput{
		ResourceName:      clinicID,
		LimiterGroupName:  constvars.RateLimiterGroupAIAnalysis,
		WindowDurationSec: constvars.RateLimiterWindowOneDayInSecond,
		MaxQuota:          quota,
	})
	if err != nil {
		uc.Log.Error("medicalImageUsecase.Analyze error calling ResourceLimiter.ApplyResourceLimiter",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return err
	}
	if !output.Allowed {
		return exceptions.ErrQuotaExceeded(nil, constvars.RateLimiterGroupAIAnalysis, clinicID, output.RetryAfterSecs)
	}
	return nil
}

func (uc *medicalImageUsecase) presign(ctx context.Context, image *models.MedicalImage) (string, time.Time, error) {
	expiry := time.Duration(uc.InternalConfig.App.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	bucket := uc.InternalConfig.Minio.MedicalImageBucketName
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucket, image.ObjectKey, expiry)
	if err != nil {
		uc.Log.Error("medicalImageUsecase error calling Storage.GetObjectUrlWithExpiryTime",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingObjectKey, image.ObjectKey),
			zap.Error(err),
		)
		return "", time.Time{}, err
	}
	return url, timeNow().Add(expiry).UTC(), nil
}

func (uc *medicalImageUsecase) findImage(ctx context.Context, clinicID, imageID string) (*models.MedicalImage, error) {
	image, err := uc.MedicalImageRepository.FindByID(ctx, clinicID, imageID)
	if err != nil {
		uc.Log.Error("medicalImageUsecase error calling MedicalImageRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if image == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "medical image", imageID)
	}
	return image, nil
}

func (uc *medicalImageUsecase) findPatient(ctx context.Context, clinicID, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, clinicID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "patient", patientID)
	}
	return patient, nil
}
