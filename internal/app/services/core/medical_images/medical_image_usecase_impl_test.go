package medical_images

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/contracts/mocks"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type medicalImageTestDeps struct {
	images   *mocks.MedicalImageRepository
	patients *mocks.PatientRepository
	storage  *mocks.Storage
	ai       *mocks.AIAnalysisService
	limiter  *mocks.ResourceLimiter
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestMedicalImageUsecase(t *testing.T, dailyQuota int) (*medicalImageUsecase, *medicalImageTestDeps) {
	previous := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = previous })

	deps := &medicalImageTestDeps{
		images:   new(mocks.MedicalImageRepository),
		patients: new(mocks.PatientRepository),
		storage:  new(mocks.Storage),
		ai:       new(mocks.AIAnalysisService),
		limiter:  new(mocks.ResourceLimiter),
	}
	uc := &medicalImageUsecase{
		MedicalImageRepository: deps.images,
		PatientRepository:      deps.patients,
		Storage:                deps.storage,
		AIAnalysisService:      deps.ai,
		ResourceLimiter:        deps.limiter,
		InternalConfig: &config.InternalConfig{
			App: config.App{MinioPreSignedUrlObjectExpiryTimeInHours: 2},
			Minio: config.AppMinio{
				MedicalImageBucketName:        "medical-images",
				MedicalImageMaxUploadSizeInMB: 5,
			},
			AIAnalysis: config.AppAIAnalysis{DailyQuotaPerClinic: dailyQuota},
		},
		Log: zap.NewNop(),
	}
	return uc, deps
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestMedicalImageUsecase_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores object under clinic and patient", func(t *testing.T) {
		uc, deps := newTestMedicalImageUsecase(t, 0)
		deps.patients.On("FindByID", ctx, "clinic-1", "patient-1").Return(&models.Patient{ID: "patient-1"}, nil)
		deps.storage.On("UploadFile", ctx, mock.Anything, int64(4), "image/png", "medical-images", mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "medical-images/clinic-1/patient-1/") && strings.HasSuffix(key, ".png")
		})).Return("ok", nil)
		deps.images.On("Create", ctx, mock.MatchedBy(func(image *models.MedicalImage) bool {
			return image.Kind == "xray" && image.UploadedBy == "dentist-1" && strings.HasSuffix(image.ObjectKey, ".png")
		})).Return(func(_ context.Context, image *models.MedicalImage) *models.MedicalImage {
			image.ID = "image-1"
			return image
		}, nil)

		image, err := uc.Upload(ctx, &requests.UploadMedicalImage{
			ClinicID:    "clinic-1",
			PatientID:   "patient-1",
			UploadedBy:  "dentist-1",
			Kind:        "xray",
			FileName:    "bitewing.png",
			ContentType: "image/png",
			Size:        4,
			File:        bytes.NewReader([]byte("data")),
		})

		require.NoError(t, err)
		assert.Equal(t, "image-1", image.ID)
		assert.Equal(t, "image/png", image.ContentType)
		deps.storage.AssertExpectations(t)
	})

	t.Run("dicom recognised by file name", func(t *testing.T) {
		uc, deps := newTestMedicalImageUsecase(t, 0)
		deps.patients.On("FindByID", ctx, "clinic-1", "patient-1").Return(&models.Patient{ID: "patient-1"}, nil)
		deps.storage.On("UploadFile", ctx, mock.Anything, int64(4), "application/dicom", "medical-images", mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, ".dcm")
		})).Return("ok", nil)
		deps.images.On("Create", ctx, mock.Anything).Return(&models.MedicalImage{ID: "image-2", ContentType: "application/dicom"}, nil)

		image, err := uc.Upload(ctx, &requests.UploadMedicalImage{
			ClinicID:    "clinic-1",
			PatientID:   "patient-1",
			FileName:    "scan.DCM",
			ContentType: "application/octet-stream",
			Size:        4,
		})

		require.NoError(t, err)
		assert.Equal(t, "application/dicom", image.ContentType)
	})

	t.Run("unsupported type", func(t *testing.T) {
		uc, deps := newTestMedicalImageUsecase(t, 0)

		_, err := uc.Upload(ctx, &requests.UploadMedicalImage{FileName: "notes.txt", ContentType: "text/plain", Size: 4})

		assert.Equal(t, 400, statusCode(t, err))
		deps.storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("too large", func(t *testing.T) {
		uc, _ := newTestMedicalImageUsecase(t, 0)

		_, err := uc.Upload(ctx, &requests.UploadMedicalImage{FileName: "a.jpg", ContentType: "image/jpeg", Size: 6 << 20})

		assert.Equal(t, 413, statusCode(t, err))
	})
}

func TestMedicalImageUsecase_GetURL(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestMedicalImageUsecase(t, 0)
	deps.images.On("FindByID", ctx, "clinic-1", "image-1").Return(&models.MedicalImage{ID: "image-1", ObjectKey: "medical-images/clinic-1/patient-1/a.png"}, nil)
	deps.storage.On("GetObjectUrlWithExpiryTime", ctx, "medical-images", "medical-images/clinic-1/patient-1/a.png", 2*time.Hour).Return("https://minio/signed", nil)

	url, err := uc.GetURL(ctx, "clinic-1", "image-1")

	require.NoError(t, err)
	assert.Equal(t, "https://minio/signed", url.URL)
	assert.Equal(t, fixedNow.Add(2*time.Hour), url.ExpiresAt)
}

func TestMedicalImageUsecase_ListByPatient(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestMedicalImageUsecase(t, 0)
	deps.patients.On("FindByID", ctx, "clinic-1", "patient-1").Return(nil, nil)

	_, err := uc.ListByPatient(ctx, "clinic-1", "patient-1")

	assert.Equal(t, 404, statusCode(t, err))
	deps.images.AssertNotCalled(t, "FindAllByPatientID", mock.Anything, mock.Anything, mock.Anything)
}

func TestMedicalImageUsecase_Analyze(t *testing.T) {
	ctx := context.Background()
	image := &models.MedicalImage{ID: "image-1", ObjectKey: "medical-images/clinic-1/patient-1/a.png"}
	request := &requests.AnalyzeMedicalImage{ClinicID: "clinic-1", ImageID: "image-1", Prompt: "look for caries"}
	quotaInput := mock.MatchedBy(func(in *models.ResourceLimitInput) bool {
		return in.ResourceName == "clinic-1" && in.LimiterGroupName == "ai-analysis" && in.WindowDurationSec == 86400 && in.MaxQuota == 3
	})

	t.Run("stores analysis result", func(t *testing.T) {
		uc, deps := newTestMedicalImageUsecase(t, 3)
		deps.images.On("FindByID", ctx, "clinic-1", "image-1").Return(image, nil)
		deps.limiter.On("ApplyResourceLimiter", ctx, quotaInput).Return(&models.ResourceLimitOutput{Allowed: true}, nil)
		deps.storage.On("GetObjectUrlWithExpiryTime", ctx, "medical-images", image.ObjectKey, 2*time.Hour).Return("https://minio/signed", nil)
		deps.ai.On("AnalyzeImage", ctx, "https://minio/signed", "look for caries").Return("No caries detected.", nil)
		deps.ai.On("Model").Return("gpt-4o-mini")
		deps.images.On("UpdateAnalysis", ctx, "clinic-1", "image-1", "No caries detected.", fixedNow).Return(nil)

		analysis, err := uc.Analyze(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, "No caries detected.", analysis.Result)
		assert.Equal(t, "gpt-4o-mini", analysis.Model)
		assert.Equal(t, fixedNow, analysis.AnalyzedAt)
		deps.images.AssertExpectations(t)
	})

	t.Run("quota exhausted", func(t *testing.T) {
		uc, deps := newTestMedicalImageUsecase(t, 3)
		deps.images.On("FindByID", ctx, "clinic-1", "image-1").Return(image, nil)
		deps.limiter.On("ApplyResourceLimiter", ctx, quotaInput).Return(&models.ResourceLimitOutput{Allowed: false, RetryAfterSecs: 3600}, nil)

		_, err := uc.Analyze(ctx, request)

		assert.Equal(t, 429, statusCode(t, err))
		assert.Contains(t, err.Error(), "3600")
		deps.ai.AssertNotCalled(t, "AnalyzeImage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("quota disabled skips limiter", func(t *testing.T) {
		uc, deps := newTestMedicalImageUsecase(t, 0)
		deps.images.On("FindByID", ctx, "clinic-1", "image-1").Return(image, nil)
		deps.storage.On("GetObjectUrlWithExpiryTime", ctx, "medical-images", image.ObjectKey, 2*time.Hour).Return("https://minio/signed", nil)
		deps.ai.On("AnalyzeImage", ctx, "https://minio/signed", "look for caries").Return("", errors.New("provider down"))

		_, err := uc.Analyze(ctx, request)

		assert.EqualError(t, err, "provider down")
		deps.limiter.AssertNotCalled(t, "ApplyResourceLimiter", mock.Anything, mock.Anything)
		deps.images.AssertNotCalled(t, "UpdateAnalysis", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
