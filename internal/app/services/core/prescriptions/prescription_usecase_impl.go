package prescriptions

import (
	"context"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/utils"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	PatientRepository      contracts.PatientRepository
	ClinicRepository       contracts.ClinicRepository
	DocumentRenderer       contracts.DocumentRenderer
	Transactor             contracts.Transactor
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	patientRepository contracts.PatientRepository,
	clinicRepository contracts.ClinicRepository,
	documentRenderer contracts.DocumentRenderer,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			PatientRepository:      patientRepository,
			ClinicRepository:       clinicRepository,
			DocumentRenderer:       documentRenderer,
			Transactor:             transactor,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) Create(ctx context.Context, request *requests.CreatePrescription) (*responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	prescription := &models.Prescription{
		ClinicID:  request.ClinicID,
		PatientID: request.PatientID,
		DentistID: request.DentistID,
		Notes:     request.Notes,
		Items:     make([]models.PrescriptionItem, len(request.Items)),
	}
	if appointmentID := strings.TrimSpace(request.AppointmentID); appointmentID != "" {
		prescription.AppointmentID = &appointmentID
	}
	for i, item := range request.Items {
		prescription.Items[i] = models.PrescriptionItem{
			Medication:   strings.TrimSpace(item.Medication),
			Dosage:       strings.TrimSpace(item.Dosage),
			Frequency:    strings.TrimSpace(item.Frequency),
			Duration:     strings.TrimSpace(item.Duration),
			Instructions: strings.TrimSpace(item.Instructions),
		}
	}

	err := uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		patient, err := uc.findPatient(ctx, request.ClinicID, request.PatientID)
		if err != nil {
			return err
		}
		prescription.PatientName = patient.FullName

		prescription, err = uc.PrescriptionRepository.Create(ctx, prescription)
		return err
	})
	if err != nil {
		uc.Log.Error("prescriptionUsecase.Create error creating prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "prescription_created", requestID,
		zap.String(constvars.LoggingClinicIDKey, prescription.ClinicID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
	)
	return prescription.ConvertToResponse(), nil
}

func (uc *prescriptionUsecase) Get(ctx context.Context, clinicID, prescriptionID string) (*responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	prescription, err := uc.findPrescription(ctx, clinicID, prescriptionID)
	if err != nil {
		return nil, err
	}
	return prescription.ConvertToResponse(), nil
}

func (uc *prescriptionUsecase) RenderPDF(ctx context.Context, clinicID, prescriptionID string) ([]byte, string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.RenderPDF called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	prescription, err := uc.findPrescription(ctx, clinicID, prescriptionID)
	if err != nil {
		return nil, "", err
	}

	patient, err := uc.findPatient(ctx, clinicID, prescription.PatientID)
	if err != nil {
		return nil, "", err
	}

	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, "", err
	}
	if clinic == nil {
		return nil, "", exceptions.ErrResourceNotFound(nil, "clinic", clinicID)
	}

	content, err := uc.DocumentRenderer.RenderPrescription(&models.PrescriptionDocument{
		Clinic:       *clinic,
		Patient:      *patient,
		Prescription: *prescription,
		GeneratedAt:  prescription.IssuedAt,
	})
	if err != nil {
		uc.Log.Error("prescriptionUsecase.RenderPDF error calling DocumentRenderer.RenderPrescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}
	return content, fmt.Sprintf("prescription-%s.pdf", prescription.ID), nil
}

func (uc *prescriptionUsecase) findPrescription(ctx context.Context, clinicID, prescriptionID string) (*models.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, clinicID, prescriptionID)
	if err != nil {
		uc.Log.Error("prescriptionUsecase error calling PrescriptionRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "prescription", prescriptionID)
	}
	return prescription, nil
}

func (uc *prescriptionUsecase) findPatient(ctx context.Context, clinicID, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, clinicID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "patient", patientID)
	}
	return patient, nil
}
