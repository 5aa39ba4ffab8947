package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"outreach/internal/delivery/http/response"
	"outreach/internal/domain/entity"
	"outreach/internal/usecase"
)

// PatientHandlerParams holds dependencies for PatientHandler, injected by Fx.
type PatientHandlerParams struct {
	fx.In

	PatientUC usecase.PatientUsecase
	Logger    *slog.Logger
}

// PatientHandler holds dependencies for patient-related handlers
type PatientHandler struct {
	patientUC usecase.PatientUsecase
	logger    *slog.Logger
}

// NewPatientHandler is the constructor for PatientHandler
func NewPatientHandler(params PatientHandlerParams) *PatientHandler {
	return &PatientHandler{
		patientUC: params.PatientUC,
		logger:    params.Logger,
	}
}

// RegisterPatientRequest represents the request body for registering a patient
type RegisterPatientRequest struct {
	ID               string   `json:"id"`
	Name             string   `json:"name" validate:"required"`
	HusbandName      string   `json:"husband_name"`
	Age              int      `json:"age" validate:"omitempty,gte=0,lte=120"`
	Phone            string   `json:"phone"`
	Village          string   `json:"village"`
	Block            string   `json:"block"`
	District         string   `json:"district"`
	BloodGroup       string   `json:"blood_group"`
	LMPDate          string   `json:"lmp_date"`
	EDDDate          string   `json:"edd_date"`
	PregnancyStatus  string   `json:"pregnancy_status" validate:"omitempty,oneof=pregnant delivered not_pregnant other"`
	RiskFactors      []string `json:"risk_factors"`
	HighRisk         bool     `json:"high_risk"`
	WorkerID         string   `json:"worker_id" validate:"required"`
	FacilityID       string   `json:"facility_id"`
	DoctorID         string   `json:"doctor_id"`
	RegistrationDate string   `json:"registration_date"`
}

// RecordVisitRequest represents the request body for recording a home visit
type RecordVisitRequest struct {
	VisitDate string `json:"visit_date"`
}

// ReferPatientRequest represents the request body for raising a referral
type ReferPatientRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	WorkerID string `json:"worker_id" validate:"required"`
}

// RegisterPatient handles patient registration
func (h *PatientHandler) RegisterPatient(c echo.Context) error {
	var req RegisterPatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	patient, err := h.patientUC.RegisterPatient(c.Request().Context(), &usecase.RegisterPatientInput{
		ID:               req.ID,
		Name:             req.Name,
		HusbandName:      req.HusbandName,
		Age:              req.Age,
		Phone:            req.Phone,
		Village:          req.Village,
		Block:            req.Block,
		District:         req.District,
		BloodGroup:       req.BloodGroup,
		LMPDate:          req.LMPDate,
		EDDDate:          req.EDDDate,
		PregnancyStatus:  entity.PregnancyStatus(req.PregnancyStatus),
		RiskFactors:      req.RiskFactors,
		HighRisk:         req.HighRisk,
		WorkerID:         req.WorkerID,
		FacilityID:       req.FacilityID,
		DoctorID:         req.DoctorID,
		RegistrationDate: req.RegistrationDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, patient, "Patient registered successfully")
}

// GetPatient handles retrieving a single patient
func (h *PatientHandler) GetPatient(c echo.Context) error {
	patient, err := h.patientUC.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, patient, "Patient retrieved successfully")
}

// ListPatients handles listing patients with optional filters
func (h *PatientHandler) ListPatients(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		patients []entity.PatientRecord
		err      error
	)
	switch {
	case c.QueryParam("worker_id") != "":
		patients = h.patientUC.ListPatientsByWorker(ctx, c.QueryParam("worker_id"))
	case c.QueryParam("doctor_id") != "":
		patients = h.patientUC.ListPatientsByDoctor(ctx, c.QueryParam("doctor_id"))
	case c.QueryParam("facility_id") != "":
		patients = h.patientUC.ListPatientsByFacility(ctx, c.QueryParam("facility_id"))
	case c.QueryParam("high_risk") == "true":
		patients = h.patientUC.ListHighRiskPatients(ctx)
	case c.QueryParam("pregnancy_status") != "":
		patients, err = h.patientUC.ListPatientsByPregnancyStatus(ctx, entity.PregnancyStatus(c.QueryParam("pregnancy_status")))
		if err != nil {
			return response.BadRequest(c, "INVALID_STATUS", err.Error())
		}
	default:
		patients = h.patientUC.ListPatients(ctx)
	}

	return response.Success(c, http.StatusOK, patients, "Patients retrieved successfully")
}

// UpdatePatient handles patient updates
func (h *PatientHandler) UpdatePatient(c echo.Context) error {
	var patient entity.PatientRecord
	if err := c.Bind(&patient); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	patient.ID = c.Param("id")

	updated, err := h.patientUC.UpdatePatient(c.Request().Context(), patient)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "Patient updated successfully")
}

// RecordVisit handles stamping the most recent home-visit date
func (h *PatientHandler) RecordVisit(c echo.Context) error {
	var req RecordVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}

	if err := h.patientUC.RecordVisit(c.Request().Context(), c.Param("id"), req.VisitDate); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Visit recorded successfully")
}

// ReferPatient handles raising a referral
func (h *PatientHandler) ReferPatient(c echo.Context) error {
	var req ReferPatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid referral input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.patientUC.ReferPatient(c.Request().Context(), c.Param("id"), req.DoctorID, req.WorkerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Patient referred successfully")
}

// DeletePatient handles patient removal
func (h *PatientHandler) DeletePatient(c echo.Context) error {
	if err := h.patientUC.DeletePatient(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Patient deleted successfully")
}
