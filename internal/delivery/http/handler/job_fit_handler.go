package handler

import (
	"placement-engine/internal/delivery/http/dto"
	"placement-engine/internal/pkg/response"
	"placement-engine/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobFitHandler struct {
	uc usecase.JobFitUsecase
}

func NewJobFitHandler(uc usecase.JobFitUsecase) *JobFitHandler {
	return &JobFitHandler{uc: uc}
}

func (h *JobFitHandler) GetFit(c fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	res, err := h.uc.ScoreJobFit(c.Context(), studentID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobFitResponse(res))
}

func (h *JobFitHandler) GetJobMatches(c fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}
	ov, err := parseOverrides(c)
	if err != nil {
		return err
	}

	items, diags, err := h.uc.RecommendJobs(c.Context(), studentID, ov)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := response.MessageOK
	if len(items) == 0 {
		msg = response.MessageNoMatches
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, msg, dto.NewJobFitResponses(items), dto.NewMeta(false, diags))
}

func (h *JobFitHandler) GetCandidates(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}
	ov, err := parseOverrides(c)
	if err != nil {
		return err
	}

	items, diags, err := h.uc.MatchCandidates(c.Context(), jobID, ov)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := response.MessageOK
	if len(items) == 0 {
		msg = response.MessageNoMatches
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, msg, dto.NewCandidateResponses(items), dto.NewMeta(false, diags))
}
