package handler

import (
	"placement-engine/internal/delivery/http/dto"
	"placement-engine/internal/pkg/response"
	"placement-engine/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/students/:student_id/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}
	ov, err := parseOverrides(c)
	if err != nil {
		return err
	}

	bundle, cached, err := h.uc.GetBundle(c.Context(), studentID, ov)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := response.MessageOK
	if bundle.Empty() {
		msg = response.MessageNoMatches
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, msg, dto.NewBundleResponse(bundle), dto.NewMeta(cached, bundle.Diagnostics))
}
