package handler

import (
	"placement-engine/internal/delivery/http/dto"
	"placement-engine/internal/pkg/response"
	"placement-engine/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PeerHandler struct {
	uc usecase.PeerUsecase
}

func NewPeerHandler(uc usecase.PeerUsecase) *PeerHandler {
	return &PeerHandler{uc: uc}
}

func (h *PeerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/students/:student_id/peers", h.GetPeers)
}

func (h *PeerHandler) GetPeers(c fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return err
	}
	ov, err := parseOverrides(c)
	if err != nil {
		return err
	}

	res, err := h.uc.RankPeers(c.Context(), studentID, ov)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := response.MessageOK
	if len(res.Peers) == 0 {
		msg = response.MessageNoMatches
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, msg, dto.NewPeerResponses(res.Peers), dto.NewMeta(false, res.Diagnostics))
}
