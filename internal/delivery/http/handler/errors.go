package handler

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"placement-engine/internal/delivery/http/middleware"
	"placement-engine/internal/pkg/response"
	"placement-engine/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidConfig):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrStudentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Student not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseUUIDParam(c fiber.Ctx, key string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(key))
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return id, nil
}

// parseOverrides reads min_similarity, min_score and top_n. Malformed
// numbers are rejected rather than silently ignored.
func parseOverrides(c fiber.Ctx) (usecase.Overrides, error) {
	var ov usecase.Overrides

	if s := strings.TrimSpace(c.Query("min_similarity")); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = fmt.Errorf("min_similarity must be finite, got %q", s)
		}
		if err != nil {
			return ov, middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_similarity", nil, err)
		}
		ov.MinSimilarity = &v
	}
	if s := strings.TrimSpace(c.Query("min_score")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return ov, middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
		}
		ov.MinFitScore = &v
	}
	if s := strings.TrimSpace(c.Query("top_n")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return ov, middleware.NewAppError(fiber.StatusBadRequest, "Invalid top_n", nil, err)
		}
		ov.TopN = &v
	}
	return ov, nil
}
