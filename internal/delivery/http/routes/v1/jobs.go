package v1

import (
	"placement-engine/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobFit *handler.JobFitHandler) {
	if r == nil || jobFit == nil {
		return
	}

	r.Get("/jobs/:job_id/candidates", jobFit.GetCandidates)
}
