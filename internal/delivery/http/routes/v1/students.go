package v1

import (
	"placement-engine/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterStudents(r fiber.Router, recommendations *handler.RecommendationHandler, peers *handler.PeerHandler, jobFit *handler.JobFitHandler) {
	if r == nil {
		return
	}

	if recommendations != nil {
		recommendations.RegisterRoutes(r)
	}
	if peers != nil {
		peers.RegisterRoutes(r)
	}
	if jobFit != nil {
		r.Get("/students/:student_id/jobs/:job_id/fit", jobFit.GetFit)
		r.Get("/students/:student_id/job-matches", jobFit.GetJobMatches)
	}
}
