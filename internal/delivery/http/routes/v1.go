package routes

import (
	v1 "placement-engine/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, reg *Registry) {
	if r == nil || reg == nil {
		return
	}

	v1.RegisterStudents(r, reg.Recommendations, reg.Peers, reg.JobFit)
	v1.RegisterJobs(r, reg.JobFit)
}
