package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse is the envelope every JSON endpoint returns.
type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta carries request-scoped details that are not part of the payload.
type Meta struct {
	Cached      bool         `json:"cached"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

type Diagnostic struct {
	Kind    string `json:"kind"`
	Source  string `json:"source"`
	Index   int    `json:"index"`
	Message string `json:"message"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageServiceUnavailable  = "service unavailable"
	MessageInternalServerError = "internal server error"
	MessageNoMatches           = "no matches found"
	MessageError               = "error"
)

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data, nil)
}

func SuccessWithMeta(c fiber.Ctx, status int, message string, data interface{}, meta *Meta) error {
	return write(c, status, message, data, meta)
}

func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data, nil)
}

func write(c fiber.Ctx, status int, message string, data interface{}, meta *Meta) error {
	st := normalizeStatus(status)
	msg := message
	if msg == "" {
		msg = DefaultMessage(st)
	}
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: msg, Data: data, Meta: meta})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessage(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	case fiber.StatusServiceUnavailable:
		return MessageServiceUnavailable
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
