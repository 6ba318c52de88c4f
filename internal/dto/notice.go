package dto

import (
	"net/http"

	"tms/internal/entities"
)

type Notice struct {
	Type    string `json:"type"`
	Kind    string `json:"kind,omitempty"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message"`
}

func NewNotice(n entities.Notice) Notice {
	return Notice{
		Type:    string(n.Type),
		Kind:    n.Kind.String(),
		Action:  n.Action.String(),
		Message: n.Message,
	}
}

func ErrorNotice(kind entities.ErrorKind, message string) Notice {
	return Notice{
		Type:    string(entities.NoticeError),
		Kind:    kind.String(),
		Message: message,
	}
}

// NoticeStatus - HTTP-статус, которым отвечает действие с данным уведомлением.
func NoticeStatus(n entities.Notice) int {
	if n.IsSuccess() {
		return http.StatusOK
	}
	switch n.Kind {
	case entities.ErrorKindValidation:
		return http.StatusUnprocessableEntity
	case entities.ErrorKindExclusive:
		return http.StatusConflict
	case entities.ErrorKindPreconditionNotMet:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

type PingResponse struct {
	Message string `json:"message"`
}
