package handler

import (
	"dinehub/internal/logger"
	"dinehub/internal/service"
)

type Handler struct {
	svc       *service.Service
	lg        *logger.Logger
	publicURL string // customer portal URL the QR code points at
}

func New(svc *service.Service, lg *logger.Logger, publicURL string) *Handler {
	return &Handler{svc: svc, lg: lg, publicURL: publicURL}
}
