package main

import (
	"github.com/hibiken/asynq"

	requestJob "github.com/spycraft69/GAMA-Product-Request/internal/domains/request/job"
	"github.com/spycraft69/GAMA-Product-Request/internal/infrastructure/email"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	requestNotification *requestJob.NotifyHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(cfg *Config) *HandlerRegistry {
	emailSvc := email.NewSMTPEmailService(cfg.SMTP)

	return &HandlerRegistry{
		requestNotification: requestJob.NewNotifyHandler(emailSvc),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeRequestCreatedEmail, h.requestNotification.ProcessTask)
}
