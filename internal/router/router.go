package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"ContactBook/config"
	"ContactBook/internal/handler"
	"ContactBook/internal/middleware"
)

func Register(h *server.Hertz, contacts *handler.ContactHandler) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	if config.Cfg.TracingEnabled {
		h.Use(middleware.OpenTelemetryMiddleware())
	}

	api := h.Group("/api")

	api.GET("/health", handler.HealthCheck)

	// 联系人路由
	group := api.Group("/contacts")
	{
		group.GET("", contacts.ListContacts)
		group.POST("", contacts.CreateContact)
		group.PUT("/:id", contacts.UpdateContact)
		group.DELETE("/:id", contacts.DeleteContact)
	}
}
