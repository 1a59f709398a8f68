package search

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB) *Container {
	service := NewService(db)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
