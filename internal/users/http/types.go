package http

import "github.com/ecuabus/user-api/internal/users/service"

type Handler struct {
	userService *service.UserService
}

func New(userService *service.UserService) *Handler {
	return &Handler{
		userService: userService,
	}
}
