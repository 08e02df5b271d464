package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/:idCoop/:type", h.CreateUser)
	rg.PUT("/:id/:idCoop/:type", h.UpdateUser)
	rg.DELETE("/:id/:idCoop/:type", h.DeleteUser)
}
