package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecuabus/user-api/internal/users/domain"
)

const (
	msgMissingFields  = "Faltan campos obligatorios: email, password, name o lastName."
	msgEmailTaken     = "El correo electrónico ya está registrado."
	msgPhoneTaken     = "El número de telefono ya está registrado."
	msgCreated        = "Usuario creado exitosamente"
	msgCreateFailed   = "Error al crear el usuario."
	msgUpdated        = "Usuario actualizado exitosamente"
	msgUpdateFailed   = "Error al actualizar el usuario"
	msgDeleted        = "Usuario eliminado exitosamente"
	msgDeleteFailed   = "Error al eliminar el usuario"
	msgInvalidPayload = "invalid JSON body"
)

// CreateUser provisions a user in the identity store and writes its profile
// document under the tenant/type collection from the route.
func (h *Handler) CreateUser(c *gin.Context) {
	idCoop := c.Param("idCoop")
	recordType := c.Param("type")

	var body struct {
		Email     string  `json:"email"`
		Password  string  `json:"password"`
		Name      string  `json:"name"`
		LastName  string  `json:"lastName"`
		Phone     *string `json:"phone,omitempty"`
		Address   *string `json:"address,omitempty"`
		Card      *string `json:"card,omitempty"`
		Photo     *string `json:"photo,omitempty"`
		IsBlocked *bool   `json:"isBlocked,omitempty"`
		Rol       *string `json:"rol,omitempty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidPayload, "error": err.Error()})
		return
	}

	req := &domain.CreateUserRequest{
		Email:     body.Email,
		Password:  body.Password,
		Name:      body.Name,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Address:   body.Address,
		Card:      body.Card,
		Photo:     body.Photo,
		IsBlocked: body.IsBlocked,
		Rol:       body.Rol,
	}

	uid, err := h.userService.Create(c.Request.Context(), idCoop, recordType, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgMissingFields})
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgEmailTaken, "error": err.Error()})
		case errors.Is(err, domain.ErrPhoneTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgPhoneTaken, "error": err.Error()})
		default:
			log.Printf("create user failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": msgCreateFailed, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgCreated, "uid": uid})
}

// UpdateUser applies a partial update to both stores; everything is
// optional in the body.
func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	idCoop := c.Param("idCoop")
	recordType := c.Param("type")

	var body struct {
		Email    *string `json:"email,omitempty"`
		Password *string `json:"password,omitempty"`
		Name     *string `json:"name,omitempty"`
		LastName *string `json:"lastName,omitempty"`
		Phone    *string `json:"phone,omitempty"`
		Address  *string `json:"address,omitempty"`
		Card     *string `json:"card,omitempty"`
		Photo    *string `json:"photo,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidPayload, "error": err.Error()})
			return
		}
	}

	req := &domain.UpdateUserRequest{
		Email:    body.Email,
		Password: body.Password,
		Name:     body.Name,
		LastName: body.LastName,
		Phone:    body.Phone,
		Address:  body.Address,
		Card:     body.Card,
		Photo:    body.Photo,
	}

	if err := h.userService.Update(c.Request.Context(), id, idCoop, recordType, req); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgEmailTaken, "error": err.Error()})
		case errors.Is(err, domain.ErrPhoneTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgPhoneTaken, "error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": msgUpdateFailed, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUpdated})
}

// DeleteUser removes the credential and the profile document. Any failure
// from either store is reported the same way.
func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	idCoop := c.Param("idCoop")
	recordType := c.Param("type")

	if err := h.userService.Delete(c.Request.Context(), id, idCoop, recordType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgDeleteFailed, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}
