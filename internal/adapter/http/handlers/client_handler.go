package handlers

import (
	"net/http"
	request "winnet_crm/internal/adapter/http/dto/request"
	response "winnet_crm/internal/adapter/http/dto/response"
	"winnet_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// @Summary     Create client
// @Tags        clients
// @Accept      json
// @Param       payload  body  request.ClientRequest  true  "Client"
// @Produce     json
// @Success     201  {object}  response.ClientResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	client, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// @Summary     List clients
// @Tags        clients
// @Produce     json
// @Success     200  {array}   response.ClientResponse
// @Failure     500  {object}  pkg.HTTPError
// @Router      /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// @Summary     Get client
// @Tags        clients
// @Param       id  path  string  true  "Client ID"
// @Produce     json
// @Success     200  {object}  response.ClientResponse
// @Failure     404  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// @Summary     Update client
// @Tags        clients
// @Accept      json
// @Param       id  path  string  true  "Client ID"
// @Param       payload  body  request.ClientRequest  true  "Client"
// @Produce     json
// @Success     200  {object}  response.ClientResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     404  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	client, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// DeleteClient refuses while the client still owns quotes.
//
// @Summary     Delete client
// @Tags        clients
// @Param       id  path  string  true  "Client ID"
// @Produce     json
// @Success     204
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
