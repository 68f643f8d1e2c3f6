package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create - POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

// GetByID - GET /v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// Update - PUT /v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// GetBooks - GET /v1/authors/:id/books
func (h *AuthorHandler) GetBooks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetBooks(c.Request.Context(), id)
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid author id")
		return 0, false
	}
	return id, true
}
