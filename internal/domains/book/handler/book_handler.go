package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create - POST /v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
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
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

// GetByID - GET /v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// Update - PUT /v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
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
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}
