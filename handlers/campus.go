package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"github.com/campuslink/campuslink/backend/go-services/internal/service"
	"github.com/gin-gonic/gin"
)

// CampusHandler serves the record endpoints under /api.
type CampusHandler struct {
	svc *service.Service
}

func NewCampusHandler(svc *service.Service) *CampusHandler {
	return &CampusHandler{svc: svc}
}

// RegisterCampusRoutes registers create and list endpoints for users, posts,
// comments and offers.
func RegisterCampusRoutes(r gin.IRouter, svc *service.Service) {
	h := NewCampusHandler(svc)
	api := r.Group("/api")

	api.POST("/users", h.create(func() models.Record { return &models.User{} }))
	api.GET("/users", h.ListUsers)

	api.POST("/posts", h.create(func() models.Record { return &models.Post{} }))
	api.GET("/posts", h.ListPosts)

	api.POST("/comments", h.create(func() models.Record { return &models.Comment{} }))
	api.GET("/comments", h.ListComments)

	api.POST("/offers", h.create(func() models.Record { return &models.Offer{} }))
	api.GET("/offers", h.ListOffers)
}

// create decodes the body into a fresh record and responds with the new id.
func (h *CampusHandler) create(newRecord func() models.Record) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec := newRecord()
		if err := c.ShouldBindJSON(rec); err != nil {
			writeError(c, decodeError(err))
			return
		}
		id, err := h.svc.Create(c.Request.Context(), rec)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func (h *CampusHandler) ListUsers(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.ListUsers(c.Request.Context(), service.UserQuery{
		Role:  c.Query("role"),
		Limit: limit,
	})
	respond(c, out, err)
}

func (h *CampusHandler) ListPosts(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.ListPosts(c.Request.Context(), service.PostQuery{
		Type:      c.Query("type"),
		Tag:       c.Query("tag"),
		CreatedBy: c.Query("created_by"),
		Limit:     limit,
	})
	respond(c, out, err)
}

func (h *CampusHandler) ListComments(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.ListComments(c.Request.Context(), service.CommentQuery{
		PostID: c.Query("post_id"),
		Limit:  limit,
	})
	respond(c, out, err)
}

func (h *CampusHandler) ListOffers(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.ListOffers(c.Request.Context(), service.OfferQuery{
		PostID:    c.Query("post_id"),
		CreatedBy: c.Query("created_by"),
		Limit:     limit,
	})
	respond(c, out, err)
}

func respond(c *gin.Context, out []map[string]any, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// queryLimit returns nil when the limit parameter is absent so the service
// applies its own default.
func queryLimit(c *gin.Context) (*int64, error) {
	raw, ok := c.GetQuery("limit")
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperror.InvalidField("limit", "int")
	}
	return &n, nil
}

// decodeError turns a JSON binding failure into a validation error naming the
// offending field when the decoder reports one.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperror.InvalidField(typeErr.Field, typeErr.Type.String())
	}
	return apperror.InvalidField("body", "json")
}
