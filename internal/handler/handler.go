package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
	"shortlink/internal/middleware"
	"shortlink/internal/service"
	"shortlink/internal/validation"
)

const (
	codeInvalidRequest     = "INVALID_REQUEST"
	codeInvalidDestination = "INVALID_DESTINATION"
	codeNotFound           = "NOT_FOUND"
	codeStorageUnavailable = "STORAGE_UNAVAILABLE"
	codeSpaceExhausted     = "CODE_SPACE_EXHAUSTED"
	codeInternal           = "INTERNAL"

	defaultListLimit = 20
)

var (
	errInvalidBody  = domain.ErrorResponse{Error: "invalid request body", Code: codeInvalidRequest}
	errInvalidLimit = domain.ErrorResponse{Error: "limit must be a positive integer", Code: codeInvalidRequest}
	errLinkNotFound = domain.ErrorResponse{Error: "link not found", Code: codeNotFound}
	errStorage      = domain.ErrorResponse{Error: "storage unavailable", Code: codeStorageUnavailable}
	errExhausted    = domain.ErrorResponse{Error: "could not allocate a unique code", Code: codeSpaceExhausted}
	errInternal     = domain.ErrorResponse{Error: "internal server error", Code: codeInternal}
	errNoOwner      = domain.ErrorResponse{Error: "owner id required", Code: codeInvalidRequest}
	errNoRoute      = domain.ErrorResponse{Error: "not found", Code: codeNotFound}
	respHealthOK    = map[string]string{"status": "ok"}
)

type Handler struct {
	links          LinkService
	logger         *slog.Logger
	redirectStatus int
}

func New(links LinkService, logger *slog.Logger, redirectStatus int) *Handler {
	if redirectStatus == 0 {
		redirectStatus = http.StatusFound
	}
	return &Handler{
		links:          links,
		logger:         logger,
		redirectStatus: redirectStatus,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.HTTPErrorHandler = h.HTTPError

	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/create", h.Create)
	api.POST("/create/batch", h.CreateBatch)
	api.GET("/analytics/:code", h.Analytics)
	api.GET("/owners/:ownerId/analytics", h.OwnerAnalytics)
	api.GET("/stats", h.Stats)
	api.GET("/urls", h.ListLinks)
	e.GET("/:code", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Create(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	link, err := h.links.Create(c.Request().Context(), req.Destination, h.owner(c, req.OwnerID))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, h.toResponse(link))
}

func (h *Handler) CreateBatch(c echo.Context) error {
	var req domain.CreateLinkBatchRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	links, err := h.links.CreateBatch(c.Request().Context(), req.Destinations, h.owner(c, req.OwnerID))
	if err != nil {
		return h.handleError(c, err)
	}

	resp := domain.LinkBatchResponse{Links: make([]domain.LinkResponse, len(links))}
	for i := range links {
		resp.Links[i] = h.toResponse(&links[i])
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Redirect(c echo.Context) error {
	client := domain.ClientInfo{
		Address: c.RealIP(),
		Agent:   c.Request().UserAgent(),
	}

	res, err := h.links.Resolve(c.Request().Context(), c.Param("code"), client)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(h.redirectStatus, res.Destination)
}

func (h *Handler) Analytics(c echo.Context) error {
	report, err := h.links.Analytics(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) OwnerAnalytics(c echo.Context) error {
	report, err := h.links.OwnerAnalytics(c.Request().Context(), h.owner(c, c.Param("ownerId")))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.links.Stats(c.Request().Context(), h.owner(c, c.QueryParam("ownerId")))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListLinks(c echo.Context) error {
	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, errInvalidLimit)
		}
		limit = n
	}

	links, err := h.links.ListLinks(c.Request().Context(), h.owner(c, c.QueryParam("ownerId")), limit)
	if err != nil {
		return h.handleError(c, err)
	}

	resp := domain.LinkBatchResponse{Links: make([]domain.LinkResponse, len(links))}
	for i := range links {
		resp.Links[i] = h.toResponse(&links[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// owner prefers the subject of a verified token over a caller-supplied id.
func (h *Handler) owner(c echo.Context, supplied string) string {
	if owner, ok := middleware.OwnerFrom(c); ok {
		return owner
	}
	return supplied
}

func (h *Handler) toResponse(link *domain.ShortLink) domain.LinkResponse {
	return domain.LinkResponse{
		Code:        link.Code,
		ShortURL:    h.links.ShortURL(link.Code),
		Destination: link.Destination,
		QRPayload:   link.QRPayload,
		ClickCount:  link.ClickCount,
		CreatedAt:   link.CreatedAt,
		OwnerID:     link.OwnerID,
	}
}

func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidDestination):
		return h.handleValidationError(c, err)
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errLinkNotFound)
	case errors.Is(err, service.ErrOwnerRequired):
		return c.JSON(http.StatusBadRequest, errNoOwner)
	case errors.Is(err, service.ErrStorageUnavailable):
		h.logger.Error("storage unavailable",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, errStorage)
	case errors.Is(err, service.ErrCodeSpaceExhausted):
		return c.JSON(http.StatusInternalServerError, errExhausted)
	default:
		h.logger.Error("request failed",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errInternal)
	}
}

// HTTPError renders errors that escape routing and middleware (unknown
// routes, wrong methods, panics turned into errors) in the API error shape.
func (h *Handler) HTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
	}

	var resp domain.ErrorResponse
	switch {
	case status == http.StatusNotFound && strings.HasPrefix(c.Request().URL.Path, "/api/"):
		resp = errNoRoute
	case status == http.StatusNotFound:
		resp = errLinkNotFound
	case status >= http.StatusInternalServerError:
		h.logger.Error("unhandled error",
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()))
		resp = errInternal
	default:
		resp = domain.ErrorResponse{Error: strings.ToLower(http.StatusText(status)), Code: codeInvalidRequest}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, resp)
	}
	if err != nil {
		h.logger.Warn("failed to write error response", slog.String("error", err.Error()))
	}
}

type batchErrorResponse struct {
	domain.ErrorResponse
	Errors []indexedError `json:"errors"`
}

type indexedError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var batchErr *validation.BatchValidationError
	if errors.As(err, &batchErr) {
		resp := batchErrorResponse{
			ErrorResponse: domain.ErrorResponse{Error: batchErr.Error(), Code: codeInvalidDestination},
			Errors:        make([]indexedError, len(batchErr.Errors)),
		}
		for i, e := range batchErr.Errors {
			resp.Errors[i] = indexedError{Index: e.Index, Error: e.Err.Error()}
		}
		return c.JSON(http.StatusBadRequest, resp)
	}

	msg := err.Error()
	for _, reason := range validationReasons {
		if errors.Is(err, reason) {
			msg = reason.Error()
			break
		}
	}
	return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: msg, Code: codeInvalidDestination})
}

var validationReasons = []error{
	validation.ErrEmptyDestination,
	validation.ErrTooLong,
	validation.ErrUnsafeScheme,
	validation.ErrInvalidFormat,
	validation.ErrPrivateIPNotAllowed,
	validation.ErrEmptyBatch,
	validation.ErrBatchTooLarge,
}
