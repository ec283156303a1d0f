package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/nip24-client/internal/model"
	"github.com/rezonia/nip24-client/internal/number"
)

const dateLayout = "2006-01-02"

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	kind, ok := model.ParseNumber(c.Param("kind"))
	if !ok {
		s.fail(c, model.ErrInput())
		return
	}

	raw := c.Param("number")
	resp := ValidationResponse{
		Kind:   kind.String(),
		Number: raw,
		Valid:  number.IsValid(kind, raw),
	}
	if resp.Valid {
		resp.Normalized, _ = number.Normalize(kind, raw)
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDecode(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body", Code: model.ErrCLIInput})
		return
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body", Code: model.ErrCLIInput})
		return
	}

	kind, result, err := s.registry.Decode(c.Request.Context(), body)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, DecodeResponse{
		Kind:   string(kind),
		Result: result,
	})
}

func (s *Server) handleActive(c *gin.Context) {
	kind, ok := s.kind(c)
	if !ok {
		return
	}

	active, err := s.service.IsActive(c.Request.Context(), kind, c.Param("number"))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ActiveResponse{Active: active})
}

func (s *Server) handleInvoice(c *gin.Context) {
	kind, ok := s.kind(c)
	if !ok {
		return
	}

	data, err := s.service.GetInvoiceData(c.Request.Context(), kind, c.Param("number"))
	s.respond(c, data, err)
}

func (s *Server) handleAll(c *gin.Context) {
	kind, ok := s.kind(c)
	if !ok {
		return
	}

	data, err := s.service.GetAllData(c.Request.Context(), kind, c.Param("number"))
	s.respond(c, data, err)
}

func (s *Server) handleVAT(c *gin.Context) {
	kind, ok := s.kind(c)
	if !ok {
		return
	}

	status, err := s.service.GetVATStatus(c.Request.Context(), kind, c.Param("number"))
	s.respond(c, status, err)
}

func (s *Server) handleVIES(c *gin.Context) {
	data, err := s.service.GetVIESData(c.Request.Context(), c.Param("euvat"))
	s.respond(c, data, err)
}

func (s *Server) handleIBAN(c *gin.Context) {
	kind, ok := s.kind(c)
	if !ok {
		return
	}
	date, ok := s.date(c)
	if !ok {
		return
	}

	status, err := s.service.GetIBANStatus(c.Request.Context(), kind, c.Param("number"), c.Param("iban"), date)
	s.respond(c, status, err)
}

func (s *Server) handleWhitelist(c *gin.Context) {
	kind, ok := s.kind(c)
	if !ok {
		return
	}
	date, ok := s.date(c)
	if !ok {
		return
	}

	status, err := s.service.GetWhitelistStatus(c.Request.Context(), kind, c.Param("number"), c.Param("iban"), date)
	s.respond(c, status, err)
}

func (s *Server) handleSearch(c *gin.Context) {
	kind, ok := s.kind(c)
	if !ok {
		return
	}
	date, ok := s.date(c)
	if !ok {
		return
	}

	result, err := s.service.SearchVATRegistry(c.Request.Context(), kind, c.Param("number"), date)
	s.respond(c, result, err)
}

func (s *Server) handleAccount(c *gin.Context) {
	status, err := s.service.GetAccountStatus(c.Request.Context())
	s.respond(c, status, err)
}

// Helper functions

func (s *Server) kind(c *gin.Context) (model.Number, bool) {
	kind, ok := model.ParseNumber(c.Param("kind"))
	if !ok {
		s.fail(c, model.ErrInput())
	}
	return kind, ok
}

// date reads the optional ?date=YYYY-MM-DD query parameter
func (s *Server) date(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, true
	}

	date, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		s.fail(c, model.ErrDateFormat(err))
		return time.Time{}, false
	}
	return date, true
}

func (s *Server) respond(c *gin.Context, result any, err error) {
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) fail(c *gin.Context, err error) {
	code := model.Code(err)
	status := httpStatus(code)

	entry := s.logger.WithField("request_id", c.GetString(requestIDKey)).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Warn("Lookup failed")
	} else {
		entry.Debug("Lookup rejected")
	}

	c.JSON(status, ErrorResponse{
		Error:   model.Message(err),
		Code:    code,
		Name:    model.ErrorName(code),
		Details: err.Error(),
	})
}

// httpStatus maps a service or client error code to a response status
func httpStatus(code int) int {
	switch {
	case code == model.ErrCLIConnect || code == model.ErrCLIResponse:
		return http.StatusBadGateway
	case code == model.ErrCLIException || code < 0:
		return http.StatusInternalServerError
	case model.IsClientCode(code):
		return http.StatusBadRequest
	case code == model.ErrNIPUnknown:
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}
