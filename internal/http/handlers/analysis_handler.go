// Analysis HTTP handlers.
//
// This file exposes the analytics endpoints. Every endpoint takes the raw
// chat export as the request body (text/plain, UTF-8):
//   - POST /analyses            (full report)
//   - POST /analyses/senders    (sender picker list)
//   - POST /analyses/{table}    (one derived table)
//
// Handlers are transport-thin: they read the body and query, delegate to
// AnalysisService, and translate service errors into the error envelope.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/chatlens/internal/chatlog"
	"github.com/tbourn/chatlens/internal/http/middleware"
	"github.com/tbourn/chatlens/internal/services"
	"github.com/tbourn/chatlens/internal/utils"
)

// AnalysisService parses an export and returns a filtered Analysis.
//
// Implementations must be safe for concurrent use.
type AnalysisService interface {
	Analyze(ctx context.Context, raw []byte, opts services.AnalyzeOptions) (*services.Analysis, error)
}

// Handlers groups the HTTP endpoints.
type Handlers struct {
	svc AnalysisService
}

// New constructs Handlers bound to svc.
func New(svc AnalysisService) *Handlers {
	return &Handlers{svc: svc}
}

// SendersResponse lists selectable senders, "Overall" first.
type SendersResponse struct {
	Senders []string `json:"senders" example:"Overall,Ann,Zoe"`
}

// PostAnalysis godoc
// @ID          postAnalysis
// @Summary     Analyze a chat export
// @Description Parses the export in the body and returns every derived table.
// @Description Per-user tables honor the sender filter; busy senders are only reported for Overall.
// @Tags        Analyses
// @Accept      plain
// @Produce     json
// @Param       sender   query  string  false "Sender filter (Overall for everyone)"  default(Overall)
// @Param       topics   query  int     false "Topics to fit"                         minimum(1) maximum(50) default(5)
// @Param       terms    query  int     false "Terms per topic"                       minimum(1) maximum(100) default(10)
// @Param       lenient  query  bool    false "Skip malformed lines"                  default(false)
// @Param       body     body   string  true  "Raw chat export"
// @Success     200  {object}  services.Report
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     413  {object}  handlers.ErrorResponse "Export too large"
// @Failure     422  {object}  handlers.ErrorResponse "Export could not be parsed"
// @Failure     429  {object}  handlers.ErrorResponse "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /analyses [post]
func (h *Handlers) PostAnalysis(c *gin.Context) {
	a, ok := h.analyze(c)
	if !ok {
		return
	}
	ok200(c, a.Report())
}

// PostSenders godoc
// @ID          postSenders
// @Summary     List senders in a chat export
// @Description Returns "Overall" followed by every sender in collation order.
// @Tags        Analyses
// @Accept      plain
// @Produce     json
// @Param       lenient  query  bool    false "Skip malformed lines"  default(false)
// @Param       body     body   string  true  "Raw chat export"
// @Success     200  {object}  handlers.SendersResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     413  {object}  handlers.ErrorResponse "Export too large"
// @Failure     422  {object}  handlers.ErrorResponse "Export could not be parsed"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /analyses/senders [post]
func (h *Handlers) PostSenders(c *gin.Context) {
	a, ok := h.analyze(c)
	if !ok {
		return
	}
	ok200(c, SendersResponse{Senders: append([]string{services.Overall}, a.Senders()...)})
}

// PostTable godoc
// @ID          postTable
// @Summary     Compute one table of a chat export
// @Description Tables: stats, busy-senders, monthly-timeline, daily-timeline, week-activity,
// @Description month-activity, heatmap, wordcloud, common-words, emojis, sentiment, topics.
// @Tags        Analyses
// @Accept      plain
// @Produce     json
// @Param       table    path   string  true  "Table name"
// @Param       sender   query  string  false "Sender filter (Overall for everyone)"  default(Overall)
// @Param       topics   query  int     false "Topics to fit"                         minimum(1) maximum(50) default(5)
// @Param       terms    query  int     false "Terms per topic"                       minimum(1) maximum(100) default(10)
// @Param       lenient  query  bool    false "Skip malformed lines"                  default(false)
// @Param       body     body   string  true  "Raw chat export"
// @Success     200  {object}  object
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown table"
// @Failure     413  {object}  handlers.ErrorResponse "Export too large"
// @Failure     422  {object}  handlers.ErrorResponse "Export could not be parsed"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /analyses/{table} [post]
func (h *Handlers) PostTable(c *gin.Context) {
	name := c.Param("table")
	if !knownTable(name) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("unknown table %q", name))
		return
	}
	a, ok := h.analyze(c)
	if !ok {
		return
	}
	v, err := a.Table(name)
	if err != nil {
		failFor(c, err)
		return
	}
	ok200(c, v)
}

// analyze reads the body and query and runs the service. On failure the
// response has been written and ok is false.
func (h *Handlers) analyze(c *gin.Context) (*services.Analysis, bool) {
	opts, err := analyzeOptions(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return nil, false
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "export too large")
			return nil, false
		}
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "could not read request body")
		return nil, false
	}

	a, err := h.svc.Analyze(c.Request.Context(), raw, opts)
	if err != nil {
		failFor(c, err)
		return nil, false
	}
	middleware.LoggerFrom(c).Debug().
		Int("records", a.Collection().Len()).
		Bool("overall", a.IsOverall()).
		Msg("analysis ready")
	return a, true
}

// analyzeOptions parses sender, topics, terms and lenient. Malformed counts
// become -1 so the service rejects them with its own error.
func analyzeOptions(c *gin.Context) (services.AnalyzeOptions, error) {
	opts := services.AnalyzeOptions{
		Sender: strings.TrimSpace(c.Query("sender")),
		Topics: utils.AtoiDefault(c.Query("topics"), -1, 0),
		Terms:  utils.AtoiDefault(c.Query("terms"), -1, 0),
	}
	if v := c.Query("lenient"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("lenient must be a boolean")
		}
		opts.Lenient = b
	}
	return opts, nil
}

// failFor maps service errors to the error envelope.
func failFor(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyExport):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "export is empty")
	case errors.Is(err, services.ErrInvalidTopicCount):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			fmt.Sprintf("topics must be between 1 and %d", services.MaxTopics))
	case errors.Is(err, services.ErrInvalidTermCount):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			fmt.Sprintf("terms must be between 1 and %d", services.MaxTermsPerTopic))
	case errors.Is(err, services.ErrExportTooLarge):
		fail(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "export too large")
	case errors.Is(err, services.ErrUnknownTable):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "unknown table")
	case errors.Is(err, chatlog.ErrParse):
		fail(c, http.StatusUnprocessableEntity, ErrCodeParseFailed, parseMessage(err))
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}

func parseMessage(err error) string {
	var pe *chatlog.ParseError
	if errors.As(err, &pe) {
		return pe.Error()
	}
	return "export could not be parsed"
}

func knownTable(name string) bool {
	for _, t := range services.Tables {
		if t == name {
			return true
		}
	}
	return false
}

func ok200(c *gin.Context, body any) { ok(c, http.StatusOK, body) }
