package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/chatlens/internal/lexical"
	"github.com/tbourn/chatlens/internal/sentiment"
	"github.com/tbourn/chatlens/internal/services"
	"github.com/tbourn/chatlens/internal/topics"
)

const export = "1/5/23, 9:00 AM - Zoe: good morning 😀\n" +
	"1/5/23, 9:05 AM - Ann: morning zoe\n" +
	"1/5/23, 9:06 AM - Ann added Bob\n" +
	"2/1/23, 11:30 AM - Zoe: good night\n"

type nopModel struct{}

func (nopModel) Fit(m *topics.Matrix, k int) ([][]float64, error) {
	out := make([][]float64, k)
	for i := range out {
		out[i] = make([]float64, len(m.Terms))
	}
	return out, nil
}

func newRouter(t *testing.T, mutate func(*services.AnalysisService)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := services.NewAnalysisService(lexical.NewStopWords(), sentiment.ScorerFunc(func(string) float64 { return 0 }), topics.Identity, nopModel{})
	if mutate != nil {
		mutate(svc)
	}
	h := New(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Writer.Header().Set("X-Request-ID", "rid-1"); c.Next() })
	r.POST("/analyses", h.PostAnalysis)
	r.POST("/analyses/senders", h.PostSenders)
	r.POST("/analyses/:table", h.PostTable)
	r.POST("/capped", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 8)
		h.PostAnalysis(c)
	})
	return r
}

func post(r *gin.Engine, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	r.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v (%s)", err, w.Body.String())
	}
	return er
}

func TestPostAnalysis_Report(t *testing.T) {
	r := newRouter(t, nil)
	w := post(r, "/analyses", export)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var rep services.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("json: %v", err)
	}
	if rep.Sender != services.Overall || rep.Records != 4 || rep.Stats.Messages != 4 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.BusySenders == nil || len(rep.BusySenders.Top) == 0 {
		t.Fatalf("busy senders missing: %+v", rep.BusySenders)
	}
}

func TestPostSenders_OverallFirst(t *testing.T) {
	r := newRouter(t, nil)
	w := post(r, "/analyses/senders", export)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var resp SendersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if want := []string{"Overall", "Ann", "Zoe"}; !reflect.DeepEqual(resp.Senders, want) {
		t.Fatalf("senders=%v want %v", resp.Senders, want)
	}
}

func TestPostTable_SenderFilter(t *testing.T) {
	r := newRouter(t, nil)
	w := post(r, "/analyses/stats?sender=Ann", export)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var st struct {
		Messages int `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("json: %v", err)
	}
	if st.Messages != 1 {
		t.Fatalf("messages=%d (%s)", st.Messages, w.Body.String())
	}

	w = post(r, "/analyses/busy-senders?sender=Ann", export)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "null" {
		t.Fatalf("filtered busy-senders: %d %s", w.Code, w.Body.String())
	}
}

func TestPostTable_Errors(t *testing.T) {
	r := newRouter(t, func(s *services.AnalysisService) { s.MaxExportBytes = 200 })
	cases := []struct {
		name, target, body string
		status             int
		code               string
	}{
		{"unknown table", "/analyses/pie-chart", export, http.StatusNotFound, ErrCodeNotFound},
		{"empty body", "/analyses", "   ", http.StatusBadRequest, ErrCodeBadRequest},
		{"bad topics", "/analyses?topics=x", export, http.StatusBadRequest, ErrCodeBadRequest},
		{"topics too high", "/analyses/topics?topics=51", export, http.StatusBadRequest, ErrCodeBadRequest},
		{"bad lenient", "/analyses?lenient=maybe", export, http.StatusBadRequest, ErrCodeBadRequest},
		{"parse failure", "/analyses", "1/40/23, 9:00 AM - Zoe: hi\n", http.StatusUnprocessableEntity, ErrCodeParseFailed},
		{"service cap", "/analyses", strings.Repeat(export, 3), http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge},
		{"body cap", "/capped", export, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := post(r, tc.target, tc.body)
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.status, w.Body.String())
			}
			er := decodeErr(t, w)
			if er.Code != tc.code || er.RequestID != "rid-1" {
				t.Fatalf("unexpected envelope: %+v", er)
			}
		})
	}
}

func TestPostAnalysis_LenientSkipsBadLines(t *testing.T) {
	r := newRouter(t, nil)
	w := post(r, "/analyses?lenient=true", "1/40/23, 9:00 AM - Zoe: hi\n"+export)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var rep services.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("json: %v", err)
	}
	if rep.SkippedLines != 1 || rep.Records != 4 {
		t.Fatalf("skipped=%d records=%d", rep.SkippedLines, rep.Records)
	}
}
