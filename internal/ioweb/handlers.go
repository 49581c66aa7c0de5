package ioweb

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	gnlineage "github.com/gnames/gnlineage/pkg"
	"github.com/gnames/gnlineage/pkg/lineage"
	"github.com/gnames/gnlineage/pkg/output"
)

// pageData fills the HTML page template.
type pageData struct {
	Query      string
	Short      bool
	WithCommon bool
	Result     template.HTML
	Version    string
}

// LineageRequest is the body of POST /api/v1/lineage.
type LineageRequest struct {
	Queries    []string `json:"queries"`
	Short      bool     `json:"short"`
	WithCommon bool     `json:"common"`
}

func (s *Server) formHandler(c *gin.Context) {
	s.renderPage(c, pageData{})
}

// formSubmitHandler accepts the fields of the Taxa Finder form:
// comma-separated 'query', and 'short-sequence' and
// 'find-last-common-node' flags with value "1".
func (s *Server) formSubmitHandler(c *gin.Context) {
	data := pageData{
		Query:      c.PostForm("query"),
		Short:      c.PostForm("short-sequence") == "1",
		WithCommon: c.PostForm("find-last-common-node") == "1",
	}

	queries := lineage.SplitQueries(data.Query)
	if len(queries) > MaxQueries {
		c.Status(http.StatusRequestEntityTooLarge)
		data.Result = template.HTML(template.HTMLEscapeString(tooManyMsg()))
		s.renderPage(c, data)
		return
	}

	res := s.batch(queries, lineage.Options{
		Short:      data.Short,
		WithCommon: data.WithCommon,
	})
	frag, err := output.Render(res, output.HTML)
	if err != nil {
		s.serverError(c, err)
		return
	}
	// fragment escapes all user input
	data.Result = template.HTML(frag)
	s.renderPage(c, data)
}

func (s *Server) renderPage(c *gin.Context, data pageData) {
	data.Version = gnlineage.Version
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.serverError(c, err)
		return
	}
	// status is 200 unless a handler set it before
	c.Data(c.Writer.Status(), "text/html; charset=utf-8", buf.Bytes())
}

// lineageGetHandler takes names from 'q' parameters, each may be a
// comma-separated list; 'short' and 'common' are boolean flags.
func (s *Server) lineageGetHandler(c *gin.Context) {
	var queries []string
	for _, v := range c.QueryArray("q") {
		queries = append(queries, lineage.SplitQueries(v)...)
	}
	opts := lineage.Options{
		Short:      parseBool(c.Query("short")),
		WithCommon: parseBool(c.Query("common")),
	}
	s.lineageJSON(c, queries, opts)
}

func (s *Server) lineagePostHandler(c *gin.Context) {
	var req LineageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	var queries []string
	for _, v := range req.Queries {
		queries = append(queries, lineage.SplitQueries(v)...)
	}
	opts := lineage.Options{Short: req.Short, WithCommon: req.WithCommon}
	s.lineageJSON(c, queries, opts)
}

func (s *Server) lineageJSON(
	c *gin.Context,
	queries []string,
	opts lineage.Options,
) {
	switch {
	case len(queries) == 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "no queries given"})
		return
	case len(queries) > MaxQueries:
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": tooManyMsg()})
		return
	}

	res := s.batch(queries, opts)
	c.JSON(http.StatusOK, output.NewOutput(res))
}

func (s *Server) batch(queries []string, opts lineage.Options) lineage.Result {
	res := lineage.Batch(s.finder, queries, opts)

	outcomes := make(map[string]int)
	for _, v := range res.Reports {
		switch {
		case v.Found():
			outcomes["found"]++
		case v.NotFound():
			outcomes["not_found"]++
		default:
			outcomes["error"]++
			slog.Warn("Cannot resolve lineage", "query", v.Query, "error", v.Err)
		}
	}
	s.metrics.countQueries(outcomes)
	return res
}

func (s *Server) serverError(c *gin.Context, err error) {
	slog.Error("Request failed", "path", c.Request.URL.Path, "error", err)
	c.String(http.StatusInternalServerError, "internal server error")
}

func parseBool(s string) bool {
	if s == "1" {
		return true
	}
	res, _ := strconv.ParseBool(s)
	return res
}

func tooManyMsg() string {
	return "Too many names, the limit is " + strconv.Itoa(MaxQueries)
}
