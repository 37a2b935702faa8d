package controllers

import (
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Star Wars Blog API</title></head>
<body>
<div style="text-align: center;">
<h1>Star Wars Blog API</h1>
<p>API HOST: <input style="padding: 5px; width: 300px" type="text" value="{{.Host}}" readonly /></p>
<p>Remember to specify a real endpoint path like:</p>
<ul style="text-align: left;">
{{range .Links}}<li><a href="{{.}}">{{.}}</a></li>
{{end}}</ul>
</div>
</body>
</html>
`))

type SitemapController struct {
	routes func() gin.RoutesInfo
}

// NewSitemapController принимает функцию, а не список, чтобы видеть маршруты, зарегистрированные позже
func NewSitemapController(routes func() gin.RoutesInfo) *SitemapController {
	return &SitemapController{routes: routes}
}

// GET /
func (sc *SitemapController) Index(c *gin.Context) {
	c.Render(http.StatusOK, render.HTML{
		Template: sitemapTemplate,
		Data: gin.H{
			"Host":  requestHost(c),
			"Links": sc.Links(),
		},
	})
}

// Links - GET маршруты без параметров, включая сам /
func (sc *SitemapController) Links() []string {
	seen := map[string]bool{}
	var links []string
	for _, r := range sc.routes() {
		if r.Method != http.MethodGet {
			continue
		}
		if strings.ContainsAny(r.Path, ":*") || seen[r.Path] {
			continue
		}
		seen[r.Path] = true
		links = append(links, r.Path)
	}
	sort.Strings(links)
	return links
}

func requestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + c.Request.Host + "/"
}
