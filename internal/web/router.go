package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter wires the handler onto the application's routes. Templates are
// embedded so the binary renders without a working directory dependency.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", h.Home)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.SearchMovies)
	r.GET("/select", h.SelectList)
	r.GET("/movie_details/:id", h.MovieDetails)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.EditSubmit)
	r.GET("/delete/:id", h.DeleteMovie)
	r.POST("/delete/:id", h.DeleteMovie)
	r.GET("/create_db", h.CreateDB)

	return r
}
