package web

import (
	"html/template"
	"io"
	"net/http"

	"embed"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/ivanoskov/notes_app/internal/app"
	"github.com/ivanoskov/notes_app/internal/charts"
	"github.com/ivanoskov/notes_app/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

const clientCookie = "notes_client"

// Server maps HTTP requests onto per-browser client cores and renders
// their state.
type Server struct {
	registry *clientRegistry
	charts   *charts.ChartGenerator
	validate *validator.Validate
	log      *log.Logger
	renderer *renderer
}

func NewServer(providers ProviderFactory, repos app.RepositoryFactory, logger *log.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Server{
		registry: newClientRegistry(providers, repos),
		charts:   charts.NewChartGenerator(),
		validate: validator.New(),
		log:      logger,
		renderer: &renderer{templates: tmpl},
	}, nil
}

// Register wires up all routes on the provided Echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.Renderer = s.renderer

	e.GET("/", s.home)
	e.POST("/auth/signin", s.signIn)
	e.POST("/auth/signup", s.signUp)
	e.POST("/auth/signout", s.signOut)
	e.POST("/notes", s.saveNote)
	e.POST("/notes/:id", s.saveNote)
	e.POST("/notes/:id/delete", s.deleteNote)
	e.POST("/categories", s.createCategory)
	e.POST("/categories/:id/delete", s.deleteCategory)
	e.GET("/stats.png", s.stats)
	e.GET("/healthz", s.healthz)
}

type renderer struct {
	templates *template.Template
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// clientFor resolves the browser's client bundle from its cookie,
// minting a new cookie when the browser has none yet.
func (s *Server) clientFor(c echo.Context) (string, *client, error) {
	id := ""
	if cookie, err := c.Cookie(clientCookie); err == nil && cookie.Value != "" {
		id = cookie.Value
	}
	if id == "" {
		id = uuid.New().String()
		c.SetCookie(&http.Cookie{
			Name:     clientCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
		})
	}

	cl, err := s.registry.get(id)
	if err != nil {
		return "", nil, err
	}
	return id, cl, nil
}

type signinData struct {
	Flashes []Flash
	SignUp  bool
}

type notesData struct {
	Flashes          []Flash
	Email            string
	Notes            []model.Note
	Categories       []model.Category
	SelectedCategory string
	SearchQuery      string
	ShowEditor       bool
	EditingNote      *model.Note
	ShowCategories   bool
	HasNotes         bool
}

func (s *Server) home(c echo.Context) error {
	_, cl, err := s.clientFor(c)
	if err != nil {
		s.log.Errorf("client setup failed: %v", err)
		return c.String(http.StatusInternalServerError, "client setup failed")
	}
	shell := cl.shell

	switch shell.State() {
	case app.StateLoading:
		return c.Render(http.StatusOK, "loading.html", nil)
	case app.StateSignedOut:
		shell.Auth().SetSignUpMode(c.QueryParam("mode") == "signup")
		return c.Render(http.StatusOK, "signin.html", signinData{
			Flashes: cl.flash.drain(),
			SignUp:  shell.Auth().SignUpMode(),
		})
	}

	view := shell.Notes()
	if view == nil {
		return c.String(http.StatusInternalServerError, "notes view unavailable")
	}

	view.SelectCategory(c.QueryParam("category"))
	view.SetSearchQuery(c.QueryParam("q"))

	switch c.QueryParam("editor") {
	case "new":
		view.OpenEditor(nil)
	case "edit":
		if note := view.NoteByID(c.QueryParam("note")); note != nil {
			view.OpenEditor(note)
		} else {
			view.CloseEditor()
		}
	default:
		view.CloseEditor()
	}
	if c.QueryParam("categories") == "1" {
		view.OpenCategories()
	} else {
		view.CloseCategories()
	}

	email := ""
	if sess := shell.Session(); sess != nil {
		email = sess.Email
	}

	return c.Render(http.StatusOK, "notes.html", notesData{
		Flashes:          cl.flash.drain(),
		Email:            email,
		Notes:            view.Filtered(),
		Categories:       view.Categories(),
		SelectedCategory: view.SelectedCategory(),
		SearchQuery:      view.SearchQuery(),
		ShowEditor:       view.EditorOpen(),
		EditingNote:      view.EditingNote(),
		ShowCategories:   view.CategoriesOpen(),
		HasNotes:         len(view.Notes()) > 0,
	})
}

type credentialsForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (s *Server) signIn(c echo.Context) error {
	_, cl, err := s.clientFor(c)
	if err != nil {
		return c.String(http.StatusInternalServerError, "client setup failed")
	}

	var form credentialsForm
	if err := c.Bind(&form); err != nil || s.validate.Struct(&form) != nil {
		cl.flash.Error("Email and password are required")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	cl.shell.Auth().SetSignUpMode(false)
	_ = cl.shell.Auth().Submit(c.Request().Context(), form.Email, form.Password)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) signUp(c echo.Context) error {
	_, cl, err := s.clientFor(c)
	if err != nil {
		return c.String(http.StatusInternalServerError, "client setup failed")
	}

	var form credentialsForm
	if err := c.Bind(&form); err != nil || s.validate.Struct(&form) != nil {
		cl.flash.Error("Email and password are required")
		return c.Redirect(http.StatusSeeOther, "/?mode=signup")
	}

	cl.shell.Auth().SetSignUpMode(true)
	if err := cl.shell.Auth().Submit(c.Request().Context(), form.Email, form.Password); err != nil {
		return c.Redirect(http.StatusSeeOther, "/?mode=signup")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) signOut(c echo.Context) error {
	id, cl, err := s.clientFor(c)
	if err != nil {
		return c.String(http.StatusInternalServerError, "client setup failed")
	}

	if err := cl.shell.SignOut(c.Request().Context()); err != nil {
		s.log.Debugf("sign out: %v", err)
	}
	s.registry.drop(id)
	return c.Redirect(http.StatusSeeOther, "/")
}

type noteForm struct {
	Title    string `form:"title"`
	Content  string `form:"content"`
	Category string `form:"category"`
}

func (s *Server) saveNote(c echo.Context) error {
	_, cl, err := s.clientFor(c)
	if err != nil {
		return c.String(http.StatusInternalServerError, "client setup failed")
	}
	view, editor := cl.shell.Notes(), cl.shell.Editor()
	if view == nil || editor == nil {
		cl.flash.Error("Not signed in")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	var form noteForm
	if err := c.Bind(&form); err != nil {
		cl.flash.Error("Invalid form submission")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	var existing *model.Note
	retry := "/?editor=new"
	if id := c.Param("id"); id != "" {
		existing = view.NoteByID(id)
		if existing == nil {
			cl.flash.Error("Note not found")
			return c.Redirect(http.StatusSeeOther, "/")
		}
		retry = "/?editor=edit&note=" + id
	}

	in := app.NoteInput{
		Title:    form.Title,
		Content:  form.Content,
		Category: form.Category,
	}
	if err := editor.Save(c.Request().Context(), existing, in); err != nil {
		// Failure keeps the editor open for retry.
		return c.Redirect(http.StatusSeeOther, retry)
	}

	view.RefreshNotes(c.Request().Context())
	view.CloseEditor()
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) deleteNote(c echo.Context) error {
	_, cl, err := s.clientFor(c)
	if err != nil {
		return c.String(http.StatusInternalServerError, "client setup failed")
	}
	view, card := cl.shell.Notes(), cl.shell.Card()
	if view == nil || card == nil {
		cl.flash.Error("Not signed in")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := card.Delete(c.Request().Context(), c.Param("id")); err == nil {
		view.RefreshNotes(c.Request().Context())
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) createCategory(c echo.Context) error {
	_, cl, err := s.clientFor(c)
	if err != nil {
		return c.String(http.StatusInternalServerError, "client setup failed")
	}
	view, mgr := cl.shell.Notes(), cl.shell.CategoryManager()
	if view == nil || mgr == nil {
		cl.flash.Error("Not signed in")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := mgr.Create(c.Request().Context(), c.FormValue("name")); err == nil {
		view.RefreshCategories(c.Request().Context())
	}
	return c.Redirect(http.StatusSeeOther, "/?categories=1")
}

func (s *Server) deleteCategory(c echo.Context) error {
	_, cl, err := s.clientFor(c)
	if err != nil {
		return c.String(http.StatusInternalServerError, "client setup failed")
	}
	view, mgr := cl.shell.Notes(), cl.shell.CategoryManager()
	if view == nil || mgr == nil {
		cl.flash.Error("Not signed in")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := mgr.Delete(c.Request().Context(), c.Param("id")); err == nil {
		view.RefreshCategories(c.Request().Context())
	}
	return c.Redirect(http.StatusSeeOther, "/?categories=1")
}

func (s *Server) stats(c echo.Context) error {
	_, cl, err := s.clientFor(c)
	if err != nil {
		return c.String(http.StatusInternalServerError, "client setup failed")
	}
	view := cl.shell.Notes()
	if view == nil {
		return c.NoContent(http.StatusNotFound)
	}

	png, err := s.charts.GenerateCategoryChart(view.Notes())
	if err != nil {
		s.log.Errorf("chart render failed: %v", err)
		return c.NoContent(http.StatusInternalServerError)
	}
	if png == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func (s *Server) healthz(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
