package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/service"
	"taskboard/internal/storage"
)

//go:embed templates/*.html static/*.css
var assetsFS embed.FS

// ServerConfig wires the handler to its services. Provisioner is nil on
// backends that migrate automatically; the setup endpoints are only
// registered when it is set.
type ServerConfig struct {
	Categories  *service.CategoryService
	Tasks       *service.TaskService
	Store       storage.Store
	Provisioner storage.Provisioner
}

type Server struct {
	cfg  ServerConfig
	tmpl *template.Template
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Categories == nil {
		return nil, errors.New("web: category service is nil")
	}
	if cfg.Tasks == nil {
		return nil, errors.New("web: task service is nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("web: store is nil")
	}

	tmpl, err := template.ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, tmpl: tmpl}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /static/app.css", s.handleAppCSS)
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /categories", s.handleCategoryCreate)
	mux.HandleFunc("POST /categories/{id}/delete", s.handleCategoryDelete)
	mux.HandleFunc("POST /tasks", s.handleTaskCreate)
	mux.HandleFunc("POST /tasks/{id}/toggle", s.handleTaskToggle)
	mux.HandleFunc("POST /tasks/{id}/delete", s.handleTaskDelete)
	if s.cfg.Provisioner != nil {
		mux.HandleFunc("POST /create-tables", s.handleTablesCreate)
		mux.HandleFunc("POST /delete-tables", s.handleTablesDelete)
	}
	return mux
}

type pageVM struct {
	// ShowSetup replaces the whole board with the create-tables prompt.
	ShowSetup bool
	// CanProvision shows the teardown control next to the board.
	CanProvision bool
	Categories   []model.Category
	Tasks        []taskVM
}

type taskVM struct {
	ID           int64
	Title        string
	Done         bool
	CreatedAt    string
	CategoryName string
}

func taskRows(tasks []model.TaskWithCategory) []taskVM {
	rows := make([]taskVM, 0, len(tasks))
	for _, t := range tasks {
		vm := taskVM{
			ID:        t.ID,
			Title:     t.Title,
			Done:      t.Done,
			CreatedAt: t.CreatedAt.Format("2006-01-02 15:04"),
		}
		if t.CategoryName != nil {
			vm.CategoryName = *t.CategoryName
		}
		rows = append(rows, vm)
	}
	return rows
}

// handleHome renders the whole board. Listing failures degrade to empty
// sections rather than a blank 500 page, so one bad query never hides
// the rest of the board; the cause still lands in the log.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vm := pageVM{}
	if s.cfg.Provisioner != nil {
		vm.CanProvision = true
		ready, err := s.cfg.Provisioner.TablesExist(ctx)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !ready {
			vm.ShowSetup = true
			s.writeHTMLTemplate(w, "index.html", vm)
			return
		}
	}

	categories, err := s.cfg.Categories.List(ctx)
	if err != nil {
		log.Printf("list categories: %v", err)
	}
	tasks, err := s.cfg.Tasks.List(ctx)
	if err != nil {
		log.Printf("list tasks: %v", err)
	}

	vm.Categories = categories
	vm.Tasks = taskRows(tasks)
	s.writeHTMLTemplate(w, "index.html", vm)
}

func (s *Server) handleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	name := strings.TrimSpace(r.Form.Get("name"))
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	category, err := s.cfg.Categories.Create(r.Context(), name)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	log.Printf("[info] category created id=%d name=%q", category.ID, category.Name)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.cfg.Categories.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("[info] category deleted id=%d", id)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	title := strings.TrimSpace(r.Form.Get("title"))
	rawCategoryID := strings.TrimSpace(r.Form.Get("category_id"))
	if title == "" {
		http.Error(w, "missing title", http.StatusBadRequest)
		return
	}
	if rawCategoryID == "" {
		http.Error(w, "missing category_id", http.StatusBadRequest)
		return
	}
	categoryID, err := strconv.ParseInt(rawCategoryID, 10, 64)
	if err != nil {
		http.Error(w, "invalid category_id", http.StatusBadRequest)
		return
	}

	task, err := s.cfg.Tasks.Create(r.Context(), service.TaskInput{
		Title:      title,
		CategoryID: categoryID,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	log.Printf("[info] task created id=%d title=%q", task.ID, task.Title)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleTaskToggle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.cfg.Tasks.Toggle(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.cfg.Tasks.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("[info] task deleted id=%d", id)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleTablesCreate(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Provisioner.CreateTables(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("[info] tables created")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleTablesDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Provisioner.DropTables(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("[info] tables dropped")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Store.Ping(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleAppCSS(w http.ResponseWriter, r *http.Request) {
	b, err := assetsFS.ReadFile("static/app.css")
	if err != nil || len(b) == 0 {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// pathID parses the {id} path segment. Ids are positive integers; anything
// else is a client error, not a lookup miss.
func pathID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// writeServiceError maps validation failures to 400 and everything else,
// storage included, to 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) renderTemplate(name string, data any) (string, error) {
	var b strings.Builder
	if err := s.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *Server) writeHTMLTemplate(w http.ResponseWriter, name string, data any) {
	html, err := s.renderTemplate(name, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, html)
}
