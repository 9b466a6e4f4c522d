package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/timada-org/todos/internal/core"
	"github.com/timada-org/todos/internal/events"
	"github.com/timada-org/todos/internal/store"
)

type AppOptions struct {
	Addr      string
	Store     *store.Store
	Publisher *events.Client
}

type App struct {
	addr      string
	store     *store.Store
	publisher *events.Client
}

func New(options AppOptions) *App {
	return &App{
		addr:      options.Addr,
		store:     options.Store,
		publisher: options.Publisher,
	}
}

func (app *App) Handler() http.Handler {
	router := httprouter.New()
	router.GET("/", app.index())
	router.GET("/users", app.listUsers())
	router.POST("/users", app.registerUser())
	router.DELETE("/users/:name", app.deleteUser())
	router.GET("/users/:name/todos", app.listTodos())
	router.POST("/users/:name/todos", app.createTodo())
	router.GET("/users/:name/todos/:id", app.getTodo())
	router.PATCH("/users/:name/todos/:id", app.updateTodo())
	router.DELETE("/users/:name/todos/:id", app.deleteTodo())

	return router
}

func (app *App) Listen() error {
	log.Printf("Listening on %s", app.addr)

	return http.ListenAndServe(app.addr, app.Handler())
}

// handle is an httprouter.Handle carrying the request id used in log lines.
type handle func(w http.ResponseWriter, r *http.Request, p httprouter.Params, reqID string)

func (app *App) wrap(next handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		reqID, err := gonanoid.New()
		if err != nil {
			reqID = "-"
		}

		log.Printf("[%s] %s %s", reqID, r.Method, r.URL.Path)

		next(w, r, p, reqID)
	}
}

type message struct {
	Message string `json:"message"`
}

func (app *App) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err.Error())
	}
}

func (app *App) writeError(w http.ResponseWriter, reqID string, err error) {
	var verr *core.ValidationError

	switch {
	case errors.As(err, &verr):
		app.writeJSON(w, http.StatusBadRequest, message{verr.Error()})
	case errors.Is(err, core.ErrDuplicateName):
		app.writeJSON(w, http.StatusBadRequest, message{"User already exists"})
	case errors.Is(err, core.ErrOwnerNotFound):
		app.writeJSON(w, http.StatusNotFound, message{"User not found"})
	case errors.Is(err, core.ErrTodoNotFound):
		app.writeJSON(w, http.StatusNotFound, message{"Todo not found"})
	default:
		log.Printf("[%s] %s", reqID, err.Error())
		app.writeJSON(w, http.StatusInternalServerError, message{"Internal server error"})
	}
}
