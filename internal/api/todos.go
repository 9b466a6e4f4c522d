package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/timada-org/todos/internal/core"
	"github.com/timada-org/todos/internal/events"
)

func (app *App) listTodos() httprouter.Handle {
	return app.wrap(func(w http.ResponseWriter, r *http.Request, p httprouter.Params, reqID string) {
		todos, err := app.store.ListTodos(p.ByName("name"))
		if err != nil {
			app.writeError(w, reqID, err)
			return
		}

		app.writeJSON(w, http.StatusOK, todos)
	})
}

func (app *App) createTodo() httprouter.Handle {
	return app.wrap(func(w http.ResponseWriter, r *http.Request, p httprouter.Params, reqID string) {
		var input core.CreateTodoInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			app.writeJSON(w, http.StatusBadRequest, message{"Bad request"})
			return
		}

		todo, err := app.store.CreateTodo(p.ByName("name"), &input)
		if err != nil {
			app.writeError(w, reqID, err)
			return
		}

		app.publish(todo.UserName, "Created", todo.ID, todo)

		app.writeJSON(w, http.StatusOK, todo)
	})
}

func (app *App) getTodo() httprouter.Handle {
	return app.wrap(func(w http.ResponseWriter, r *http.Request, p httprouter.Params, reqID string) {
		id, err := strconv.ParseUint(p.ByName("id"), 10, 64)
		if err != nil {
			app.writeJSON(w, http.StatusBadRequest, message{"Bad request"})
			return
		}

		todo, err := app.store.GetTodo(p.ByName("name"), id)
		if err != nil {
			app.writeError(w, reqID, err)
			return
		}

		app.writeJSON(w, http.StatusOK, todo)
	})
}

func (app *App) updateTodo() httprouter.Handle {
	return app.wrap(func(w http.ResponseWriter, r *http.Request, p httprouter.Params, reqID string) {
		id, err := strconv.ParseUint(p.ByName("id"), 10, 64)
		if err != nil {
			app.writeJSON(w, http.StatusBadRequest, message{"Bad request"})
			return
		}

		var input core.UpdateTodoInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			app.writeJSON(w, http.StatusBadRequest, message{"Bad request"})
			return
		}

		todo, err := app.store.UpdateTodo(p.ByName("name"), id, &input)
		if err != nil {
			app.writeError(w, reqID, err)
			return
		}

		app.publish(todo.UserName, "Updated", todo.ID, todo)

		app.writeJSON(w, http.StatusOK, todo)
	})
}

func (app *App) deleteTodo() httprouter.Handle {
	return app.wrap(func(w http.ResponseWriter, r *http.Request, p httprouter.Params, reqID string) {
		id, err := strconv.ParseUint(p.ByName("id"), 10, 64)
		if err != nil {
			app.writeJSON(w, http.StatusBadRequest, message{"Bad request"})
			return
		}

		owner := p.ByName("name")

		if err := app.store.DeleteTodo(owner, id); err != nil {
			app.writeError(w, reqID, err)
			return
		}

		app.publish(owner, "Deleted", id, map[string]any{"id": id})

		app.writeJSON(w, http.StatusOK, struct {
			ID      uint64 `json:"id"`
			Message string `json:"message"`
		}{id, "Todo deleted successfully"})
	})
}

func (app *App) publish(owner, name string, id uint64, data any) {
	if app.publisher == nil {
		return
	}

	go func() {
		err := app.publisher.Send(&events.Event{
			UserName: owner,
			Topic:    fmt.Sprintf("todos/%d", id),
			Name:     name,
			Data:     data,
		})
		if err != nil {
			log.Println(err.Error())
		}
	}()
}
