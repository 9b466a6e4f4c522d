package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/timada-org/todos/internal/core"
)

func (app *App) index() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		if _, err := w.Write([]byte("Todo API")); err != nil {
			log.Println(err.Error())
		}
	}
}

func (app *App) listUsers() httprouter.Handle {
	return app.wrap(func(w http.ResponseWriter, r *http.Request, p httprouter.Params, reqID string) {
		users, err := app.store.ListUsers()
		if err != nil {
			app.writeError(w, reqID, err)
			return
		}

		app.writeJSON(w, http.StatusOK, users)
	})
}

func (app *App) registerUser() httprouter.Handle {
	return app.wrap(func(w http.ResponseWriter, r *http.Request, p httprouter.Params, reqID string) {
		var input core.RegisterUserInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			app.writeJSON(w, http.StatusBadRequest, message{"Bad request"})
			return
		}

		user, err := app.store.Register(&input)
		if err != nil {
			app.writeError(w, reqID, err)
			return
		}

		app.writeJSON(w, http.StatusOK, user)
	})
}

func (app *App) deleteUser() httprouter.Handle {
	return app.wrap(func(w http.ResponseWriter, r *http.Request, p httprouter.Params, reqID string) {
		name := p.ByName("name")

		if err := app.store.DeleteUser(name); err != nil {
			app.writeError(w, reqID, err)
			return
		}

		app.writeJSON(w, http.StatusOK, message{"User deleted successfully"})
	})
}
