package handlers

import (
	"fmt"
	"net/http"

	"blogly/monitoring"
	"blogly/repositories"
	"blogly/templates"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

// UserHandler serves the user pages.
type UserHandler struct {
	Users repositories.UserRepository
	Posts repositories.PostRepository
	Store sessions.Store
}

func NewUserHandler(users repositories.UserRepository, posts repositories.PostRepository, store sessions.Store) *UserHandler {
	return &UserHandler{Users: users, Posts: posts, Store: store}
}

// Home redirects the root path to the user list.
func (h *UserHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List()
	if err != nil {
		respondError(w, r, err, "listing users")
		return
	}
	templates.Render(w, "users.html", map[string]interface{}{
		"Title":   "Users",
		"Flashes": takeFlashes(h.Store, w, r),
		"Users":   users,
	})
}

func (h *UserHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "user_new.html", map[string]interface{}{
		"Title": "New User",
	})
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireForm(w, r, "first_name", "last_name") {
		return
	}

	user, err := h.Users.Create(
		r.PostFormValue("first_name"),
		r.PostFormValue("last_name"),
		r.PostFormValue("image_url"),
	)
	if err != nil {
		respondError(w, r, err, "creating user")
		return
	}

	logrus.WithField("user_id", user.ID).Info("user created")
	monitoring.UsersCreated.Inc()
	addFlash(h.Store, w, r, "User created")
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *UserHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := h.Users.Get(id)
	if err != nil {
		respondError(w, r, err, "loading user")
		return
	}
	posts, err := h.Posts.ListByUser(id)
	if err != nil {
		respondError(w, r, err, "listing posts")
		return
	}

	templates.Render(w, "user_detail.html", map[string]interface{}{
		"Title":   user.FullName(),
		"Flashes": takeFlashes(h.Store, w, r),
		"User":    user,
		"Posts":   posts,
	})
}

func (h *UserHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := h.Users.Get(id)
	if err != nil {
		respondError(w, r, err, "loading user")
		return
	}

	templates.Render(w, "user_edit.html", map[string]interface{}{
		"Title": "Edit User",
		"User":  user,
	})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !requireForm(w, r, "first_name", "last_name") {
		return
	}

	user, err := h.Users.Update(id,
		r.PostFormValue("first_name"),
		r.PostFormValue("last_name"),
		r.PostFormValue("image_url"),
	)
	if err != nil {
		respondError(w, r, err, "updating user")
		return
	}

	logrus.WithField("user_id", user.ID).Info("user updated")
	addFlash(h.Store, w, r, "User updated")
	http.Redirect(w, r, "/users", http.StatusFound)
}

// Delete removes the user and every post they own.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.Users.Delete(id); err != nil {
		respondError(w, r, err, "deleting user")
		return
	}

	logrus.WithField("user_id", id).Info("user deleted")
	monitoring.UsersDeleted.Inc()
	addFlash(h.Store, w, r, fmt.Sprintf("User %d deleted", id))
	http.Redirect(w, r, "/users", http.StatusFound)
}
