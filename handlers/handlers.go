package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SessionName is the cookie carrying flash messages.
const SessionName = "blogly"

// pathID reads the numeric {id} path variable. The route patterns only admit
// digits, so a parse failure means a broken route table, not bad input.
func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// requireForm parses the body and checks that every named field is present.
// Present-but-empty is accepted; the schema, not the form, bounds values.
func requireForm(w http.ResponseWriter, r *http.Request, fields ...string) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Malformed form body", http.StatusBadRequest)
		return false
	}
	for _, field := range fields {
		if !r.PostForm.Has(field) {
			http.Error(w, fmt.Sprintf("Missing form field %q", field), http.StatusBadRequest)
			return false
		}
	}
	return true
}

// respondError translates a repository error: a missing row is a 404,
// anything else is a 500.
func respondError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.NotFound(w, r)
		return
	}
	logrus.WithError(err).Errorf("%s failed", op)
	http.Error(w, "Database error", http.StatusInternalServerError)
}

func addFlash(store sessions.Store, w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := store.Get(r, SessionName)
	session.AddFlash(msg)
	if err := session.Save(r, w); err != nil {
		logrus.WithError(err).Warn("saving session failed")
	}
}

// takeFlashes returns and clears any queued flash messages.
func takeFlashes(store sessions.Store, w http.ResponseWriter, r *http.Request) []string {
	session, _ := store.Get(r, SessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(r, w); err != nil {
			logrus.WithError(err).Warn("saving session failed")
		}
	}
	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}
	return flashes
}
