package handlers

import (
	"net/http"

	"blogly/monitoring"
	"blogly/repositories"
	"blogly/templates"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

// TagHandler serves the tag pages.
type TagHandler struct {
	Tags  repositories.TagRepository
	Store sessions.Store
}

func NewTagHandler(tags repositories.TagRepository, store sessions.Store) *TagHandler {
	return &TagHandler{Tags: tags, Store: store}
}

func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Tags.List()
	if err != nil {
		respondError(w, r, err, "listing tags")
		return
	}
	templates.Render(w, "tags.html", map[string]interface{}{
		"Title":   "Tags",
		"Flashes": takeFlashes(h.Store, w, r),
		"Tags":    tags,
	})
}

func (h *TagHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "tag_new.html", map[string]interface{}{
		"Title": "New Tag",
	})
}

func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireForm(w, r, "name") {
		return
	}

	tag, err := h.Tags.Create(r.PostFormValue("name"))
	if err != nil {
		respondError(w, r, err, "creating tag")
		return
	}

	logrus.WithField("tag_id", tag.ID).Info("tag created")
	monitoring.TagsCreated.Inc()
	addFlash(h.Store, w, r, "Tag created")
	http.Redirect(w, r, "/tags", http.StatusFound)
}

func (h *TagHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	tag, err := h.Tags.Get(id)
	if err != nil {
		respondError(w, r, err, "loading tag")
		return
	}

	templates.Render(w, "tag_detail.html", map[string]interface{}{
		"Title":   tag.Name,
		"Flashes": takeFlashes(h.Store, w, r),
		"Tag":     tag,
	})
}

func (h *TagHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	tag, err := h.Tags.Get(id)
	if err != nil {
		respondError(w, r, err, "loading tag")
		return
	}

	templates.Render(w, "tag_edit.html", map[string]interface{}{
		"Title": "Edit Tag",
		"Tag":   tag,
	})
}

func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !requireForm(w, r, "name") {
		return
	}

	tag, err := h.Tags.Update(id, r.PostFormValue("name"))
	if err != nil {
		respondError(w, r, err, "updating tag")
		return
	}

	logrus.WithField("tag_id", tag.ID).Info("tag updated")
	addFlash(h.Store, w, r, "Tag updated")
	http.Redirect(w, r, "/tags", http.StatusFound)
}

// Delete removes the tag and its post associations. Posts survive.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.Tags.Delete(id); err != nil {
		respondError(w, r, err, "deleting tag")
		return
	}

	logrus.WithField("tag_id", id).Info("tag deleted")
	monitoring.TagsDeleted.Inc()
	addFlash(h.Store, w, r, "Tag deleted")
	http.Redirect(w, r, "/tags", http.StatusFound)
}
