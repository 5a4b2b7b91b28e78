package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"blogly/models"
	"blogly/monitoring"
	"blogly/repositories"
	"blogly/templates"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

// PostHandler serves the post pages.
type PostHandler struct {
	Posts repositories.PostRepository
	Users repositories.UserRepository
	Tags  repositories.TagRepository
	Store sessions.Store
}

func NewPostHandler(posts repositories.PostRepository, users repositories.UserRepository, tags repositories.TagRepository, store sessions.Store) *PostHandler {
	return &PostHandler{Posts: posts, Users: users, Tags: tags, Store: store}
}

// TagOption is a tag plus whether the post being edited carries it.
type TagOption struct {
	Tag     models.Tag
	Checked bool
}

func (h *PostHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := h.Users.Get(userID)
	if err != nil {
		respondError(w, r, err, "loading user")
		return
	}
	tags, err := h.Tags.List()
	if err != nil {
		respondError(w, r, err, "listing tags")
		return
	}

	templates.Render(w, "post_new.html", map[string]interface{}{
		"Title": "New Post",
		"User":  user,
		"Tags":  tags,
	})
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !requireForm(w, r, "title", "content") {
		return
	}

	post, err := h.Posts.Create(userID,
		r.PostFormValue("title"),
		r.PostFormValue("content"),
		formTagIDs(r),
	)
	if err != nil {
		respondError(w, r, err, "creating post")
		return
	}

	logrus.WithFields(logrus.Fields{"post_id": post.ID, "user_id": userID}).Info("post created")
	monitoring.PostsCreated.Inc()
	addFlash(h.Store, w, r, "Post created")
	http.Redirect(w, r, fmt.Sprintf("/users/%d", userID), http.StatusFound)
}

func (h *PostHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.Posts.Get(id)
	if err != nil {
		respondError(w, r, err, "loading post")
		return
	}

	templates.Render(w, "post_detail.html", map[string]interface{}{
		"Title":   post.Title,
		"Flashes": takeFlashes(h.Store, w, r),
		"Post":    post,
	})
}

func (h *PostHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.Posts.Get(id)
	if err != nil {
		respondError(w, r, err, "loading post")
		return
	}
	tags, err := h.Tags.List()
	if err != nil {
		respondError(w, r, err, "listing tags")
		return
	}

	attached := make(map[uint]bool, len(post.Tags))
	for _, tag := range post.Tags {
		attached[tag.ID] = true
	}
	options := make([]TagOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, TagOption{Tag: tag, Checked: attached[tag.ID]})
	}

	templates.Render(w, "post_edit.html", map[string]interface{}{
		"Title": "Edit Post",
		"Post":  post,
		"Tags":  options,
	})
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !requireForm(w, r, "title", "content") {
		return
	}

	post, err := h.Posts.Update(id,
		r.PostFormValue("title"),
		r.PostFormValue("content"),
		formTagIDs(r),
	)
	if err != nil {
		respondError(w, r, err, "updating post")
		return
	}

	logrus.WithField("post_id", post.ID).Info("post updated")
	addFlash(h.Store, w, r, "Post updated")
	http.Redirect(w, r, fmt.Sprintf("/posts/%d", post.ID), http.StatusFound)
}

// Delete removes the post and redirects to its former owner's page.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ownerID, err := h.Posts.Delete(id)
	if err != nil {
		respondError(w, r, err, "deleting post")
		return
	}

	logrus.WithField("post_id", id).Info("post deleted")
	monitoring.PostsDeleted.Inc()
	addFlash(h.Store, w, r, "Post deleted")
	http.Redirect(w, r, fmt.Sprintf("/users/%d", ownerID), http.StatusFound)
}

// formTagIDs collects the repeated tags checkbox values.
func formTagIDs(r *http.Request) []uint {
	var ids []uint
	for _, raw := range r.PostForm["tags"] {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			ids = append(ids, uint(id))
		}
	}
	return ids
}
