package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"bramble/app/middleware"
	"bramble/app/models"
	"bramble/app/repositories"
	"bramble/app/services"
	"bramble/app/views"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// PostController handles post pages and the comment form.
type PostController struct {
	posts    *services.PostService
	comments *services.CommentService
	sessions *scs.SessionManager
	renderer *views.Renderer
	logger   *zap.Logger
}

// NewPostController creates a new PostController.
func NewPostController(posts *services.PostService, comments *services.CommentService, sessions *scs.SessionManager, renderer *views.Renderer, logger *zap.Logger) *PostController {
	return &PostController{posts: posts, comments: comments, sessions: sessions, renderer: renderer, logger: logger}
}

type postForm struct {
	Title    string `validate:"required,min=3,max=250"`
	Subtitle string `validate:"required,max=250"`
	ImgURL   string `validate:"required,url"`
	Body     string `validate:"required,min=10"`
}

func postIDFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// Index lists all posts, oldest first.
func (c *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := c.posts.ListPosts()
	if err != nil {
		c.logger.Error("listing posts failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pageData(r, c.sessions, "")
	data.Posts = posts
	renderPage(w, c.renderer, c.logger, "index", data)
}

// Show displays a single post with its comments.
func (c *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := postIDFromRequest(r)
	if err != nil {
		c.notFound(w, r)
		return
	}

	post, err := c.posts.GetPost(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.notFound(w, r)
			return
		}
		c.logger.Error("loading post failed", zap.Int("post_id", id), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pageData(r, c.sessions, post.Title)
	data.Post = post
	renderPage(w, c.renderer, c.logger, "post", data)
}

// CreateComment appends a comment to a post. Anonymous visitors are sent
// to the login page instead.
func (c *PostController) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := postIDFromRequest(r)
	if err != nil {
		c.notFound(w, r)
		return
	}
	postURL := "/post/" + strconv.Itoa(id)

	user := middleware.CurrentUser(r)
	if user == nil {
		flashError(w, r, c.sessions, "/login", "Please log in.")
		return
	}

	if err := r.ParseForm(); err != nil {
		flashError(w, r, c.sessions, postURL, "Invalid form data.")
		return
	}

	text := r.FormValue("text")
	if text == "" {
		http.Redirect(w, r, postURL, http.StatusSeeOther)
		return
	}

	if _, err := c.comments.CreateComment(text, user.ID, id); err != nil {
		if errors.Is(err, services.ErrUnknownPost) {
			c.notFound(w, r)
			return
		}
		c.logger.Error("creating comment failed", zap.Int("post_id", id), zap.Error(err))
		flashError(w, r, c.sessions, postURL, "Could not save your comment.")
		return
	}

	http.Redirect(w, r, postURL, http.StatusSeeOther)
}

// NewForm displays the form for creating a new post. Admin only.
func (c *PostController) NewForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, c.renderer, c.logger, "make-post", pageData(r, c.sessions, "New Post"))
}

// Create handles new post submission. Admin only.
func (c *PostController) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := c.parsePostForm(w, r, false, 0)
	if !ok {
		return
	}

	post := &models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		ImgURL:   form.ImgURL,
		Body:     form.Body,
		AuthorID: middleware.CurrentUser(r).ID,
	}

	if err := c.posts.CreatePost(post); err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			flashError(w, r, c.sessions, "/new-post", "A post with that title already exists.")
			return
		}
		c.logger.Error("creating post failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/post/"+strconv.Itoa(post.ID), http.StatusSeeOther)
}

// EditForm displays the edit form pre-filled with the post. Admin only.
func (c *PostController) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := postIDFromRequest(r)
	if err != nil {
		c.notFound(w, r)
		return
	}

	post, err := c.posts.GetPost(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.notFound(w, r)
			return
		}
		c.logger.Error("loading post failed", zap.Int("post_id", id), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pageData(r, c.sessions, "Edit Post")
	data.IsEdit = true
	data.Form = map[string]string{
		"title":    post.Title,
		"subtitle": post.Subtitle,
		"img_url":  post.ImgURL,
		"body":     post.Body,
	}
	renderPage(w, c.renderer, c.logger, "make-post", data)
}

// Update mutates a post's editable fields. Admin only.
func (c *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := postIDFromRequest(r)
	if err != nil {
		c.notFound(w, r)
		return
	}

	form, ok := c.parsePostForm(w, r, true, id)
	if !ok {
		return
	}

	updated, err := c.posts.UpdatePost(id, form.Title, form.Subtitle, form.ImgURL, form.Body)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			c.notFound(w, r)
		case errors.Is(err, repositories.ErrDuplicateTitle):
			flashError(w, r, c.sessions, "/edit-post/"+strconv.Itoa(id), "A post with that title already exists.")
		default:
			c.logger.Error("updating post failed", zap.Int("post_id", id), zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/post/"+strconv.Itoa(updated.ID), http.StatusSeeOther)
}

// Delete removes a post. Admin only. Comments on the post are left in
// the store.
func (c *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := postIDFromRequest(r)
	if err != nil {
		c.notFound(w, r)
		return
	}

	if err := c.posts.DeletePost(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.notFound(w, r)
			return
		}
		c.logger.Error("deleting post failed", zap.Int("post_id", id), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parsePostForm parses and validates the shared new/edit post form,
// re-rendering it with notices on validation failure.
func (c *PostController) parsePostForm(w http.ResponseWriter, r *http.Request, isEdit bool, id int) (postForm, bool) {
	var form postForm

	redirectURL := "/new-post"
	if isEdit {
		redirectURL = "/edit-post/" + strconv.Itoa(id)
	}

	if err := r.ParseForm(); err != nil {
		flashError(w, r, c.sessions, redirectURL, "Invalid form data.")
		return form, false
	}

	form = postForm{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImgURL:   r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}
	if err := validate.Struct(form); err != nil {
		data := pageData(r, c.sessions, "New Post")
		data.IsEdit = isEdit
		data.Errors = validationMessages(err)
		data.Form = map[string]string{
			"title":    form.Title,
			"subtitle": form.Subtitle,
			"img_url":  form.ImgURL,
			"body":     form.Body,
		}
		renderPage(w, c.renderer, c.logger, "make-post", data)
		return form, false
	}

	return form, true
}

func (c *PostController) notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	renderPage(w, c.renderer, c.logger, "not-found", pageData(r, c.sessions, "Not Found"))
}
