package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goblog/blog-service/internal/middleware"
	"github.com/goblog/blog-service/internal/service"
	"github.com/goblog/blog-service/internal/session"
)

// PostHandler handles post listing, detail, comments and the admin-only
// post management routes.
type PostHandler struct {
	postService    service.PostService
	commentService service.CommentService
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(postService service.PostService, commentService service.CommentService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
	}
}

// PostForm represents the create/edit post form payload.
type PostForm struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	ImgURL   string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}

// CommentForm represents the comment form payload.
type CommentForm struct {
	Comment string `form:"comment" binding:"required"`
}

func (f PostForm) input() service.PostInput {
	return service.PostInput{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		ImgURL:   f.ImgURL,
		Body:     f.Body,
	}
}

// Index renders the post listing, newest first.
func (h *PostHandler) Index(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, http.StatusOK, "index.html", gin.H{"Posts": posts})
}

// Show renders a single post with its comments.
func (h *PostHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			renderNotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, http.StatusOK, "post.html", gin.H{"Post": post})
}

// Comment accepts a comment submission on a post. Anonymous submissions are
// discarded with a message; nothing is written.
func (h *PostHandler) Comment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		session.Flash(c, "Comment text is required.")
		c.Redirect(http.StatusFound, postURL(id))
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		session.Flash(c, "You need to login to comment!")
		c.Redirect(http.StatusFound, postURL(id))
		return
	}

	if _, err := h.commentService.Create(c.Request.Context(), user.ID, id, form.Comment); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			renderNotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, postURL(id))
}

// ShowNew renders the empty post form.
func (h *PostHandler) ShowNew(c *gin.Context) {
	render(c, http.StatusOK, "make-post.html", gin.H{"Heading": "New Post", "Form": PostForm{}})
}

// Create publishes a new post owned by the current (admin) user.
func (h *PostHandler) Create(c *gin.Context) {
	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "make-post.html", gin.H{
			"Heading": "New Post",
			"Error":   "All fields are required and the image must be a URL.",
			"Form":    form,
		})
		return
	}

	// The admin guard runs before this handler.
	user := middleware.CurrentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	if _, err := h.postService.Create(c.Request.Context(), user.ID, form.input()); err != nil {
		if errors.Is(err, service.ErrTitleTaken) {
			session.Flash(c, "A post with that title already exists.")
			render(c, http.StatusOK, "make-post.html", gin.H{
				"Heading": "New Post",
				"Form":    form,
			})
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowEdit renders the post form pre-filled with the current fields.
func (h *PostHandler) ShowEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			renderNotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	render(c, http.StatusOK, "make-post.html", gin.H{
		"Heading": "Edit Post",
		"Form": PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImgURL:   post.ImgURL,
			Body:     post.Body,
		},
	})
}

// Update overwrites the editable fields of an existing post.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "make-post.html", gin.H{
			"Heading": "Edit Post",
			"Error":   "All fields are required and the image must be a URL.",
			"Form":    form,
		})
		return
	}

	if _, err := h.postService.Update(c.Request.Context(), id, form.input()); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			renderNotFound(c)
		case errors.Is(err, service.ErrTitleTaken):
			session.Flash(c, "A post with that title already exists.")
			render(c, http.StatusOK, "make-post.html", gin.H{
				"Heading": "Edit Post",
				"Form":    form,
			})
		default:
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}
	c.Redirect(http.StatusFound, postURL(id))
}

// Delete removes a post and its comments, then returns to the listing.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			renderNotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// parseID reads the :id route parameter. A non-numeric id renders the 404
// page and reports false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return 0, false
	}
	return id, true
}

func postURL(id int64) string {
	return fmt.Sprintf("/post/%d", id)
}
