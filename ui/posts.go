package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"adminconsole/models"
)

type postForm struct {
	Title    string `validate:"required"`
	Content  string `validate:"required"`
	Category string
	Status   string
}

// postsView is everything the posts page needs to render: the snapshot, a
// page-level error, and the modal state.
type postsView struct {
	Posts     []models.Post
	Error     string
	ShowModal bool
	EditID    string
	Form      postForm
	ModalErr  string
}

// PostsPage renders the posts management screen. The collection is re-fetched
// on every view, matching the load-on-mount behavior of the screen.
func (h *Handler) PostsPage(w http.ResponseWriter, r *http.Request) {
	_ = h.Posts.Load(r.Context())
	posts, _, loadErr := h.Posts.Snapshot()

	view := postsView{Posts: posts, Error: loadErr}
	q := r.URL.Query()
	if q.Get("modal") == "create" {
		view.ShowModal = true
		view.Form.Status = models.PostDraft
	} else if editID := q.Get("edit"); editID != "" {
		if post, ok := h.Posts.Find(editID); ok {
			view.ShowModal = true
			view.EditID = editID
			view.Form = postForm{Title: post.Title, Content: post.Content, Category: post.Category, Status: post.Status}
		}
	}

	renderHTML(w, http.StatusOK, h.postsPage(principalFromRequest(r), view))
}

// CreatePost handles the create-modal submission. On failure the modal stays
// open with the error and the draft fields; the list underneath is untouched.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form := postFormFromRequest(r)
	p := principalFromRequest(r)

	if err := h.validate.Struct(form); err != nil {
		h.rerenderPosts(w, r, postsView{ShowModal: true, Form: form, ModalErr: "Title and content are required."})
		return
	}

	fields := models.NewPostFields(p, form.Title, form.Content, form.Category, form.Status)
	if _, err := h.Posts.SubmitCreate(r.Context(), fields); err != nil {
		h.rerenderPosts(w, r, postsView{ShowModal: true, Form: form, ModalErr: "Failed to create post. Please try again."})
		return
	}

	http.Redirect(w, r, "/dashboard/posts", http.StatusSeeOther)
}

// UpdatePost handles the edit-modal submission. Failures surface as the
// page-level error banner.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	form := postFormFromRequest(r)

	if err := h.validate.Struct(form); err != nil {
		h.rerenderPosts(w, r, postsView{ShowModal: true, EditID: id, Form: form, ModalErr: "Title and content are required."})
		return
	}

	if err := h.Posts.SubmitEdit(r.Context(), id, models.EditPostFields(form.Title, form.Content, form.Category, form.Status)); err != nil {
		h.rerenderPosts(w, r, postsView{Error: "Failed to update post"})
		return
	}

	http.Redirect(w, r, "/dashboard/posts", http.StatusSeeOther)
}

// DeletePost removes a post after the browser-side confirmation. The local
// list is patched directly; no re-fetch happens on success.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Posts.Delete(r.Context(), id); err != nil {
		h.rerenderPosts(w, r, postsView{Error: "Failed to delete post"})
		return
	}
	http.Redirect(w, r, "/dashboard/posts", http.StatusSeeOther)
}

func (h *Handler) rerenderPosts(w http.ResponseWriter, r *http.Request, view postsView) {
	posts, _, loadErr := h.Posts.Snapshot()
	view.Posts = posts
	if view.Error == "" {
		view.Error = loadErr
	}
	renderHTML(w, http.StatusOK, h.postsPage(principalFromRequest(r), view))
}

func postFormFromRequest(r *http.Request) postForm {
	form := postForm{
		Title:    r.PostFormValue("title"),
		Content:  r.PostFormValue("content"),
		Category: r.PostFormValue("category"),
		Status:   r.PostFormValue("status"),
	}
	if !models.ValidPostStatus(form.Status) {
		form.Status = models.PostDraft
	}
	return form
}

func (h *Handler) postsPage(p *models.Principal, view postsView) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(view.Posts))
	for _, post := range view.Posts {
		rows = append(rows, html.Tr(
			html.Td(
				html.Div(html.Class("cell-title"), gomponents.Text(post.Title)),
				html.Div(html.Class("cell-sub"), gomponents.Text(post.Content)),
			),
			html.Td(html.Span(html.Class("badge badge-category"), gomponents.Text(categoryLabel(post.Category)))),
			html.Td(gomponents.Text(post.Author)),
			html.Td(postStatusBadge(post.Status)),
			html.Td(gomponents.Text(formatDate(post.CreatedAt))),
			html.Td(
				html.A(html.Href("/dashboard/posts?edit="+post.ID), html.Class("action-link"), gomponents.Text("Edit")),
				html.Form(
					html.Method("post"),
					html.Action("/dashboard/posts/"+post.ID+"/delete"),
					html.Class("inline-form"),
					gomponents.Attr("onsubmit", confirmExpr(fmt.Sprintf("Are you sure you want to delete %q?", post.Title))),
					html.Button(html.Type("submit"), html.Class("action-link danger"), gomponents.Text("Delete")),
				),
			),
		))
	}

	body := []gomponents.Node{
		html.Div(
			html.Class("page-actions"),
			html.A(html.Href("/dashboard/posts?modal=create"), html.Class("btn btn-primary"), gomponents.Text("+ Create Post")),
		),
		errorBanner(view.Error),
	}

	if len(view.Posts) == 0 {
		body = append(body, html.Div(
			html.Class("card empty-state"),
			html.H3(gomponents.Text("No posts found")),
			html.P(html.Class("muted"), gomponents.Text("Get started by creating your first post.")),
			html.A(html.Href("/dashboard/posts?modal=create"), html.Class("btn btn-primary"), gomponents.Text("Create Your First Post")),
		))
	} else {
		body = append(body, html.Div(
			html.Class("card table-wrap"),
			html.Table(
				html.THead(html.Tr(
					html.Th(gomponents.Text("Title")),
					html.Th(gomponents.Text("Category")),
					html.Th(gomponents.Text("Author")),
					html.Th(gomponents.Text("Status")),
					html.Th(gomponents.Text("Created")),
					html.Th(gomponents.Text("Actions")),
				)),
				html.TBody(gomponents.Group(rows)),
			),
		))
	}

	body = append(body, postsStats(view.Posts))

	if view.ShowModal {
		body = append(body, postModal(view))
	}

	return appPage("Posts Management", "posts", p, body...)
}

func postModal(view postsView) gomponents.Node {
	heading := "Create New Post"
	action := "/dashboard/posts"
	submit := "Create Post"
	if view.EditID != "" {
		heading = "Edit Post"
		action = "/dashboard/posts/" + view.EditID
		submit = "Update Post"
	}

	return html.Div(
		html.Class("modal-overlay"),
		html.Div(
			html.Class("modal"),
			html.H3(gomponents.Text(heading)),
			errorBanner(view.ModalErr),
			html.Form(
				html.Method("post"),
				html.Action(action),
				html.Label(gomponents.Text("Title *")),
				html.Input(html.Type("text"), html.Name("title"), html.Value(view.Form.Title), html.Placeholder("Enter post title"), html.Required()),
				html.Label(gomponents.Text("Category")),
				html.Input(html.Type("text"), html.Name("category"), html.Value(view.Form.Category), html.Placeholder("Enter category")),
				html.Label(gomponents.Text("Content *")),
				html.Textarea(html.Name("content"), html.Rows("6"), html.Placeholder("Write your post content here..."), html.Required(), gomponents.Text(view.Form.Content)),
				html.Label(gomponents.Text("Status")),
				html.Select(
					html.Name("status"),
					html.Option(html.Value(models.PostDraft), gomponents.Text("Draft"), gomponents.If(view.Form.Status != models.PostPublished, html.Selected())),
					html.Option(html.Value(models.PostPublished), gomponents.Text("Published"), gomponents.If(view.Form.Status == models.PostPublished, html.Selected())),
				),
				html.Div(
					html.Class("modal-actions"),
					html.A(html.Href("/dashboard/posts"), html.Class("btn btn-secondary"), gomponents.Text("Cancel")),
					html.Button(html.Type("submit"), html.Class("btn btn-primary"), gomponents.Text(submit)),
				),
			),
		),
	)
}

func postsStats(posts []models.Post) gomponents.Node {
	published, drafts := 0, 0
	authors := map[string]struct{}{}
	for _, p := range posts {
		if p.Status == models.PostPublished {
			published++
		} else {
			drafts++
		}
		authors[p.Author] = struct{}{}
	}

	return html.Div(
		html.Class("stats-grid"),
		statCard(fmt.Sprintf("%d", len(posts)), "Total Posts"),
		statCard(fmt.Sprintf("%d", published), "Published"),
		statCard(fmt.Sprintf("%d", drafts), "Drafts"),
		statCard(fmt.Sprintf("%d", len(authors)), "Unique Authors"),
	)
}

func statCard(value, label string) gomponents.Node {
	return html.Div(
		html.Class("card stat-card"),
		html.Div(html.Class("stat-value"), gomponents.Text(value)),
		html.Div(html.Class("muted"), gomponents.Text(label)),
	)
}

func postStatusBadge(status string) gomponents.Node {
	if status == models.PostPublished {
		return html.Span(html.Class("badge badge-green"), gomponents.Text("Published"))
	}
	return html.Span(html.Class("badge badge-yellow"), gomponents.Text("Draft"))
}

func categoryLabel(category string) string {
	if category == "" {
		return "Uncategorized"
	}
	return category
}

// confirmExpr builds the onsubmit confirmation guard; declining the prompt
// cancels the form post entirely.
func confirmExpr(message string) string {
	encoded, _ := json.Marshal(message)
	return "return confirm(" + string(encoded) + ")"
}

func formatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}
