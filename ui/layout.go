package ui

import (
	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"adminconsole/models"
)

type navItem struct {
	Label string
	Href  string
	Key   string
	Icon  string
}

var navItems = []navItem{
	{Label: "Dashboard", Href: "/dashboard", Key: "dashboard", Icon: "📊"},
	{Label: "Users", Href: "/dashboard/users", Key: "users", Icon: "👥"},
	{Label: "Posts", Href: "/dashboard/posts", Key: "posts", Icon: "📝"},
	{Label: "Charts", Href: "/charts", Key: "charts", Icon: "📈"},
}

func pageHead(title string, extra ...gomponents.Node) gomponents.Node {
	nodes := []gomponents.Node{
		html.Meta(html.Charset("utf-8")),
		html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
		html.TitleEl(gomponents.Text(title + " | Admin Console")),
		html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
	}
	nodes = append(nodes, extra...)
	return html.Head(nodes...)
}

// appPage is the dashboard layout: sidebar navigation, signed-in footer, and
// the page body. The principal may be nil on public pages that reuse the
// layout (charts).
func appPage(title, active string, principal *models.Principal, body ...gomponents.Node) gomponents.Node {
	nav := make([]gomponents.Node, 0, len(navItems))
	for _, item := range navItems {
		className := "nav-link"
		if item.Key == active {
			className = "nav-link active"
		}
		nav = append(nav, html.Li(
			html.A(html.Href(item.Href), html.Class(className),
				html.Span(html.Class("nav-icon"), gomponents.Text(item.Icon)),
				html.Span(gomponents.Text(item.Label)),
			),
		))
	}

	sidebar := []gomponents.Node{
		html.Div(html.Class("sidebar-logo"), html.Strong(gomponents.Text("Admin Console"))),
		html.Nav(html.Class("sidebar-nav"), html.Ul(gomponents.Group(nav))),
	}
	if principal != nil {
		sidebar = append(sidebar, html.Div(
			html.Class("sidebar-footer"),
			html.P(html.Class("truncate"), gomponents.Text(principal.Email)),
			html.P(html.Class("muted"), gomponents.Text(verifiedLabel(principal.EmailVerified))),
			html.Form(
				html.Method("post"),
				html.Action("/logout"),
				html.Button(html.Type("submit"), html.Class("btn btn-secondary"), gomponents.Text("Logout")),
			),
		))
	}

	return html.HTML(
		html.Lang("en"),
		pageHead(title),
		html.Body(
			html.Div(
				html.Class("layout"),
				html.Aside(html.Class("sidebar"), gomponents.Group(sidebar)),
				html.Main(
					html.Class("content"),
					html.Header(html.Class("topbar"), html.H2(gomponents.Text(title))),
					gomponents.Group(body),
				),
			),
		),
	)
}

// authPage is the centered card layout used by the landing, login, and
// signup views.
func authPage(title string, body ...gomponents.Node) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		pageHead(title),
		html.Body(
			html.Class("auth-body"),
			html.Main(html.Class("auth-card"), gomponents.Group(body)),
		),
	)
}

func errorBanner(msg string) gomponents.Node {
	if msg == "" {
		return nil
	}
	return html.Div(html.Class("banner banner-error"), html.P(gomponents.Text(msg)))
}

func verifiedLabel(verified bool) string {
	if verified {
		return "Verified"
	}
	return "Not Verified"
}
