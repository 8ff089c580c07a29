package ui

import (
	"encoding/json"
	"fmt"
	"net/http"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// Hard-coded sample series for the analytics page.
type monthlyActivity struct {
	Name  string `json:"name"`
	Users int    `json:"users"`
	Posts int    `json:"posts"`
}

type categoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

var sampleActivity = []monthlyActivity{
	{"Jan", 400, 240},
	{"Feb", 300, 139},
	{"Mar", 200, 180},
	{"Apr", 278, 190},
	{"May", 189, 150},
	{"Jun", 239, 200},
}

var sampleCategories = []categoryShare{
	{"Technology", 35},
	{"Business", 25},
	{"Science", 20},
	{"Health", 15},
	{"Entertainment", 5},
}

var chartColors = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884D8"}

// ChartsPage renders the analytics visualizations. The route is public; the
// principal is nil for signed-out visitors and the layout adapts.
func (h *Handler) ChartsPage(w http.ResponseWriter, r *http.Request) {
	p := principalFromRequest(r)

	renderHTML(w, http.StatusOK, appPage(
		"Analytics Charts",
		"charts",
		p,
		html.P(html.Class("muted"), gomponents.Text("Simple data visualizations")),
		chartCard("Users vs Posts", "bar-chart"),
		chartCard("Content Categories", "pie-chart"),
		chartCard("Weekly Activity", "line-chart"),
		html.Script(html.Src("https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js")),
		chartsScript(),
	))
}

func chartCard(title, canvasID string) gomponents.Node {
	return html.Div(
		html.Class("card chart-card"),
		html.H3(gomponents.Text(title)),
		html.Canvas(html.ID(canvasID)),
	)
}

func chartsScript() gomponents.Node {
	activity, _ := json.Marshal(sampleActivity)
	categories, _ := json.Marshal(sampleCategories)
	colors, _ := json.Marshal(chartColors)

	js := fmt.Sprintf(`
const activity = %s;
const categories = %s;
const colors = %s;
const labels = activity.map(d => d.name);
new Chart(document.getElementById("bar-chart"), {
	type: "bar",
	data: { labels: labels, datasets: [
		{ label: "Users", data: activity.map(d => d.users), backgroundColor: "#2E4A62" },
		{ label: "Posts", data: activity.map(d => d.posts), backgroundColor: "#00C49F" },
	]},
});
new Chart(document.getElementById("pie-chart"), {
	type: "pie",
	data: { labels: categories.map(d => d.name), datasets: [
		{ data: categories.map(d => d.value), backgroundColor: colors },
	]},
});
new Chart(document.getElementById("line-chart"), {
	type: "line",
	data: { labels: labels, datasets: [
		{ label: "Users", data: activity.map(d => d.users), borderColor: "#2E4A62" },
		{ label: "Posts", data: activity.map(d => d.posts), borderColor: "#FF8042" },
	]},
});`, activity, categories, colors)

	return html.Script(gomponents.Raw(js))
}
