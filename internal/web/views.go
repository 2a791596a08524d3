package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/idilsaglam/showcase/internal/model"
)

const (
	logoURL    = "https://assets.ccbp.in/frontend/react-js/projects-showcase/website-logo-img.png"
	failureURL = "https://assets.ccbp.in/frontend/react-js/projects-showcase/failure-img.png"
	htmxURL    = "https://unpkg.com/htmx.org@2.0.4"
)

// pageView is what the templates need from a controller.
type pageView struct {
	Category model.Category
	Status   model.Status
	Projects []model.Project
	// Autoload makes the status container fetch on page load.
	Autoload bool
}

// writer remembers the first error so templates can write unchecked.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) print(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

func esc(s string) string { return templ.EscapeString(s) }

func safeURL(s string) string { return esc(string(templ.URL(s))) }

func projectsURL(c model.Category) string {
	return "/projects?category=" + c.String()
}

func page(v pageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &writer{w: w}
		out.print(`<!doctype html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>Projects Showcase</title>`,
			`<script src="`, htmxURL, `"></script>`,
			`<style>`, stylesheet, `</style></head><body>`,
			`<div class="app-container"><nav class="navbar">`,
			`<img src="`, logoURL, `" alt="website logo" class="website-logo"></nav>`,
			`<main class="main-content">`)
		out.print(`<form action="/projects" method="get">`,
			`<select class="categories-selector" name="category" hx-get="/projects" hx-target="#status" hx-trigger="change">`)
		for _, c := range model.Categories() {
			sel := ""
			if c == v.Category {
				sel = " selected"
			}
			out.print(`<option value="`, esc(c.String()), `"`, sel, `>`, esc(c.Label()), `</option>`)
		}
		out.print(`</select><noscript><button type="submit">Show</button></noscript></form>`)

		if v.Autoload {
			out.print(`<div id="status" hx-get="`, esc(projectsURL(v.Category)), `" hx-trigger="load">`)
		} else {
			out.print(`<div id="status">`)
		}
		if out.err != nil {
			return out.err
		}
		if err := statusFragment(v).Render(ctx, w); err != nil {
			return err
		}
		out.print(`</div><template id="loader">`, loader, `</template>`,
			`<script>`, loaderScript, `</script>`,
			`</main></div></body></html>`)
		return out.err
	})
}

// statusFragment renders exactly one of the four request states.
func statusFragment(v pageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := &writer{w: w}
		switch v.Status {
		case model.StatusInProgress:
			out.print(loader)
		case model.StatusSuccess:
			out.print(`<ul class="projects-list">`)
			for _, p := range v.Projects {
				out.print(`<li class="project-item" id="project-`, esc(p.ID), `">`,
					`<img src="`, safeURL(p.ImageURL), `" alt="`, esc(p.Name), `" class="project-image">`,
					`<p class="project-name">`, esc(p.Name), `</p></li>`)
			}
			out.print(`</ul>`)
		case model.StatusFailure:
			out.print(`<div class="failure-view-container">`,
				`<img src="`, failureURL, `" alt="failure view" class="failure-image">`,
				`<h1>Oops! Something Went Wrong</h1>`,
				`<p>We cannot seem to find the page you are looking for</p>`,
				`<form action="/projects" method="get" hx-get="/projects" hx-target="#status">`,
				`<input type="hidden" name="category" value="`, esc(v.Category.String()), `">`,
				`<button type="submit" class="retry-button">Retry</button></form></div>`)
		}
		return out.err
	})
}

const loader = `<div class="loader-container" data-testid="loader"><div class="loader"></div></div>`

// The status container shows the loader while its request is in flight.
const loaderScript = `document.body.addEventListener("htmx:beforeRequest", function (e) {
  var t = e.detail.target;
  if (t && t.id === "status") { t.innerHTML = document.getElementById("loader").innerHTML; }
});`

var stylesheet = strings.Join([]string{
	`body{margin:0;font-family:Roboto,sans-serif}`,
	`.navbar{padding:16px 10%;background:#f1f5f9}`,
	`.website-logo{width:120px}`,
	`.main-content{padding:24px 10%}`,
	`.categories-selector{padding:8px;min-width:240px}`,
	`.projects-list{display:flex;flex-wrap:wrap;gap:16px;padding:0;list-style:none}`,
	`.project-item{width:260px;box-shadow:0 2px 8px #bfbfbf;border-radius:8px}`,
	`.project-image{width:100%;border-radius:8px 8px 0 0}`,
	`.project-name{padding:0 12px;color:#475569}`,
	`.failure-view-container{text-align:center}`,
	`.failure-image{width:320px}`,
	`.retry-button{background:#328af2;color:#fff;border:0;border-radius:4px;padding:8px 16px}`,
	`.loader-container{display:flex;justify-content:center;padding:48px}`,
	`.loader{width:50px;height:50px;border:5px solid #0b69ff;border-top-color:transparent;border-radius:50%;animation:spin 1s linear infinite}`,
	`@keyframes spin{to{transform:rotate(360deg)}}`,
}, "")
