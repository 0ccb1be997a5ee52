// Package components holds the shared page chrome and the machinery
// for rendering server-side HTML pages as templ components.
package components

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/Vipin-hari/CRM/internal/middleware"
)

// PageContext carries the per-request state every page needs: the
// logged-in user, a pending flash message, the CSRF token for forms
// and the app version for the footer.
type PageContext struct {
	LoggedIn bool
	Username string
	IsAdmin  bool
	HasFlash bool
	Flash    middleware.Flash
	CSRF     string
	Version  string
}

// FromContext builds a PageContext from the request context populated
// by the middleware chain.
func FromContext(ctx context.Context) PageContext {
	pc := PageContext{
		CSRF:    middleware.GetCSRF(ctx),
		Version: middleware.GetVersion(ctx),
	}
	if sess, ok := middleware.CurrentUser(ctx); ok {
		pc.LoggedIn = true
		pc.Username = sess.Username
		pc.IsAdmin = sess.IsAdmin
	}
	if f, ok := middleware.GetFlash(ctx); ok {
		pc.HasFlash = true
		pc.Flash = f
	}
	return pc
}

// pageData is what every page template executes against.
type pageData struct {
	Ctx  PageContext
	Data any
}

const layoutHTML = `{{define "header"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>CRM</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
</head>
<body>
<nav class="navbar navbar-expand-lg navbar-dark bg-dark mb-4">
<div class="container">
<a class="navbar-brand" href="/">CRM</a>
<ul class="navbar-nav me-auto">
{{if .LoggedIn}}
<li class="nav-item"><a class="nav-link" href="/customers">Customers</a></li>
<li class="nav-item"><a class="nav-link" href="/sales">Sales</a></li>
<li class="nav-item"><a class="nav-link" href="/sales-report">Sales Report</a></li>
<li class="nav-item"><a class="nav-link" href="/support-tickets">Support Tickets</a></li>
{{if .IsAdmin}}
<li class="nav-item"><a class="nav-link" href="/sales/create">New Sale</a></li>
<li class="nav-item"><a class="nav-link" href="/admin/customers">Admin</a></li>
{{end}}
{{end}}
</ul>
<ul class="navbar-nav">
{{if .LoggedIn}}
<li class="nav-item"><span class="navbar-text me-3">{{.Username}}</span></li>
<li class="nav-item"><a class="nav-link" href="/logout">Logout</a></li>
{{else}}
<li class="nav-item"><a class="nav-link" href="/login">Login</a></li>
<li class="nav-item"><a class="nav-link" href="/register">Register</a></li>
{{end}}
</ul>
</div>
</nav>
<div class="container">
{{if .HasFlash}}<div class="alert alert-{{.Flash.Kind}}" role="alert">{{.Flash.Message}}</div>{{end}}
{{end}}
{{define "footer"}}</div>
<footer class="container mt-5 mb-3 text-muted"><small>CRM {{.Version}}</small></footer>
</body>
</html>{{end}}`

// Must parses a page body together with the shared layout. Panics on
// parse errors, which are programmer mistakes caught at startup.
func Must(name, body string) *template.Template {
	t := template.Must(template.New(name).Parse(layoutHTML))
	return template.Must(t.Parse(body))
}

// Render wraps a parsed page template in a templ.Component, pulling
// the PageContext out of the request context at render time.
func Render(t *template.Template, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.Execute(w, pageData{Ctx: FromContext(ctx), Data: data})
	})
}
