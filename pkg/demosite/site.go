// Package demosite serves a small storefront and a mock users API so the
// page-object and API examples can run without reaching the public demo
// endpoints.
package demosite

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Product is one searchable catalog entry.
type Product struct {
	Title       string
	Description string
	Link        string
}

// catalog mirrors the phone storefront of the public demo site.
var catalog = []Product{
	{Title: "iPhone 12", Description: "6.1-inch display, A14 Bionic", Link: "/products/iphone-12"},
	{Title: "iPhone 12 Mini", Description: "5.4-inch display, A14 Bionic", Link: "/products/iphone-12-mini"},
	{Title: "iPhone 12 Pro Max", Description: "6.7-inch display, A14 Bionic", Link: "/products/iphone-12-pro-max"},
	{Title: "Galaxy S20", Description: "6.2-inch display, 120Hz", Link: "/products/galaxy-s20"},
	{Title: "Galaxy S20 Plus", Description: "6.7-inch display, 120Hz", Link: "/products/galaxy-s20-plus"},
	{Title: "Galaxy S9", Description: "5.8-inch display", Link: "/products/galaxy-s9"},
	{Title: "Pixel 4", Description: "5.7-inch display, Night Sight", Link: "/products/pixel-4"},
	{Title: "One Plus 8", Description: "6.55-inch display, 90Hz", Link: "/products/one-plus-8"},
}

var landingTmpl = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head><title>StackDemo</title></head>
<body>
<header><a class="home-link" href="/"><span class="logo">StackDemo</span></a></header>
<main>
  <form action="/search" method="get">
    <input type="text" name="q" placeholder="Search">
    <button type="submit">Search</button>
  </form>
</main>
<footer>Demo storefront</footer>
</body>
</html>`))

var resultsTmpl = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html>
<head><title>StackDemo - Search</title></head>
<body>
<header><a class="home-link" href="/"><span class="logo">StackDemo</span></a></header>
<main>
  <div class="search-results">
    {{if .Products}}
      {{range .Products}}
      <div class="result-item">
        <span class="result-title">{{.Title}}</span>
        <span class="result-description">{{.Description}}</span>
        <a class="result-link" href="{{.Link}}">View</a>
      </div>
      {{end}}
    {{else}}
      <div class="no-results">No products found for "{{.Query}}"</div>
    {{end}}
    <a class="back-to-search" href="/">Back to search</a>
  </div>
</main>
<footer>Demo storefront</footer>
</body>
</html>`))

// Handler returns the demo site router: the storefront pages plus the mock
// users API.
func Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", serveLanding).Methods(http.MethodGet)
	r.HandleFunc("/search", serveSearch).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/users", listUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", createUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", getUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", updateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", deleteUser).Methods(http.MethodDelete)

	r.Use(requestLogging)
	return r
}

func serveLanding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	landingTmpl.Execute(w, nil)
}

func serveSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	matches := SearchCatalog(query)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	resultsTmpl.Execute(w, struct {
		Query    string
		Products []Product
	}{Query: query, Products: matches})
}

// SearchCatalog returns the products whose title contains the query,
// case-insensitively. An empty query matches the whole catalog.
func SearchCatalog(query string) []Product {
	if query == "" {
		return catalog
	}
	q := strings.ToLower(query)
	var matches []Product
	for _, p := range catalog {
		if strings.Contains(strings.ToLower(p.Title), q) {
			matches = append(matches, p)
		}
	}
	return matches
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("request served")
	})
}
