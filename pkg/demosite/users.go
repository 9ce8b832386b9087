package demosite

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// User mirrors the user object of the public reqres API.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// usersPage is the paged list envelope.
type usersPage struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []User  `json:"data"`
	Support    support `json:"support"`
}

type support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

var supportBlock = support{
	URL:  "https://www.bstackdemo.com/#support",
	Text: "Demo users API for automation examples",
}

// users is the fixed 12-user dataset, matching the public API's paging
// behavior (2 pages of 6 by default).
var users = []User{
	{1, "george.bluth@reqres.in", "George", "Bluth", "https://reqres.in/img/faces/1-image.jpg"},
	{2, "janet.weaver@reqres.in", "Janet", "Weaver", "https://reqres.in/img/faces/2-image.jpg"},
	{3, "emma.wong@reqres.in", "Emma", "Wong", "https://reqres.in/img/faces/3-image.jpg"},
	{4, "eve.holt@reqres.in", "Eve", "Holt", "https://reqres.in/img/faces/4-image.jpg"},
	{5, "charles.morris@reqres.in", "Charles", "Morris", "https://reqres.in/img/faces/5-image.jpg"},
	{6, "tracey.ramos@reqres.in", "Tracey", "Ramos", "https://reqres.in/img/faces/6-image.jpg"},
	{7, "michael.lawson@reqres.in", "Michael", "Lawson", "https://reqres.in/img/faces/7-image.jpg"},
	{8, "lindsay.ferguson@reqres.in", "Lindsay", "Ferguson", "https://reqres.in/img/faces/8-image.jpg"},
	{9, "tobias.funke@reqres.in", "Tobias", "Funke", "https://reqres.in/img/faces/9-image.jpg"},
	{10, "byron.fields@reqres.in", "Byron", "Fields", "https://reqres.in/img/faces/10-image.jpg"},
	{11, "george.edwards@reqres.in", "George", "Edwards", "https://reqres.in/img/faces/11-image.jpg"},
	{12, "rachel.howell@reqres.in", "Rachel", "Howell", "https://reqres.in/img/faces/12-image.jpg"},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func queryInt(r *http.Request, key, fallback string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		raw = fallback
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil && n > 0
}

func listUsers(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page", "1")
	if !ok {
		page = 1
	}
	perPage, ok := queryInt(r, "per_page", "6")
	if !ok {
		perPage = 6
	}

	total := len(users)
	totalPages := (total + perPage - 1) / perPage

	// Out-of-range pages return an empty data array, not an error.
	data := []User{}
	start := (page - 1) * perPage
	if start < total {
		end := start + perPage
		if end > total {
			end = total
		}
		data = users[start:end]
	}

	writeJSON(w, http.StatusOK, usersPage{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Data:       data,
		Support:    supportBlock,
	})
}

func getUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 || id > len(users) {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Data    User    `json:"data"`
		Support support `json:"support"`
	}{Data: users[id-1], Support: supportBlock})
}

type userWriteRequest struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

func createUser(w http.ResponseWriter, r *http.Request) {
	var req userWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Name      string `json:"name"`
		Job       string `json:"job"`
		ID        string `json:"id"`
		CreatedAt string `json:"createdAt"`
	}{
		Name:      req.Name,
		Job:       req.Job,
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func updateUser(w http.ResponseWriter, r *http.Request) {
	var req userWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Name      string `json:"name"`
		Job       string `json:"job"`
		UpdatedAt string `json:"updatedAt"`
	}{
		Name:      req.Name,
		Job:       req.Job,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func deleteUser(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
