package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"trivia_backend/internal/config"
	"trivia_backend/internal/model"
	"trivia_backend/pkg/database"

	"gorm.io/gorm"
)

type testServer struct {
	t   *testing.T
	app *App
	db  *gorm.DB
}

func newTestServer(t *testing.T, seedCategories bool) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server:     config.ServerConfig{Mode: "test"},
		Database:   config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"},
		Pagination: config.PaginationConfig{PageSize: config.DefaultPageSize},
		CORS:       config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	db, err := database.Open(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if seedCategories {
		if err := database.Seed(db); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return &testServer{t: t, app: newApp(cfg, db), db: db}
}

func (s *testServer) seedQuestions(category uint, n int) []model.Question {
	s.t.Helper()
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			Question:   fmt.Sprintf("Seeded question %d for category %d?", i, category),
			Answer:     fmt.Sprintf("answer %d", i),
			Category:   category,
			Difficulty: i%5 + 1,
		})
	}
	if err := s.db.Create(&questions).Error; err != nil {
		s.t.Fatalf("seed questions: %v", err)
	}
	return questions
}

func (s *testServer) do(method, path string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			s.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			s.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code, decoded
}

func expectError(t *testing.T, code int, body map[string]interface{}, want int) {
	t.Helper()
	if code != want {
		t.Fatalf("status = %d, want %d (body %v)", code, want, body)
	}
	if body["success"] != false || body["error"] != float64(want) || body["message"] == "" {
		t.Fatalf("unexpected error body %v", body)
	}
}

func TestGetCategories(t *testing.T) {
	s := newTestServer(t, true)

	code, body := s.do(http.MethodGet, "/api/v1/categories", nil)
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("status %d body %v", code, body)
	}
	categories := body["categories"].(map[string]interface{})
	if len(categories) != len(database.DefaultCategories) {
		t.Fatalf("got %d categories, want %d", len(categories), len(database.DefaultCategories))
	}
	if categories["1"] != "Science" {
		t.Fatalf("category 1 = %v, want Science", categories["1"])
	}
}

func TestGetCategoriesEmpty(t *testing.T) {
	s := newTestServer(t, false)

	code, body := s.do(http.MethodGet, "/api/v1/categories", nil)
	expectError(t, code, body, http.StatusNotFound)
}

func TestGetQuestionsPagination(t *testing.T) {
	s := newTestServer(t, true)
	s.seedQuestions(1, 19)

	tests := []struct {
		query string
		want  int
	}{
		{"", 10},
		{"?page=1", 10},
		{"?page=2", 9},
		{"?page=bogus", 10},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			code, body := s.do(http.MethodGet, "/api/v1/questions"+tt.query, nil)
			if code != http.StatusOK {
				t.Fatalf("status = %d, body %v", code, body)
			}
			questions := body["questions"].([]interface{})
			if len(questions) != tt.want {
				t.Fatalf("got %d questions, want %d", len(questions), tt.want)
			}
			if body["total_questions"] != float64(19) {
				t.Fatalf("total_questions = %v, want 19", body["total_questions"])
			}
			if len(body["categories"].(map[string]interface{})) != len(database.DefaultCategories) {
				t.Fatalf("categories = %v", body["categories"])
			}

			first := questions[0].(map[string]interface{})
			for _, key := range []string{"id", "question", "answer", "category", "difficulty"} {
				if _, ok := first[key]; !ok {
					t.Fatalf("question is missing %q: %v", key, first)
				}
			}
		})
	}

	code, body := s.do(http.MethodGet, "/api/v1/questions?page=3", nil)
	expectError(t, code, body, http.StatusNotFound)
}

func TestGetQuestionsEmptyTable(t *testing.T) {
	s := newTestServer(t, true)

	code, body := s.do(http.MethodGet, "/api/v1/questions", nil)
	expectError(t, code, body, http.StatusNotFound)
}

func TestGetCategoryQuestions(t *testing.T) {
	s := newTestServer(t, true)
	s.seedQuestions(1, 3)
	s.seedQuestions(5, 2)

	code, body := s.do(http.MethodGet, "/api/v1/categories/5/questions", nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d, body %v", code, body)
	}
	if body["current_category"] != float64(5) || body["total_questions"] != float64(2) {
		t.Fatalf("unexpected body %v", body)
	}
	for _, q := range body["questions"].([]interface{}) {
		if q.(map[string]interface{})["category"] != float64(5) {
			t.Fatalf("question from another category: %v", q)
		}
	}

	code, body = s.do(http.MethodGet, "/api/v1/categories/5/questions?page=2", nil)
	expectError(t, code, body, http.StatusNotFound)

	code, body = s.do(http.MethodGet, "/api/v1/categories/99/questions", nil)
	expectError(t, code, body, http.StatusNotFound)

	code, body = s.do(http.MethodGet, "/api/v1/categories/abc/questions", nil)
	expectError(t, code, body, http.StatusNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	s := newTestServer(t, true)
	seeded := s.seedQuestions(2, 3)
	id := seeded[1].ID

	code, body := s.do(http.MethodDelete, fmt.Sprintf("/api/v1/questions/%d", id), nil)
	if code != http.StatusOK || body["success"] != true || body["deleted"] != float64(id) {
		t.Fatalf("status %d body %v", code, body)
	}

	_, body = s.do(http.MethodGet, "/api/v1/questions", nil)
	for _, q := range body["questions"].([]interface{}) {
		if q.(map[string]interface{})["id"] == float64(id) {
			t.Fatalf("deleted question %d still listed", id)
		}
	}
	if body["total_questions"] != float64(2) {
		t.Fatalf("total_questions = %v, want 2", body["total_questions"])
	}

	code, body = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/questions/%d", id), nil)
	expectError(t, code, body, http.StatusNotFound)

	code, body = s.do(http.MethodDelete, "/api/v1/questions/1000", nil)
	expectError(t, code, body, http.StatusNotFound)
}

func TestStoreFailure(t *testing.T) {
	s := newTestServer(t, true)
	s.seedQuestions(1, 2)

	sqlDB, err := s.db.DB()
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	sqlDB.Close()

	code, body := s.do(http.MethodDelete, "/api/v1/questions/1", nil)
	expectError(t, code, body, http.StatusUnprocessableEntity)

	code, body = s.do(http.MethodGet, "/api/v1/questions/1", nil)
	expectError(t, code, body, http.StatusInternalServerError)
}

func TestCreateQuestion(t *testing.T) {
	s := newTestServer(t, true)
	s.seedQuestions(1, 4)

	payload := map[string]interface{}{
		"question":   "What is the heaviest organ in the human body?",
		"answer":     "The Liver",
		"category":   1,
		"difficulty": 4,
	}
	code, body := s.do(http.MethodPost, "/api/v1/questions", payload)
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("status %d body %v", code, body)
	}
	if body["total_questions"] != float64(5) {
		t.Fatalf("total_questions = %v, want 5", body["total_questions"])
	}

	id := body["created"].(float64)
	code, body = s.do(http.MethodGet, fmt.Sprintf("/api/v1/questions/%d", int(id)), nil)
	if code != http.StatusOK {
		t.Fatalf("fetch created: status %d body %v", code, body)
	}
	got := body["question"].(map[string]interface{})
	want := map[string]interface{}{
		"id":         id,
		"question":   payload["question"],
		"answer":     payload["answer"],
		"category":   float64(1),
		"difficulty": float64(4),
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestCreateQuestionInvalid(t *testing.T) {
	s := newTestServer(t, true)

	tests := []struct {
		name  string
		body  interface{}
		code  int
		field string
	}{
		{"malformed json", `{"question": `, http.StatusBadRequest, ""},
		{"empty object", map[string]interface{}{}, http.StatusUnprocessableEntity, "question"},
		{"wrong type", map[string]interface{}{"question": "q", "answer": "a", "category": 1, "difficulty": "hard"}, http.StatusUnprocessableEntity, "difficulty"},
		{"negative category", map[string]interface{}{"question": "q", "answer": "a", "category": -1, "difficulty": 1}, http.StatusUnprocessableEntity, "category"},
		{"out of range", map[string]interface{}{"question": "q", "answer": "a", "category": 1, "difficulty": 9}, http.StatusUnprocessableEntity, "difficulty"},
		{"unknown category", map[string]interface{}{"question": "q", "answer": "a", "category": 77, "difficulty": 1}, http.StatusUnprocessableEntity, "category"},
		{"blank search term falls through to create", map[string]interface{}{"searchTerm": "  "}, http.StatusUnprocessableEntity, "answer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := s.do(http.MethodPost, "/api/v1/questions", tt.body)
			expectError(t, code, body, tt.code)
			if tt.field == "" {
				return
			}
			fields, _ := body["errors"].(map[string]interface{})
			if fields[tt.field] == nil {
				t.Fatalf("no detail for %q in %v", tt.field, body)
			}
			for name := range fields {
				if strings.Contains(name, ".") {
					t.Fatalf("field %q is not a json name", name)
				}
			}
		})
	}

	var count int64
	s.db.Model(&model.Question{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid requests created %d rows", count)
	}
}

func TestSearchQuestions(t *testing.T) {
	s := newTestServer(t, true)
	s.seedQuestions(3, 2)
	egypt := model.Question{Question: "Which ancient Egyptians built the Sphinx?", Answer: "The Egyptians", Category: 4, Difficulty: 3}
	if err := s.db.Create(&egypt).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	code, body := s.do(http.MethodPost, "/api/v1/questions", map[string]interface{}{"searchTerm": "egyptians"})
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("status %d body %v", code, body)
	}
	questions := body["questions"].([]interface{})
	if len(questions) != 1 || questions[0].(map[string]interface{})["id"] != float64(egypt.ID) {
		t.Fatalf("questions = %v", questions)
	}
	if body["total_questions"] != float64(1) || body["current_category"] != float64(4) {
		t.Fatalf("unexpected body %v", body)
	}

	code, body = s.do(http.MethodPost, "/api/v1/questions", map[string]interface{}{"searchTerm": "zzz-no-match"})
	expectError(t, code, body, http.StatusNotFound)
}

func TestUpdateQuestion(t *testing.T) {
	s := newTestServer(t, true)
	seeded := s.seedQuestions(1, 1)
	path := fmt.Sprintf("/api/v1/questions/%d", seeded[0].ID)

	code, body := s.do(http.MethodPatch, path, map[string]interface{}{"difficulty": 5, "answer": "updated"})
	if code != http.StatusOK || body["updated"] != float64(seeded[0].ID) {
		t.Fatalf("status %d body %v", code, body)
	}
	q := body["question"].(map[string]interface{})
	if q["difficulty"] != float64(5) || q["answer"] != "updated" || q["question"] != seeded[0].Question {
		t.Fatalf("question = %v", q)
	}

	code, body = s.do(http.MethodPatch, path, map[string]interface{}{"difficulty": 0})
	expectError(t, code, body, http.StatusUnprocessableEntity)

	code, body = s.do(http.MethodPatch, "/api/v1/questions/999", map[string]interface{}{"answer": "x"})
	expectError(t, code, body, http.StatusNotFound)
}

func TestPlayQuiz(t *testing.T) {
	s := newTestServer(t, true)
	pool := s.seedQuestions(2, 4)
	other := s.seedQuestions(3, 1)

	seen := make(map[float64]bool)
	for i := 0; i < 300 && len(seen) < len(pool)+len(other); i++ {
		code, body := s.do(http.MethodPost, "/api/v1/quizzes", map[string]interface{}{"previous_questions": []uint{}})
		if code != http.StatusOK || body["success"] != true {
			t.Fatalf("status %d body %v", code, body)
		}
		seen[body["question"].(map[string]interface{})["id"].(float64)] = true
	}
	if len(seen) != len(pool)+len(other) {
		t.Fatalf("saw %d distinct questions, want %d", len(seen), len(pool)+len(other))
	}

	previous := []uint{pool[0].ID, pool[1].ID, pool[2].ID}
	for i := 0; i < 20; i++ {
		code, body := s.do(http.MethodPost, "/api/v1/quizzes", map[string]interface{}{
			"previous_questions": previous,
			"quiz_category":      map[string]interface{}{"id": "2", "type": "Art"},
		})
		if code != http.StatusOK {
			t.Fatalf("status %d body %v", code, body)
		}
		if id := body["question"].(map[string]interface{})["id"]; id != float64(pool[3].ID) {
			t.Fatalf("got question %v, want %d", id, pool[3].ID)
		}
	}

	code, body := s.do(http.MethodPost, "/api/v1/quizzes", map[string]interface{}{
		"previous_questions": append(previous, pool[3].ID),
		"quiz_category":      map[string]interface{}{"id": 2},
	})
	if code != http.StatusOK || body["success"] != false || body["question"] != false {
		t.Fatalf("exhausted pool: status %d body %v", code, body)
	}

	code, body = s.do(http.MethodPost, "/api/v1/quizzes", `{"previous_questions": [1,`)
	expectError(t, code, body, http.StatusBadRequest)
}

func TestRoutingErrors(t *testing.T) {
	s := newTestServer(t, true)

	code, body := s.do(http.MethodGet, "/api/v1/nowhere", nil)
	expectError(t, code, body, http.StatusNotFound)

	code, body = s.do(http.MethodPut, "/api/v1/categories", nil)
	expectError(t, code, body, http.StatusMethodNotAllowed)

	code, body = s.do(http.MethodGet, "/api/questions", nil)
	expectError(t, code, body, http.StatusNotFound)
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	s := newTestServer(t, false)

	for _, path := range []string{"/api/v1/categories", "/api/v1/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		s.app.Router.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("%s: missing allow-origin", path)
		}
		if w.Header().Get("Access-Control-Allow-Methods") != "GET, POST, DELETE, PATCH, OPTIONS, PUT" {
			t.Fatalf("%s: allow-methods = %q", path, w.Header().Get("Access-Control-Allow-Methods"))
		}
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/questions", nil)
	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, false)

	code, body := s.do(http.MethodGet, "/api/v1/health", nil)
	if code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("status %d body %v", code, body)
	}
}

func TestConfigCallbackChangesPageSize(t *testing.T) {
	s := newTestServer(t, true)
	s.seedQuestions(1, 7)

	s.app.applyConfig(&config.Config{Pagination: config.PaginationConfig{PageSize: 3}})

	code, body := s.do(http.MethodGet, "/api/v1/questions?page=3", nil)
	if code != http.StatusOK {
		t.Fatalf("status %d body %v", code, body)
	}
	if n := len(body["questions"].([]interface{})); n != 1 {
		t.Fatalf("page 3 of 7 with size 3 has %d items, want 1", n)
	}
}
