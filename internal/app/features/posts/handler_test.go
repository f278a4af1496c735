package posts_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/forumhub/internal/app/features/posts"
	"github.com/dalemusser/forumhub/internal/domain/models"
	"github.com/dalemusser/forumhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (chi.Router, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := posts.NewHandler(db, zap.NewNop())
	r := chi.NewRouter()
	r.Mount("/posts", posts.Routes(h))
	return r, testutil.NewFixtures(t, db)
}

func TestHandleCreate(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewJSONRequest(t, "POST", "/posts", map[string]any{
		"title":       "Hello",
		"content":     "<p>body</p><script>alert(1)</script>",
		"tag":         "general",
		"created_by":  "alice@example.com",
		"author_name": "Alice",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusCreated)

	var created models.Post
	testutil.DecodeJSON(t, rec, &created)
	if created.ID == primitive.NilObjectID {
		t.Error("expected generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected server-side createdAt")
	}
	if created.UpVote != 0 || created.DownVote != 0 {
		t.Errorf("expected zero counts, got up=%d down=%d", created.UpVote, created.DownVote)
	}
	if want := "<p>body</p>"; created.Content != want {
		t.Errorf("Content: got %q, want sanitized %q", created.Content, want)
	}
}

func TestHandleCreate_MissingTitle(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewJSONRequest(t, "POST", "/posts", map[string]any{
		"content": "no title",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestHandleList(t *testing.T) {
	router, fixtures := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreatePost(ctx, "alice@example.com", "alice post")
	fixtures.CreatePost(ctx, "bob@example.com", "bob post")

	req := httptest.NewRequest("GET", "/posts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var listed []models.Post
	testutil.DecodeJSON(t, rec, &listed)
	if len(listed) != 2 {
		t.Errorf("expected 2 posts, got %d", len(listed))
	}
}

func TestHandleList_FilterByEmail(t *testing.T) {
	router, fixtures := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreatePost(ctx, "alice@example.com", "alice post")
	fixtures.CreatePost(ctx, "bob@example.com", "bob post")

	req := httptest.NewRequest("GET", "/posts?email=alice@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var listed []models.Post
	testutil.DecodeJSON(t, rec, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 post, got %d", len(listed))
	}
	if listed[0].CreatedBy != "alice@example.com" {
		t.Errorf("CreatedBy: got %q", listed[0].CreatedBy)
	}
}

func TestHandleList_EmptyIsArray(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest("GET", "/posts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestHandleGet_NotFound(t *testing.T) {
	router, _ := newRouter(t)

	for _, target := range []string{
		"/posts/" + primitive.NewObjectID().Hex(),
		"/posts/not-a-hex-id",
	} {
		req := httptest.NewRequest("GET", target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s: got %d, want 404", target, rec.Code)
		}
	}
}

func TestHandleDelete(t *testing.T) {
	router, fixtures := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreatePost(ctx, "alice@example.com", "doomed")

	req := httptest.NewRequest("DELETE", "/posts/"+post.ID.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusOK)

	req = httptest.NewRequest("GET", "/posts/"+post.ID.Hex(), nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestHandleAddComment(t *testing.T) {
	router, fixtures := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreatePost(ctx, "alice@example.com", "commented")

	req := testutil.NewJSONRequest(t, "POST", "/posts/"+post.ID.Hex()+"/comments", map[string]any{
		"text":     "good point<script>x()</script>",
		"userId":   "bob@example.com",
		"userName": "Bob",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Created comments answer 200; only post creation returns 201.
	testutil.AssertStatus(t, rec, http.StatusOK)

	var comment models.Comment
	testutil.DecodeJSON(t, rec, &comment)
	if comment.ID == primitive.NilObjectID {
		t.Error("expected generated comment id")
	}
	if comment.Text != "good point" {
		t.Errorf("Text: got %q, want sanitized %q", comment.Text, "good point")
	}
}

func TestHandleAddComment_BlankText(t *testing.T) {
	router, fixtures := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreatePost(ctx, "alice@example.com", "strict")

	for _, text := range []string{"", "   ", "<script>only()</script>"} {
		req := testutil.NewJSONRequest(t, "POST", "/posts/"+post.ID.Hex()+"/comments", map[string]any{
			"text":   text,
			"userId": "bob@example.com",
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("text %q: got %d, want 400", text, rec.Code)
		}
	}
}

func TestHandleDeleteComment_OwnershipChain(t *testing.T) {
	router, fixtures := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreatePost(ctx, "alice@example.com", "guarded")
	comment := fixtures.AddComment(ctx, post.ID, "carol@example.com", "mine")
	base := "/posts/" + post.ID.Hex() + "/comments/" + comment.ID.Hex()

	// Missing userId.
	req := testutil.NewJSONRequest(t, "DELETE", base, map[string]any{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusBadRequest)

	// Wrong owner.
	req = testutil.NewJSONRequest(t, "DELETE", base, map[string]any{"userId": "mallory@example.com"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusForbidden)

	// Unknown comment.
	req = testutil.NewJSONRequest(t, "DELETE",
		"/posts/"+post.ID.Hex()+"/comments/"+primitive.NewObjectID().Hex(),
		map[string]any{"userId": "carol@example.com"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusNotFound)

	// Owner succeeds.
	req = testutil.NewJSONRequest(t, "DELETE", base, map[string]any{"userId": "carol@example.com"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusOK)
}

func TestHandleVote(t *testing.T) {
	router, fixtures := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreatePost(ctx, "alice@example.com", "votable")
	target := "/posts/" + post.ID.Hex() + "/vote"

	req := testutil.NewJSONRequest(t, "POST", target, map[string]any{
		"userId": "bob@example.com",
		"type":   "up",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusOK)

	var counts struct {
		UpVote   int `json:"upVote"`
		DownVote int `json:"downVote"`
	}
	testutil.DecodeJSON(t, rec, &counts)
	if counts.UpVote != 1 || counts.DownVote != 0 {
		t.Errorf("counts: got up=%d down=%d, want 1/0", counts.UpVote, counts.DownVote)
	}

	// Second vote from the same user conflicts.
	req = testutil.NewJSONRequest(t, "POST", target, map[string]any{
		"userId": "bob@example.com",
		"type":   "down",
	})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusConflict)
}

func TestHandleVote_BadRequests(t *testing.T) {
	router, fixtures := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fixtures.CreatePost(ctx, "alice@example.com", "votable")
	target := "/posts/" + post.ID.Hex() + "/vote"

	cases := []map[string]any{
		{"type": "up"},                                   // missing userId
		{"userId": "bob@example.com", "type": "maybe"},   // bad type
		{"userId": "bob@example.com"},                    // missing type
	}
	for _, body := range cases {
		req := testutil.NewJSONRequest(t, "POST", target, body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %v: got %d, want 400", body, rec.Code)
		}
	}
}

func TestHandleVote_PostNotFound(t *testing.T) {
	router, _ := newRouter(t)
	target := "/posts/" + primitive.NewObjectID().Hex() + "/vote"

	req := testutil.NewJSONRequest(t, "POST", target, map[string]any{
		"userId": "bob@example.com",
		"type":   "up",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusNotFound)

	// A missing post outranks a bad vote type.
	req = testutil.NewJSONRequest(t, "POST", target, map[string]any{
		"userId": "bob@example.com",
		"type":   "maybe",
	})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	testutil.AssertStatus(t, rec, http.StatusNotFound)
}
