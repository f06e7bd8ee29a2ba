package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-portal/internal/delivery/http/middleware"
	domainjob "job-portal/internal/domain/job"
	"job-portal/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type mockJobUsecase struct {
	created  []domainjob.Posting
	postings map[uuid.UUID]domainjob.Posting
	err      error
}

func (m *mockJobUsecase) Create(_ context.Context, p domainjob.Posting) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.created = append(m.created, p)
	return p.ID, nil
}

func (m *mockJobUsecase) List(_ context.Context, hrEmail string) ([]domainjob.Posting, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domainjob.Posting, 0, len(m.postings))
	for _, p := range m.postings {
		if hrEmail != "" && p.HREmail != hrEmail {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockJobUsecase) Get(_ context.Context, id uuid.UUID) (domainjob.Posting, error) {
	if m.err != nil {
		return domainjob.Posting{}, m.err
	}
	p, ok := m.postings[id]
	if !ok {
		return domainjob.Posting{}, repository.ErrJobNotFound
	}
	return p, nil
}

// envelope mirrors response.SemanticResponse with the data left raw so
// tests can tell null from absent.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newJobsApp(t *testing.T, uc *mockJobUsecase) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewJobsHandler(uc).RegisterRoutes(app)
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, body)
	}
	return env
}

func TestGetJob_MissReturnsNullData(t *testing.T) {
	app := newJobsApp(t, &mockJobUsecase{postings: map[uuid.UUID]domainjob.Posting{}})

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on a lookup miss, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	if string(env.Data) != "null" {
		t.Fatalf("expected null data on a miss, got %s", env.Data)
	}
}

func TestGetJob_MalformedID(t *testing.T) {
	app := newJobsApp(t, &mockJobUsecase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs/not-a-uuid", nil))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed id, got %d", resp.StatusCode)
	}
}

func TestGetJob_Found(t *testing.T) {
	id := uuid.New()
	app := newJobsApp(t, &mockJobUsecase{postings: map[uuid.UUID]domainjob.Posting{
		id: {ID: id, HREmail: "hr@acme.com", Title: "Backend Engineer"},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs/"+id.String(), nil))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp)
	var got domainjob.Posting
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode posting: %v", err)
	}
	if got.ID != id || got.Title != "Backend Engineer" {
		t.Fatalf("unexpected posting: %+v", got)
	}
}

func TestCreateJob_KeepsWholeDocument(t *testing.T) {
	uc := &mockJobUsecase{}
	app := newJobsApp(t, uc)

	body := map[string]any{
		"hr_email":    "hr@acme.com",
		"title":       "Backend Engineer",
		"company":     "Acme",
		"remote":      true,
		"salaryRange": map[string]any{"min": 40000, "max": 60000},
		"details":     map[string]any{"description": "run the backend"},
	}
	buf, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(uc.created) != 1 {
		t.Fatalf("expected 1 created posting, got %d", len(uc.created))
	}

	p := uc.created[0]
	if p.HREmail != "hr@acme.com" || p.Title != "Backend Engineer" || p.Company != "Acme" {
		t.Fatalf("recognized fields not mapped: %+v", p)
	}
	if p.Details["remote"] != true {
		t.Fatalf("unrecognized field dropped: %v", p.Details)
	}
	if _, ok := p.Details["salaryRange"]; !ok {
		t.Fatalf("nested unrecognized field dropped: %v", p.Details)
	}
	if p.Details["description"] != "run the backend" {
		t.Fatalf("nested details not folded in: %v", p.Details)
	}

	env := decodeEnvelope(t, resp)
	var ack struct {
		Acknowledged bool      `json:"acknowledged"`
		InsertedID   uuid.UUID `json:"insertedId"`
	}
	if err := json.Unmarshal(env.Data, &ack); err != nil {
		t.Fatalf("decode ack: %v", err)
	}
	if !ack.Acknowledged || ack.InsertedID != p.ID {
		t.Fatalf("unexpected ack: %+v", ack)
	}
}
