package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"dineWise/domain"
)

type fakeFeedbackLog struct {
	records []domain.FeedbackRequest
}

func (f *fakeFeedbackLog) Add(req domain.FeedbackRequest) int {
	f.records = append(f.records, req)
	return len(f.records)
}

type fakeExperiment struct {
	variants  []string
	positives []bool
}

func (f *fakeExperiment) RecordFeedback(variant string, isPositive bool) {
	f.variants = append(f.variants, variant)
	f.positives = append(f.positives, isPositive)
}

func postFeedback(handler *FeedbackHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/recommendations/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = handler.Submit(e.NewContext(req, rec))
	return rec
}

func TestSubmitFeedback(t *testing.T) {
	log := &fakeFeedbackLog{}
	experiment := &fakeExperiment{}
	handler := NewFeedbackHandler(log, experiment)

	rec := postFeedback(handler, `{"restaurant_id":"42","query_location":"BTM","is_positive":true,"variant":"A"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	if len(log.records) != 1 {
		t.Fatalf("recorded %d feedback entries, want 1", len(log.records))
	}
	if len(experiment.variants) != 1 || experiment.variants[0] != "A" || !experiment.positives[0] {
		t.Errorf("experiment counters not bumped: %+v", experiment)
	}
	if !strings.Contains(rec.Body.String(), `"total_feedback":1`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSubmitFeedbackWithoutVariant(t *testing.T) {
	log := &fakeFeedbackLog{}
	experiment := &fakeExperiment{}
	handler := NewFeedbackHandler(log, experiment)

	rec := postFeedback(handler, `{"restaurant_id":"42","query_location":"BTM","is_positive":false}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if len(experiment.variants) != 0 {
		t.Error("experiment counters must stay untouched without a variant tag")
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	handler := NewFeedbackHandler(&fakeFeedbackLog{}, &fakeExperiment{})

	cases := []string{
		`{"query_location":"BTM","is_positive":true}`,                 // missing restaurant id
		`{"restaurant_id":"42","is_positive":true}`,                   // missing location
		`{"restaurant_id":"42","query_location":"BTM","variant":"C"}`, // bad variant
	}

	for _, body := range cases {
		if rec := postFeedback(handler, body); rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}
