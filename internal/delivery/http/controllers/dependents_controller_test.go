package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventmanager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantController_RegisterParticipant(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{name: "success", body: `{"event_id":1,"name":"Alice"}`, wantStatus: http.StatusCreated, wantBodySubstr: `"message":"Participant registered"`},
		{name: "missing event", body: `{"event_id":99,"name":"Alice"}`, fakeErr: domain.NewNotFoundError("event"), wantStatus: http.StatusNotFound, wantBodySubstr: "event not found"},
		{name: "event_id not a number", body: `{"event_id":"one","name":"Alice"}`, wantStatus: http.StatusBadRequest, wantBodySubstr: "event_id must be a number"},
		{name: "missing name", body: `{"event_id":1}`, wantStatus: http.StatusBadRequest, wantBodySubstr: "name is required"},
		{name: "store failure", body: `{"event_id":1,"name":"Alice"}`, fakeErr: errors.New("tx aborted"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeParticipantService{err: tt.fakeErr}
			c := NewParticipantController(testLogger, fake)
			rr := httptest.NewRecorder()
			c.RegisterParticipant(rr, newRequest(http.MethodPost, "/api/participants", tt.body, nil))
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), tt.wantBodySubstr)
		})
	}
}

func TestParticipantController_ListParticipants(t *testing.T) {
	fake := &fakeParticipantService{list: []*domain.ParticipantRecord{{ID: 1, EventID: 5, Name: "Alice", EventName: "Conf"}}}
	c := NewParticipantController(testLogger, fake)
	rr := httptest.NewRecorder()
	c.ListParticipants(rr, newRequest(http.MethodGet, "/api/participants?event_id=5", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp ParticipantListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Participants, 1)
	assert.Equal(t, "Conf", resp.Participants[0].EventName)
	assert.Equal(t, int64(5), fake.lastEvent)

	t.Run("unknown event", func(t *testing.T) {
		c := NewParticipantController(testLogger, &fakeParticipantService{err: domain.NewNotFoundError("event")})
		rr := httptest.NewRecorder()
		c.ListParticipants(rr, newRequest(http.MethodGet, "/api/participants?event_id=5", "", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		c := NewParticipantController(testLogger, &fakeParticipantService{})
		rr := httptest.NewRecorder()
		c.ListParticipants(rr, newRequest(http.MethodGet, "/api/participants?event_id=5", "", nil))
		assert.Contains(t, rr.Body.String(), `"participants":[]`)
	})
}

func TestParticipantController_UpdateAndDelete(t *testing.T) {
	fake := &fakeParticipantService{}
	c := NewParticipantController(testLogger, fake)

	rr := httptest.NewRecorder()
	c.UpdateParticipant(rr, newRequest(http.MethodPatch, "/api/participants/3", `{"name":"Bob"}`, map[string]string{"id": "3"}))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, fake.lastUpdate.Name)
	assert.Equal(t, "Bob", *fake.lastUpdate.Name)

	rr = httptest.NewRecorder()
	c.UpdateParticipant(rr, newRequest(http.MethodPatch, "/api/participants/3", `{}`, map[string]string{"id": "3"}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, fake.lastUpdate.Name)
	assert.Contains(t, rr.Body.String(), "unchanged")

	rr = httptest.NewRecorder()
	c.DeleteParticipant(rr, newRequest(http.MethodDelete, "/api/participants/3", "", map[string]string{"id": "3"}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Participant deleted","id":3}`, rr.Body.String())

	rr = httptest.NewRecorder()
	c.DeleteParticipant(rr, newRequest(http.MethodDelete, "/api/participants/x", "", map[string]string{"id": "x"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSpeakerController(t *testing.T) {
	fake := &fakeSpeakerService{}
	c := NewSpeakerController(testLogger, fake)

	rr := httptest.NewRecorder()
	c.RegisterSpeaker(rr, newRequest(http.MethodPost, "/api/speakers", `{"event_id":1,"name":"Grace","description":"<p>Compilers</p>"}`, nil))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "Compilers", fake.lastDesc)
	assert.Contains(t, rr.Body.String(), `"message":"Speaker registered"`)

	rr = httptest.NewRecorder()
	c.UpdateSpeaker(rr, newRequest(http.MethodPatch, "/api/speakers/20", `{"description":"Keynote"}`, map[string]string{"id": "20"}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, fake.lastUpdate.Name)
	require.NotNil(t, fake.lastUpdate.Description)
	assert.Equal(t, "Keynote", *fake.lastUpdate.Description)

	rr = httptest.NewRecorder()
	c.ListSpeakers(rr, newRequest(http.MethodGet, "/api/speakers?event_id=1", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"speakers":[]`)

	rr = httptest.NewRecorder()
	c.DeleteSpeaker(rr, newRequest(http.MethodDelete, "/api/speakers/20", "", map[string]string{"id": "20"}))
	assert.JSONEq(t, `{"message":"Speaker deleted","id":20}`, rr.Body.String())
}

func TestVendorController(t *testing.T) {
	fake := &fakeVendorService{}
	c := NewVendorController(testLogger, fake)

	rr := httptest.NewRecorder()
	c.RegisterVendor(rr, newRequest(http.MethodPost, "/api/vendors", `{"event_id":2,"name":"Acme","services":"Catering"}`, nil))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "Catering", fake.lastServices)
	assert.Equal(t, int64(2), fake.lastEvent)

	rr = httptest.NewRecorder()
	c.ListVendors(rr, newRequest(http.MethodGet, "/api/vendors?event_id=2", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"event_name":"Conf"`)

	fake.err = domain.NewNotFoundError("vendor")
	rr = httptest.NewRecorder()
	c.DeleteVendor(rr, newRequest(http.MethodDelete, "/api/vendors/30", "", map[string]string{"id": "30"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"vendor not found"}`, rr.Body.String())
}

func TestFeedbackController(t *testing.T) {
	fake := &fakeFeedbackService{}
	c := NewFeedbackController(testLogger, fake)

	rr := httptest.NewRecorder()
	c.AddFeedback(rr, newRequest(http.MethodPost, "/api/feedback", `{"event_id":3,"content":"Great talks"}`, nil))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"display_name":"Feedback 40"`)
	assert.Contains(t, rr.Body.String(), `"message":"Feedback added"`)

	rr = httptest.NewRecorder()
	c.AddFeedback(rr, newRequest(http.MethodPost, "/api/feedback", `{"event_id":3}`, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "content is required")

	rr = httptest.NewRecorder()
	c.UpdateFeedback(rr, newRequest(http.MethodPatch, "/api/feedback/40", `{"content":"Updated"}`, map[string]string{"id": "40"}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Updated", *fake.lastUpdate.Content)

	rr = httptest.NewRecorder()
	c.ListFeedback(rr, newRequest(http.MethodGet, "/api/feedback?event_id=3", "", nil))
	assert.Contains(t, rr.Body.String(), `"feedback":[]`)

	rr = httptest.NewRecorder()
	c.DeleteFeedback(rr, newRequest(http.MethodDelete, "/api/feedback/40", "", map[string]string{"id": "40"}))
	assert.JSONEq(t, `{"message":"Feedback deleted","id":40}`, rr.Body.String())
}
