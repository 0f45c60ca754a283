package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/terraincognita07/zivora/internal/models"
)

func TestMedicationLifecycle(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	owner := bearerFor(t, 1)
	stranger := bearerFor(t, 2)

	response, body := doRequest(t, app, http.MethodPost, "/api/users/1/medications", owner, `{"name":"Sumatriptan","dosage":"50mg","type":"abortive"}`)
	requireStatus(t, response, body, http.StatusCreated)
	created := models.Medication{}
	decodeBody(t, body, &created)
	if created.ID == 0 || !created.IsActive || models.StringValue(created.Dosage) != "50mg" {
		t.Fatalf("unexpected created medication %#v", created)
	}
	path := fmt.Sprintf("/api/users/1/medications/%d", created.ID)

	response, body = doRequest(t, app, http.MethodPost, "/api/users/1/medications", stranger, `{"name":"x","type":"rescue"}`)
	requireStatus(t, response, body, http.StatusForbidden)

	response, body = doRequest(t, app, http.MethodPost, "/api/users/1/medications", owner, `{"name":"Ibuprofen"}`)
	requireStatus(t, response, body, http.StatusBadRequest)
	if message := readAPIError(t, body); message != "type is required" {
		t.Fatalf("unexpected validation message %q", message)
	}

	response, body = doRequest(t, app, http.MethodPut, path, owner, `{"isActive":false}`)
	requireStatus(t, response, body, http.StatusOK)
	updated := models.Medication{}
	decodeBody(t, body, &updated)
	if updated.IsActive || updated.Type != "abortive" {
		t.Fatalf("expected partial update, got %#v", updated)
	}

	response, body = doRequest(t, app, http.MethodGet, "/api/users/1/medications", owner, "")
	requireStatus(t, response, body, http.StatusOK)
	listed := []models.Medication{}
	decodeBody(t, body, &listed)
	if len(listed) != 1 || listed[0].IsActive {
		t.Fatalf("unexpected medication list %#v", listed)
	}

	response, body = doRequest(t, app, http.MethodPut, "/api/users/1/medications/999", owner, `{"isActive":true}`)
	requireStatus(t, response, body, http.StatusNotFound)

	response, body = doRequest(t, app, http.MethodDelete, path, owner, "")
	requireStatus(t, response, body, http.StatusOK)
	response, body = doRequest(t, app, http.MethodDelete, path, owner, "")
	requireStatus(t, response, body, http.StatusNotFound)
}
