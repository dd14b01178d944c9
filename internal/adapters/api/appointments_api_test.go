package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"vetcare-web/internal/core/domain"
)

func TestAvailableTimesEscapesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/appointments/available-times" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("email_clinica"); got != "pet+vida@x.com" {
			t.Errorf("email not escaped correctly: %q", got)
		}
		_, _ = w.Write([]byte(`{"available_times":["08:00","08:30"],"occupied_times":["09:00"]}`))
	}, "t1")

	times, err := NewAppointmentsAPI(client).AvailableTimes(context.Background(), "pet+vida@x.com", "2026-11-03")
	if err != nil {
		t.Fatalf("available times: %v", err)
	}
	if len(times.Available) != 2 || times.Occupied[0] != "09:00" {
		t.Fatalf("unexpected times %+v", times)
	}
}

func TestUpdateStatusValidatesBeforeSending(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body domain.StatusUpdate
		_ = json.NewDecoder(r.Body).Decode(&body)
		if r.Method != http.MethodPut || r.URL.Path != "/api/appointments/a1/status" || body.Status != domain.StatusRecusado {
			t.Errorf("unexpected call %s %s %+v", r.Method, r.URL.Path, body)
		}
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}, "t1")
	appts := NewAppointmentsAPI(client)

	err := appts.UpdateStatus(context.Background(), "a1", domain.StatusUpdate{Status: domain.StatusRecusado})
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if calls != 0 {
		t.Fatal("invalid update must not reach the backend")
	}
	if err := appts.UpdateStatus(context.Background(), "a1", domain.StatusUpdate{Status: domain.StatusRecusado, MotivoRecusa: "Agenda cheia"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one backend call, got %d", calls)
	}
}

func TestListAppointments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"appointments":[{"id":"a1","animal_id":"p1","data_agendamento":"2026-11-03","horario":"09:30","status":"pendente"}]}`))
	}, "t1")

	list, err := NewAppointmentsAPI(client).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || !list[0].Status.Decidable() {
		t.Fatalf("unexpected list %+v", list)
	}
}
