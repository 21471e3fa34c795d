package domain

import (
	"encoding/json"
	"testing"
)

func TestOptionalTracksPresence(t *testing.T) {
	var payload struct {
		Name     Optional[string] `json:"name"`
		Location Optional[string] `json:"location"`
		Model    Optional[string] `json:"model"`
	}
	if err := json.Unmarshal([]byte(`{"name":"MRI","location":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if v, ok := payload.Name.Get(); !ok || v != "MRI" {
		t.Fatalf("expected name MRI, got %q (%v)", v, ok)
	}
	if !payload.Location.Present() || !payload.Location.IsNull() || payload.Location.IsSet() {
		t.Fatalf("expected location to be present and null")
	}
	if payload.Model.Present() {
		t.Fatalf("expected model to be absent")
	}
}

func TestEquipmentPatchIgnoresNullAndAbsent(t *testing.T) {
	var patch EquipmentPatch
	if err := json.Unmarshal([]byte(`{"Status":"maintenance","Location":null}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	e := Equipment{Name: "CT", Location: "Ward 3", Status: EquipmentStatusActive}
	patch.Apply(&e)

	if e.Status != EquipmentStatusMaintenance {
		t.Fatalf("expected status maintenance, got %s", e.Status)
	}
	if e.Location != "Ward 3" || e.Name != "CT" {
		t.Fatalf("unexpected changes to untouched fields: %+v", e)
	}
}

func TestTicketPatchApply(t *testing.T) {
	ticket := Ticket{Title: "Broken", Status: TicketStatusOpen, Priority: DefaultTicketPriority}
	TicketPatch{Status: Some(TicketStatusInProgress), AssignedTo: Some("tech-1")}.Apply(&ticket)

	if ticket.Status != TicketStatusInProgress {
		t.Fatalf("expected in_progress, got %s", ticket.Status)
	}
	if ticket.AssignedTo == nil || *ticket.AssignedTo != "tech-1" {
		t.Fatalf("expected assignee tech-1, got %v", ticket.AssignedTo)
	}
	if ticket.ResolvedAt != nil {
		t.Fatalf("expected resolved_at untouched")
	}
}

func TestOptionalMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Optional[int] `json:"a"`
		B Optional[int] `json:"b"`
	}{A: Some(3)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"a":3,"b":null}` {
		t.Fatalf("unexpected output %s", out)
	}
}
