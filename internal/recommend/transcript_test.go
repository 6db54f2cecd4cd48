package recommend

import "testing"

func TestTranscriptAppendOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Append("hello", RoleUser)
	tr.Append("hi there", RoleAssistant)
	tr.Append("thanks", RoleUser)

	entries := tr.Entries()
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}

	wantRoles := []Role{RoleUser, RoleAssistant, RoleUser}
	wantTexts := []string{"hello", "hi there", "thanks"}
	for i, entry := range entries {
		if entry.Role != wantRoles[i] {
			t.Errorf("entry %d role = %s, want %s", i, entry.Role, wantRoles[i])
		}
		if entry.Text != wantTexts[i] {
			t.Errorf("entry %d text = %q, want %q", i, entry.Text, wantTexts[i])
		}
	}
}

func TestTypingPlaceholderRemoval(t *testing.T) {
	tr := NewTranscript()
	tr.Append("question", RoleUser)
	placeholder := tr.AppendTyping()
	tr.Append("unrelated", RoleUser)

	if !placeholder.Typing {
		t.Error("placeholder not marked as typing")
	}

	if !tr.Remove(placeholder) {
		t.Fatal("placeholder removal failed")
	}

	// Other entries keep their order.
	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Text != "question" || entries[1].Text != "unrelated" {
		t.Errorf("order disturbed after removal: %v", entries)
	}

	// Double removal is a no-op.
	if tr.Remove(placeholder) {
		t.Error("second removal reported success")
	}
	if tr.Len() != 2 {
		t.Errorf("len after double removal = %d, want 2", tr.Len())
	}
}

func TestTranscriptClear(t *testing.T) {
	tr := NewTranscript()
	tr.Append("a", RoleUser)
	tr.Append("b", RoleAssistant)
	tr.Clear()

	if tr.Len() != 0 {
		t.Errorf("len after clear = %d, want 0", tr.Len())
	}

	// IDs keep increasing so stale handles can never match new entries.
	entry := tr.Append("c", RoleUser)
	if entry.ID <= 2 {
		t.Errorf("entry ID = %d, want > 2", entry.ID)
	}
}
