package controllers

import "testing"

func TestSanitizeUpdates_StripsImmutableKeysAnyCase(t *testing.T) {
	out := sanitizeUpdates(map[string]interface{}{
		"ID":         99,
		"User_Id":    "attacker",
		"CREATED_AT": "2020-01-01",
		"UpdatedAt":  "x", // not a column spelling, passes through lowercased
		"deleted_at": nil,
		"Name":       "New Name",
		"daily_rate": 60.0,
	})

	for _, forbidden := range []string{"id", "user_id", "created_at", "deleted_at"} {
		if _, ok := out[forbidden]; ok {
			t.Fatalf("%q must be stripped from update payloads", forbidden)
		}
	}
	if out["name"] != "New Name" {
		t.Fatalf("name = %v; want the payload value kept under a lowercase key", out["name"])
	}
	if out["daily_rate"] != 60.0 {
		t.Fatalf("daily_rate = %v; want 60", out["daily_rate"])
	}
}

func TestSanitizeUpdates_EmptyPayload(t *testing.T) {
	if out := sanitizeUpdates(map[string]interface{}{}); len(out) != 0 {
		t.Fatalf("got %v; want empty", out)
	}
}
