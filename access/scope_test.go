package access

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestResolve_Superuser(t *testing.T) {
	s := Resolve("user-1", true)
	if !s.All {
		t.Fatal("superuser scope must be unfiltered")
	}

	stmt := dryRunDB(t).Scopes(s.Apply).Table("bookings").Find(&[]map[string]interface{}{}).Statement
	if sql := stmt.SQL.String(); strings.Contains(sql, "user_id") {
		t.Fatalf("superuser query must not filter by owner, got: %s", sql)
	}
}

func TestResolve_Owner(t *testing.T) {
	s := Resolve("user-1", false)
	if s.All {
		t.Fatal("non-superuser scope must be owner-filtered")
	}

	stmt := dryRunDB(t).Scopes(s.Apply).Table("bookings").Find(&[]map[string]interface{}{}).Statement
	sql := stmt.SQL.String()
	if !strings.Contains(sql, "user_id = ?") {
		t.Fatalf("owner query must filter by user_id, got: %s", sql)
	}
	found := false
	for _, v := range stmt.Vars {
		if v == "user-1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("owner id missing from query vars: %v", stmt.Vars)
	}
}

func TestAllows(t *testing.T) {
	owner := Resolve("user-1", false)
	if !owner.Allows("user-1") {
		t.Fatal("scope must allow its own rows")
	}
	if owner.Allows("user-2") {
		t.Fatal("owner scope must reject other owners' rows")
	}

	super := Resolve("admin", true)
	if !super.Allows("user-2") {
		t.Fatal("superuser scope must allow any owner")
	}
}
