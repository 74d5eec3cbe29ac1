package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pmi-sydney/pmdos-match/internal/catalog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const volunteerCSV = `First Name,Last Name,Email address,Company,Current / Latest Job Title,PMI ID Number,LinkedIn Profile URL,Year(s) as a Project Professional,Areas of Interest,Project Management,Strategic Planning
Alice,Wong,alice@example.org,Acme,Program Manager,12345,https://www.linkedin.com/in/alicewong,More than 8 Years,Non-profit work,5,4
Bob,Reed,,,,,,1 - 3 Years,,not-a-number,3
`

func TestLoadVolunteers(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "volunteers.csv", volunteerCSV)

	rows, err := LoadVolunteers(path, catalog.Default())
	if err != nil {
		t.Fatalf("LoadVolunteers() error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	alice := rows[0]
	if alice.Name() != "Alice Wong" {
		t.Errorf("Name() = %q, want %q", alice.Name(), "Alice Wong")
	}
	if alice.Employer != "Acme" {
		t.Errorf("Employer = %q, want Acme", alice.Employer)
	}
	if alice.Ratings["Project Management"] != "5" {
		t.Errorf("Project Management rating = %q, want 5", alice.Ratings["Project Management"])
	}

	// Missing cells degrade to empty strings, unparseable ratings survive
	// as raw text for the profile scorer to coerce.
	bob := rows[1]
	if bob.Email != "" || bob.Employer != "" {
		t.Errorf("blank cells not preserved: %+v", bob)
	}
	if bob.Ratings["Project Management"] != "not-a-number" {
		t.Errorf("raw rating = %q, want not-a-number", bob.Ratings["Project Management"])
	}
}

func TestLoadVolunteersMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "volunteers.csv", "First Name,Email\nAlice,a@example.org\n")

	_, err := LoadVolunteers(path, catalog.Default())
	if err == nil {
		t.Fatal("LoadVolunteers() = nil error, want missing-column failure")
	}
	if !strings.Contains(err.Error(), "last name") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestLoadVolunteersEmptyTable(t *testing.T) {
	dir := t.TempDir()

	for name, content := range map[string]string{
		"empty.csv":       "",
		"header-only.csv": "First Name,Last Name\n",
	} {
		if _, err := LoadVolunteers(writeFile(t, dir, name, content), catalog.Default()); err == nil {
			t.Errorf("LoadVolunteers(%s) = nil error, want failure", name)
		}
	}
}

func TestLoadProjects(t *testing.T) {
	dir := t.TempDir()
	csv := `Name of the organisation,Name of the initiative? ,Simple description of the initiative or the project.,What are the key outcomes expected from this initiative or project?,How will this initiative benefit your organisation?,What outcome(s) do you expect to achieve by participating in this PMDoS event?
Hope Shelter,Strategic Plan Refresh,Build a strategic plan,A clear roadmap,Better focus,A project plan
Food Bank,,,,,
`
	rows, err := LoadProjects(writeFile(t, dir, "projects.csv", csv))
	if err != nil {
		t.Fatalf("LoadProjects() error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Organization != "Hope Shelter" || rows[0].Initiative != "Strategic Plan Refresh" {
		t.Errorf("survey headers not resolved: %+v", rows[0])
	}
	if rows[1].Description != "" {
		t.Errorf("blank free text should stay empty, got %q", rows[1].Description)
	}
}

func TestLoadProjectsMissingOrganization(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "projects.csv", "Initiative,Description\nPlan,Text\n")

	if _, err := LoadProjects(path); err == nil {
		t.Fatal("LoadProjects() = nil error, want missing-column failure")
	}
}

func TestDiscoverPicksLatest(t *testing.T) {
	dir := t.TempDir()

	older := writeFile(t, dir, "PMDoS Registration Responses old.csv", "x")
	newer := writeFile(t, dir, "PMDoS Registration Responses new.csv", "x")

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	got, err := DiscoverVolunteerFile(dir)
	if err != nil {
		t.Fatalf("DiscoverVolunteerFile() error: %v", err)
	}
	if got != newer {
		t.Errorf("DiscoverVolunteerFile() = %q, want %q", got, newer)
	}
}

func TestDiscoverEmptyDir(t *testing.T) {
	if _, err := DiscoverProjectFile(t.TempDir()); err == nil {
		t.Error("DiscoverProjectFile() = nil error for empty dir")
	}
}
