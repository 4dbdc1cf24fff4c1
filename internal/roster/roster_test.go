package roster

import (
	"os"
	"path/filepath"
	"testing"

	"radya-hi5/internal/entities"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadJSONAndYAML(t *testing.T) {
	members := writeFile(t, "members.json", `[
  {"id": "r1", "name": "Ana", "email": "ana@co.com", "department": "Eng"},
  {"id": "r2", "name": "Budi", "email": "budi"}
]`)
	emails := writeFile(t, "emails.yaml", `
- id: r2
  email: budi@co.com
- id: r3
  email: not-an-address
`)

	d, err := Load(members, emails)
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	ana, ok := d.ByID("r1")
	require.True(t, ok)
	require.Equal(t, "Ana", ana.Name)
	require.NotNil(t, ana.Department)
	require.Equal(t, "Eng", *ana.Department)

	byEmail, ok := d.ByEmail("ANA@co.com ")
	require.True(t, ok)
	require.Equal(t, "r1", byEmail.ID)

	r2 := "r2"
	addr, ok := d.DeliveryAddress("budi", &r2)
	require.True(t, ok)
	require.Equal(t, "budi@co.com", addr)

	r3 := "r3"
	_, ok = d.DeliveryAddress("placeholder", &r3)
	require.False(t, ok)

	addr, ok = d.DeliveryAddress("real@co.com", nil)
	require.True(t, ok)
	require.Equal(t, "real@co.com", addr)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]entities.RosterMember{
		{ID: "r1", Name: "Ana"},
		{ID: "r1", Name: "Ana Again"},
	})
	require.Error(t, err)
}

func TestNewRejectsMissingName(t *testing.T) {
	_, err := New([]entities.RosterMember{{ID: "r1"}})
	require.Error(t, err)
}

func TestByEmailFirstEntryWins(t *testing.T) {
	d, err := New([]entities.RosterMember{
		{ID: "r1", Name: "Ana", Email: "shared@co.com"},
		{ID: "r2", Name: "Ani", Email: "shared@co.com"},
	})
	require.NoError(t, err)

	m, ok := d.ByEmail("shared@co.com")
	require.True(t, ok)
	require.Equal(t, "r1", m.ID)
}

func TestMembersReturnsCopy(t *testing.T) {
	d, err := New([]entities.RosterMember{{ID: "r1", Name: "Ana"}})
	require.NoError(t, err)

	members := d.Members()
	members[0].Name = "Changed"

	m, _ := d.ByID("r1")
	require.Equal(t, "Ana", m.Name)
}

func TestCatalog(t *testing.T) {
	path := writeFile(t, "values.json", `[
  {"id": "teamwork", "name": "Teamwork", "description": "Better together", "icon": "Users", "color": "bg-blue-500"},
  {"id": "ownership", "name": "Ownership", "description": "Own it"}
]`)

	c, err := LoadValues(path)
	require.NoError(t, err)
	require.Len(t, c.All(), 2)

	v, ok := c.Get("teamwork")
	require.True(t, ok)
	require.Equal(t, "Users", v.Icon)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestCatalogValidation(t *testing.T) {
	_, err := NewCatalog(nil)
	require.Error(t, err)

	_, err = NewCatalog([]entities.ValueTag{{ID: "a"}, {ID: "a"}})
	require.Error(t, err)
}
