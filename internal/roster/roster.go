// Package roster loads the static team roster and value catalog.
package roster

import (
	"fmt"
	"os"
	"strings"

	"radya-hi5/internal/entities"

	"sigs.k8s.io/yaml"
)

// Directory is the immutable, in-memory roster. It is safe for concurrent use.
type Directory struct {
	members   []entities.RosterMember
	byID      map[string]int
	byEmail   map[string]int
	fallbacks map[string]string
}

// FallbackEmail maps a roster ID to a deliverable address.
type FallbackEmail struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Load reads the roster from membersFile and, if emailsFile is set, the fallback address table.
// Both files may be JSON or YAML.
func Load(membersFile, emailsFile string) (*Directory, error) {
	var members []entities.RosterMember
	if err := readFile(membersFile, &members); err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	var fallbacks []FallbackEmail
	if emailsFile != "" {
		if err := readFile(emailsFile, &fallbacks); err != nil {
			return nil, fmt.Errorf("load roster emails: %w", err)
		}
	}

	return New(members, fallbacks...)
}

// New builds a Directory, rejecting entries without ID or name and duplicate IDs.
func New(members []entities.RosterMember, fallbacks ...FallbackEmail) (*Directory, error) {
	d := &Directory{
		members:   make([]entities.RosterMember, 0, len(members)),
		byID:      make(map[string]int, len(members)),
		byEmail:   make(map[string]int, len(members)),
		fallbacks: make(map[string]string, len(fallbacks)),
	}

	for i, m := range members {
		m.ID = strings.TrimSpace(m.ID)
		m.Name = strings.TrimSpace(m.Name)
		m.Email = strings.TrimSpace(m.Email)
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("roster entry %d: id and name are required", i)
		}
		if _, dup := d.byID[m.ID]; dup {
			return nil, fmt.Errorf("roster entry %d: duplicate id %q", i, m.ID)
		}
		d.byID[m.ID] = len(d.members)
		// first entry wins when the source repeats an email
		key := normalizeEmail(m.Email)
		if _, seen := d.byEmail[key]; !seen && key != "" {
			d.byEmail[key] = len(d.members)
		}
		d.members = append(d.members, m)
	}

	for _, f := range fallbacks {
		if entities.IsDeliverable(f.Email) {
			d.fallbacks[strings.TrimSpace(f.ID)] = strings.TrimSpace(f.Email)
		}
	}

	return d, nil
}

// Members returns the roster in source order.
func (d *Directory) Members() []entities.RosterMember {
	return append([]entities.RosterMember(nil), d.members...)
}

// Len returns the number of roster entries.
func (d *Directory) Len() int {
	return len(d.members)
}

// ByID looks a member up by roster ID.
func (d *Directory) ByID(id string) (entities.RosterMember, bool) {
	idx, ok := d.byID[id]
	if !ok {
		return entities.RosterMember{}, false
	}
	return d.members[idx], true
}

// ByEmail looks a member up by email, case-insensitively.
func (d *Directory) ByEmail(email string) (entities.RosterMember, bool) {
	idx, ok := d.byEmail[normalizeEmail(email)]
	if !ok {
		return entities.RosterMember{}, false
	}
	return d.members[idx], true
}

// DeliveryAddress returns where mail for an account should go.
// A real address is used as is; a placeholder falls back to the roster email table.
func (d *Directory) DeliveryAddress(email string, rosterID *string) (string, bool) {
	if entities.IsDeliverable(email) {
		return email, true
	}
	if rosterID == nil {
		return "", false
	}
	addr, ok := d.fallbacks[*rosterID]
	return addr, ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func readFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
