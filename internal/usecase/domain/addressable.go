package domain

import (
	"context"
	"sort"
	"strings"

	"radya-hi5/internal/entities"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ListAddressable merges accounts with roster members that have no account yet,
// excluding the caller, ordered by name case-insensitively.
func (u *Usecase) ListAddressable(ctx context.Context, excludeAccountID string) ([]entities.Addressable, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	accounts, err := u.repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return mergeAddressable(accounts, u.roster.Members(), excludeAccountID), nil
}

func mergeAddressable(accounts []entities.Account, members []entities.RosterMember, excludeAccountID string) []entities.Addressable {
	names := make(map[string]struct{}, len(accounts))
	linked := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		names[foldName(a.Name)] = struct{}{}
		if a.IsLinked() {
			linked[*a.LinkedRosterID] = struct{}{}
		}
	}

	departments := make(map[string]*string, len(members))
	for _, m := range members {
		departments[m.ID] = m.Department
	}

	out := make([]entities.Addressable, 0, len(accounts)+len(members))
	for _, a := range accounts {
		if a.ID == excludeAccountID {
			continue
		}
		item := entities.Addressable{
			DisplayID: a.ID,
			Name:      a.Name,
			Email:     a.Email,
			Image:     a.Image,
			RosterID:  a.LinkedRosterID,
		}
		if a.IsLinked() {
			item.Department = departments[*a.LinkedRosterID]
		}
		out = append(out, item)
	}

	for _, m := range members {
		if m.ID == excludeAccountID {
			continue
		}
		if _, ok := linked[m.ID]; ok {
			continue
		}
		if _, ok := names[foldName(m.Name)]; ok {
			continue
		}
		rosterID := m.ID
		out = append(out, entities.Addressable{
			DisplayID:  m.ID,
			Name:       m.Name,
			Email:      m.Email,
			RosterID:   &rosterID,
			Department: m.Department,
		})
	}

	sortByName(out)
	return out
}

func sortByName(items []entities.Addressable) {
	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		if c := col.CompareString(items[i].Name, items[j].Name); c != 0 {
			return c < 0
		}
		return items[i].DisplayID < items[j].DisplayID
	})
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
