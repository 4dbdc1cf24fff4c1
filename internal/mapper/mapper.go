// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"radya-hi5/internal/entities"
	"radya-hi5/internal/transport/http/dto"
)

// FromCreateKudos builds a kudos request for the authenticated sender.
func FromCreateKudos(senderID string, src dto.CreateKudosRequest) entities.KudosRequest {
	return entities.KudosRequest{
		SenderID:      senderID,
		RecipientRefs: src.RecipientIDs,
		ValueID:       src.ValueID,
		Message:       src.Message,
	}
}

// ToUser maps entities.Account to its public view.
func ToUser(a entities.Account) dto.User {
	return dto.User{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Image:        a.Image,
		TeamMemberID: a.LinkedRosterID,
		IsAdmin:      a.IsAdmin,
	}
}

// ToTeamMember maps a roster entry.
func ToTeamMember(m entities.RosterMember) dto.TeamMember {
	return dto.TeamMember{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Department: m.Department,
	}
}

// ToAddressable maps the recipient picker list.
func ToAddressable(items []entities.Addressable) []dto.AddressableUser {
	out := make([]dto.AddressableUser, 0, len(items))
	for _, it := range items {
		out = append(out, dto.AddressableUser{
			ID:           it.DisplayID,
			Name:         it.Name,
			Email:        it.Email,
			Image:        it.Image,
			TeamMemberID: it.RosterID,
			Department:   it.Department,
		})
	}
	return out
}

// ToValues maps the value catalog.
func ToValues(values []entities.ValueTag) []dto.Value {
	out := make([]dto.Value, 0, len(values))
	for _, v := range values {
		out = append(out, dto.Value(v))
	}
	return out
}

// ToKudos maps entities.Kudos to transport model.
func ToKudos(k entities.Kudos) dto.Kudos {
	recipients := make([]dto.Recipient, 0, len(k.Recipients))
	for _, r := range k.Recipients {
		recipients = append(recipients, dto.Recipient{
			KudosID:   k.ID,
			UserID:    r.Account.ID,
			CreatedAt: r.CreatedAt,
			User:      ToUser(r.Account),
		})
	}

	return dto.Kudos{
		ID:         k.ID,
		Value:      k.Value,
		Message:    k.Message,
		SenderID:   k.Sender.ID,
		CreatedAt:  k.CreatedAt,
		EmailSent:  k.EmailSent,
		Sender:     ToUser(k.Sender),
		Recipients: recipients,
	}
}

// ToKudosList maps a page of sent kudos.
func ToKudosList(page entities.KudosPage) dto.KudosListResponse {
	out := dto.KudosListResponse{Kudos: make([]dto.Kudos, 0, len(page.Kudos)), Total: page.Total}
	for _, k := range page.Kudos {
		out.Kudos = append(out.Kudos, ToKudos(k))
	}
	return out
}

// ToStats maps the admin dashboard.
func ToStats(d entities.Dashboard) dto.StatsResponse {
	return dto.StatsResponse{
		MostReceived:       toUserCounts(d.MostReceived),
		MostGiven:          toUserCounts(d.MostGiven),
		MostValues:         toValueCounts(d.MostValues),
		TotalKudosThisWeek: d.TotalKudosWeek,
		TotalKudosOverall:  d.TotalKudosOverall,
		Weeks:              d.Weeks,
		UserStats: dto.UserStats{
			TotalUsers:    d.Accounts.Total,
			LinkedUsers:   d.Accounts.Linked,
			UnlinkedUsers: d.Accounts.Unlinked,
		},
	}
}

// ToSyncUser maps the sign-in sync result.
func ToSyncUser(res entities.SyncResult) dto.SyncUserResponse {
	out := dto.SyncUserResponse{
		User:                 ToUser(res.Account),
		IsLinkedToTeamMember: res.Linked,
	}
	if res.RosterMember != nil {
		m := ToTeamMember(*res.RosterMember)
		out.TeamMember = &m
	}
	return out
}

func toUserCounts(rows []entities.AccountCount) []dto.UserCount {
	out := make([]dto.UserCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.UserCount{User: ToUser(r.Account), Count: r.Count})
	}
	return out
}

func toValueCounts(rows []entities.ValueCount) []dto.ValueCount {
	out := make([]dto.ValueCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ValueCount{Value: r.Value, Count: r.Count})
	}
	return out
}
