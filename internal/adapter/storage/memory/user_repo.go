package memory

import (
	"context"

	"mobi-voucher-gateway/internal/core/domain"
)

// UserRepo implements ports.UserDirectory over the static recipient lists.
type UserRepo struct {
	recipients []domain.Recipient
}

// NewUserRepo creates a directory seeded with the default community and
// friend lists.
func NewUserRepo() *UserRepo {
	return NewUserRepoWith(defaultRecipients())
}

// NewUserRepoWith creates a directory over a custom recipient list.
func NewUserRepoWith(recipients []domain.Recipient) *UserRepo {
	return &UserRepo{recipients: recipients}
}

// ListRecipients returns all recipients in a group.
func (r *UserRepo) ListRecipients(_ context.Context, group domain.RecipientGroup) ([]domain.Recipient, error) {
	var out []domain.Recipient
	for _, u := range r.recipients {
		if u.Group == group {
			out = append(out, u)
		}
	}
	return out, nil
}

// GetRecipient returns a recipient by id, nil if unknown.
func (r *UserRepo) GetRecipient(_ context.Context, id string) (*domain.Recipient, error) {
	for _, u := range r.recipients {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func defaultRecipients() []domain.Recipient {
	return []domain.Recipient{
		{ID: "u-amaka", Name: "Amaka Obi", Avatar: "🧕", Group: domain.GroupCommunity},
		{ID: "u-tunde", Name: "Tunde Bakare", Avatar: "👨🏿", Group: domain.GroupCommunity},
		{ID: "u-ngozi", Name: "Ngozi Eze", Avatar: "👩🏾", Group: domain.GroupCommunity},
		{ID: "u-sefi", Name: "Sefi Adamu", Avatar: "🧑🏽", Group: domain.GroupFriends},
		{ID: "u-kola", Name: "Kola Ade", Avatar: "👨🏾", Group: domain.GroupFriends},
	}
}
