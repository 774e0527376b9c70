package domain

// RecipientGroup identifies which directory list a recipient belongs to.
type RecipientGroup string

const (
	GroupCommunity RecipientGroup = "community"
	GroupFriends   RecipientGroup = "friends"
)

// Recipient is a user that purchased Mobi can be distributed to.
type Recipient struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Avatar string         `json:"avatar"`
	Group  RecipientGroup `json:"group"`
}
