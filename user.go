package main

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Preference string

const (
	PreferenceMale   Preference = "male"
	PreferenceFemale Preference = "female"
	PreferenceGroup  Preference = "group"
)

type RoomType string

const (
	RoomTypeCouple RoomType = "couple"
	RoomTypeGroup  RoomType = "group"
)

type userStatus int

const (
	statusIdle userStatus = iota
	statusWaiting
	statusPaired
	statusInGroup
)

// User is the per-connection record. The status field is the single
// authoritative answer to "where is this handle right now": a handle is
// idle, in exactly one waiting pool, paired with exactly one partner, or a
// member of exactly one group. Pool slices and group member lists follow it,
// never the other way around.
type User struct {
	UserID     string
	Handle     string
	Name       string
	Gender     Gender
	Preference Preference
	RoomType   RoomType

	status  userStatus
	pool    poolCategory
	partner string
	group   string
}

func (u *User) PartnerHandle() (string, bool) {
	if u.status != statusPaired || u.partner == "" {
		return "", false
	}
	return u.partner, true
}

func (u *User) GroupCode() (string, bool) {
	if u.status != statusInGroup || u.group == "" {
		return "", false
	}
	return u.group, true
}

// DefaultDisplayName derives a name for users that join without one.
func DefaultDisplayName(userID string) string {
	runes := []rune(userID)
	if len(runes) > 5 {
		runes = runes[:5]
	}
	return "User-" + string(runes)
}
