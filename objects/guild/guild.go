package guild

type Guild struct {
	Id          uint64 `json:"id,string"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	OwnerId     uint64 `json:"owner_id,string"`
	MemberCount int    `json:"member_count"`
	Unavailable bool   `json:"unavailable"`
	JoinedAt    string `json:"joined_at"`
}
