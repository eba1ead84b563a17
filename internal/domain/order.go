package domain

type Order struct {
	ID                 int64  `json:"id"`
	Code               string `json:"code"`
	Client             string `json:"client"`
	Service            string `json:"service"`
	Region             string `json:"region"`
	ProfessionRequired string `json:"profession_required"`
	Details            string `json:"details"`
}
