package background

import (
	"github.com/totegamma/charsheet/core"
)

type backgroundRequest struct {
	Name               string   `json:"name" validate:"required,max=100"`
	Description        string   `json:"description" validate:"max=10000"`
	SkillProficiencies []string `json:"skillProficiencies" validate:"max=8,dive,required"`
	Feature            string   `json:"feature" validate:"max=10000"`
}

func (r backgroundRequest) toModel() core.Background {
	return core.Background{
		Name:               r.Name,
		Description:        r.Description,
		SkillProficiencies: r.SkillProficiencies,
		Feature:            r.Feature,
	}
}
