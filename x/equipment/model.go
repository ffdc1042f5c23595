package equipment

import (
	"github.com/totegamma/charsheet/core"
)

type itemRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Category    string   `json:"category" validate:"required,itemcategory"`
	CostCP      int      `json:"costCp" validate:"min=0"`
	Weight      float64  `json:"weight" validate:"min=0"`
	Properties  []string `json:"properties" validate:"dive,required"`
	Description string   `json:"description" validate:"max=10000"`
}

func (r itemRequest) toModel() core.Item {
	return core.Item{
		Name:        r.Name,
		Category:    core.ItemCategory(r.Category),
		CostCP:      r.CostCP,
		Weight:      r.Weight,
		Properties:  r.Properties,
		Description: r.Description,
	}
}
