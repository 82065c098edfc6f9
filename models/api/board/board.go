package boardapimodels

import (
	"recruitment-backend/models"
)

// BoardFilter is the query surface of the recruitment board.
type BoardFilter struct {
	Refresh        bool   `json:"refresh" query:"refresh"`
	Position       string `json:"position" query:"position"`
	DateAssessment string `json:"date_assessment" query:"date_assessment"` // YYYY-MM-DD
	Status         string `json:"status" query:"status"`
	Search         string `json:"search" query:"search"`
	Page           int    `json:"page" query:"page"`
}

type BoardTag struct {
	Label string          `json:"label"`
	Color models.TagColor `json:"color"`
}

type BoardCard struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Position string     `json:"position"`
	Avatar   string     `json:"avatar"`
	Address  string     `json:"address"`
	Salary   int        `json:"salary"`
	Notes    []string   `json:"notes"`
	Progress float64    `json:"progress"` // equal-weighted mean of rater scores
	Overall  float64    `json:"overall"`  // shared attainable ceiling
	Tags     []BoardTag `json:"tags"`
	Date     string     `json:"date"`
}

type BoardColumn struct {
	Stage     string      `json:"stage"`
	TotalCard int64       `json:"totalCard"`
	Cards     []BoardCard `json:"cards"`
}

type BoardView struct {
	Version int64         `json:"version"`
	Columns []BoardColumn `json:"columns"`
}
