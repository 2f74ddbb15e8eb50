package request

import (
	"time"

	"korvo/internal/pkg/errs"
	"korvo/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("invalid date format, expected YYYY-MM-DD")

type CreateRewardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Cost        int    `json:"cost" binding:"required"`
	Category    string `json:"category"`
}

func (r CreateRewardRequest) ToParams() commands.CreateRewardParams {
	return commands.CreateRewardParams{
		Name:        r.Name,
		Description: r.Description,
		Cost:        r.Cost,
		Category:    r.Category,
	}
}

type UpdateRewardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Cost        int    `json:"cost" binding:"required"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
}

func (r UpdateRewardRequest) ToParams() commands.UpdateRewardParams {
	return commands.UpdateRewardParams{
		Name:        r.Name,
		Description: r.Description,
		Cost:        r.Cost,
		Category:    r.Category,
		Active:      r.Active,
	}
}

type CreatePromotionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	Amount      int    `json:"amount" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

func (r CreatePromotionRequest) ToParams() (commands.CreatePromotionParams, error) {
	startDate, endDate, err := parseDates(r.StartDate, r.EndDate)
	if err != nil {
		return commands.CreatePromotionParams{}, err
	}
	return commands.CreatePromotionParams{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Amount:      r.Amount,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}

type UpdatePromotionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	Amount      int    `json:"amount" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Active      bool   `json:"active"`
}

func (r UpdatePromotionRequest) ToParams() (commands.UpdatePromotionParams, error) {
	startDate, endDate, err := parseDates(r.StartDate, r.EndDate)
	if err != nil {
		return commands.UpdatePromotionParams{}, err
	}
	return commands.UpdatePromotionParams{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Amount:      r.Amount,
		StartDate:   startDate,
		EndDate:     endDate,
		Active:      r.Active,
	}, nil
}

func parseDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return startDate, endDate, nil
}
