package models

import (
	"time"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Request модели

// PriceRuleRequest правило цены зала
type PriceRuleRequest struct {
	Comparison   string  `json:"comparison" validate:"required"`
	FromLength   int     `json:"fromLength" validate:"gte=0,lte=1440"`
	ScheduleMask *uint8  `json:"scheduleMask,omitempty" validate:"omitempty,lte=127"`
	Type         string  `json:"type" validate:"required,oneof=fixed per_hour"`
	TimeFrom     *string `json:"timeFrom,omitempty"`
	TimeTo       *string `json:"timeTo,omitempty"`
	Price        int64   `json:"price" validate:"gte=0"`
	ServiceIDs   []int64 `json:"serviceIds,omitempty" validate:"omitempty,dive,gt=0"`
}

// CreateHallRequest запрос на создание зала
type CreateHallRequest struct {
	Name              string             `json:"name" validate:"required,max=255"`
	BasePrice         int64              `json:"basePrice" validate:"gte=0"`
	PrepaymentPercent int                `json:"prepaymentPercent" validate:"gte=0,lte=100"`
	Prices            []PriceRuleRequest `json:"prices" validate:"max=100,dive"`
}

// UpdatePricesRequest запрос на замену правил цены зала
type UpdatePricesRequest struct {
	Prices []PriceRuleRequest `json:"prices" validate:"max=100,dive"`
}

// ToDomainRules конвертирует правила в domain с позициями по порядку списка
func ToDomainRules(hallID int64, rules []PriceRuleRequest) []domain.PriceRule {
	out := make([]domain.PriceRule, 0, len(rules))
	for i, r := range rules {
		rule := domain.PriceRule{
			HallID:     hallID,
			Position:   i,
			Comparison: domain.Comparison(r.Comparison),
			FromLength: r.FromLength,
			Type:       domain.PriceType(r.Type),
			TimeFrom:   r.TimeFrom,
			TimeTo:     r.TimeTo,
			Price:      r.Price,
			ServiceIDs: r.ServiceIDs,
		}
		if r.ScheduleMask != nil {
			mask := domain.ScheduleMask(*r.ScheduleMask)
			rule.ScheduleMask = &mask
		}
		out = append(out, rule)
	}
	return out
}

// Response модели

// PriceRuleResponse правило цены в ответе
type PriceRuleResponse struct {
	ID           int64   `json:"id"`
	Position     int     `json:"position"`
	Comparison   string  `json:"comparison"`
	FromLength   int     `json:"fromLength"`
	ScheduleMask *uint8  `json:"scheduleMask,omitempty"`
	Type         string  `json:"type"`
	TimeFrom     *string `json:"timeFrom,omitempty"`
	TimeTo       *string `json:"timeTo,omitempty"`
	Price        int64   `json:"price"`
	ServiceIDs   []int64 `json:"serviceIds,omitempty"`
}

// HallResponse ответ с данными зала
type HallResponse struct {
	ID                int64               `json:"id"`
	Name              string              `json:"name"`
	BasePrice         int64               `json:"basePrice"`
	PrepaymentPercent int                 `json:"prepaymentPercent"`
	Prices            []PriceRuleResponse `json:"prices"`
	CreatedAt         string              `json:"createdAt"`
	UpdatedAt         string              `json:"updatedAt"`
}

// HallListResponse список залов
type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
	Total int            `json:"total"`
}

// FromDomainHall конвертирует domain.Hall в HallResponse
func FromDomainHall(h *domain.Hall) *HallResponse {
	resp := &HallResponse{
		ID:                h.ID,
		Name:              h.Name,
		BasePrice:         h.BasePrice,
		PrepaymentPercent: h.PrepaymentPercent,
		Prices:            make([]PriceRuleResponse, 0, len(h.Prices)),
		CreatedAt:         h.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         h.UpdatedAt.Format(time.RFC3339),
	}

	for _, p := range h.Prices {
		rule := PriceRuleResponse{
			ID:         p.ID,
			Position:   p.Position,
			Comparison: string(p.Comparison),
			FromLength: p.FromLength,
			Type:       string(p.Type),
			TimeFrom:   p.TimeFrom,
			TimeTo:     p.TimeTo,
			Price:      p.Price,
			ServiceIDs: p.ServiceIDs,
		}
		if p.ScheduleMask != nil {
			mask := uint8(*p.ScheduleMask)
			rule.ScheduleMask = &mask
		}
		resp.Prices = append(resp.Prices, rule)
	}

	return resp
}

// FromDomainHallList конвертирует список залов
func FromDomainHallList(halls []*domain.Hall) *HallListResponse {
	resp := &HallListResponse{
		Halls: make([]HallResponse, 0, len(halls)),
		Total: len(halls),
	}
	for _, h := range halls {
		resp.Halls = append(resp.Halls, *FromDomainHall(h))
	}
	return resp
}
