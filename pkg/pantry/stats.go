package pantry

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/pkg/expiry"
)

type Stats struct {
	TotalItems    int
	TotalQuantity int
	TotalValue    float64
	Statuses      expiry.Summary
}

// ComputeStats sums every pantry. TotalValue keeps full precision; round it
// with domain.RoundCents when presenting.
func ComputeStats(inv *Inventory, classifier expiry.Classifier) Stats {
	var st Stats
	var statuses []expiry.Status
	for _, p := range inv.Pantries {
		for _, it := range p.Items {
			st.TotalItems++
			st.TotalQuantity += it.Quantity
			st.TotalValue += float64(it.Quantity) * it.Price
			statuses = append(statuses, classifier.Status(it.Expiry))
		}
	}
	st.Statuses = expiry.Summarize(statuses...)
	return st
}

func (st Stats) Response() domain.InventoryStatsResponse {
	return domain.InventoryStatsResponse{
		TotalItems:    st.TotalItems,
		TotalQuantity: st.TotalQuantity,
		TotalValue:    domain.RoundCents(st.TotalValue),
		OkItems:       st.Statuses.OK,
		NearItems:     st.Statuses.Near,
		ExpiredItems:  st.Statuses.Expired,
		UndatedItems:  st.Statuses.None,
	}
}
