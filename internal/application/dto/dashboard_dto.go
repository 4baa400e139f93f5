package dto

// DashboardResponse métricas agregadas para el tablero principal.
type DashboardResponse struct {
	TotalProducts    int64             `json:"total_products"`
	TotalCategories  int64             `json:"total_categories"`
	TotalUsers       int64             `json:"total_users"`
	ProductsByStatus map[string]int64  `json:"products_by_status"`
	TransactionsWeek int64             `json:"transactions_last_7_days"`
	LowStock         []ProductResponse `json:"low_stock"`
}
