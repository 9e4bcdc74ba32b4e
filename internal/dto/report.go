package dto

type SalesByProductRow struct {
	ProductName  string `json:"productName"`
	TotalSoldQty int    `json:"totalSoldQty"`
}
