package domain

import "encoding/json"

// ShopSearchResponse is the envelope returned by the shop's product search
// API. Only the first list entry is ever consumed.
type ShopSearchResponse struct {
	Code int            `json:"code"`
	Msg  string         `json:"msg,omitempty"`
	Data ShopSearchData `json:"data"`
}

// ShopSearchData holds the paged result list of a search call.
type ShopSearchData struct {
	Total int           `json:"total"`
	List  []ShopProduct `json:"list"`
}

// ShopProduct is one search hit. Prices arrive as either JSON numbers or
// numeric strings depending on endpoint version, hence json.Number.
type ShopProduct struct {
	SpuID         int64       `json:"spuId"`
	Name          string      `json:"name"`
	SalePrice     json.Number `json:"salePrice"`
	OriginalPrice json.Number `json:"originalPrice"`
	CanBuy        bool        `json:"canBuy"`
	SKUList       []ShopSKU   `json:"skuList"`
}

// ShopSKU is a sellable unit under a ShopProduct.
type ShopSKU struct {
	SkuID       int64 `json:"skuId"`
	StockStatus int   `json:"stockStatus"`
}

// PriceValue converts a wire price to an integer amount, or nil when the
// field was missing or not numeric. A missing price stays nil; it is never
// coerced to zero here.
func PriceValue(n json.Number) *int64 {
	if n.String() == "" {
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil
	}
	v := int64(f)
	return &v
}
