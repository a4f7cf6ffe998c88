package models

import "encoding/json"

// PriceEntry is one city/price pair on an item. The add-item flow submits a
// single entry; multi-city pricing is assembled server-side.
type PriceEntry struct {
	City  string  `json:"city"`
	Price float64 `json:"price"`
}

// CategoryRef decodes a category that the backend serves either as a plain
// string (on add) or as a populated object (on fetch).
type CategoryRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Name = s
		return nil
	}
	type alias CategoryRef
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = CategoryRef(a)
	return nil
}

// Item is a vendor's listing as served by /items/fetch.
type Item struct {
	ID          FlexID       `json:"_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Prices      []PriceEntry `json:"prices"`
	Category    CategoryRef  `json:"category"`
	Image       string       `json:"image,omitempty"`
	Vendor      FlexID       `json:"vendor"`
}

// AddItemRequest is the /items/add payload. Field names follow the backend
// contract: the hosted image URL travels as "image", the vendor id as "vendor".
type AddItemRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Prices      []PriceEntry `json:"prices"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	Vendor      string       `json:"vendor"`
}
